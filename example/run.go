package example

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/patrikhermansson/quadsolve/index"
	"github.com/patrikhermansson/quadsolve/solver"
	"github.com/patrikhermansson/quadsolve/wcs"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// Scenario is a complete synthetic solve: a sky, an index over it, an
// image of part of it and the solver configuration.
type Scenario struct {
	Sky          SkyOptions
	Index        index.Options
	QuadsPerStar int
	Field        FieldOptions
	Solver       solver.Config
}

// DefaultScenario images the center of the default sky with a flipped,
// rotated 2 arcsec/pixel camera and searches a 1-4 arcsec/pixel window.
func DefaultScenario() Scenario {
	sky := DefaultSkyOptions()
	sky.Seed = 1

	idx := index.DefaultOptions()
	idx.Name = "synthetic-240-600"
	idx.ScaleLower, idx.ScaleUpper = 240, 600
	idx.Seed = 1

	cfg := solver.DefaultConfig()
	cfg.FUnitsLower, cfg.FUnitsUpper = 1, 4
	cfg.MaxFieldStars = 60

	return Scenario{
		Sky:          sky,
		Index:        idx,
		QuadsPerStar: 8,
		Field: FieldOptions{
			WCS:         DefaultFieldWCS(sky.Center),
			Noise:       0.3,
			Distractors: 5,
			Seed:        2,
		},
		Solver: cfg,
	}
}

// Outcome is a solved scenario with its ground truth.
type Outcome struct {
	Result *solver.Result
	Index  *index.Index
	Truth  []int64 // catalog id per field star, -1 for distractors
	// Recall is the share of correspondences pairing a field star with its
	// true catalog star.
	Recall float64
	// CenterError is the distance in arcseconds between the solved and the
	// true image centers.
	CenterError float64
}

// Run builds the scenario's index and field and solves it.
func (sc Scenario) Run(ctx context.Context) (*Outcome, error) {
	catalog := SyntheticSky(sc.Sky)
	idx, err := BuildIndex(catalog, sc.Index, sc.QuadsPerStar)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}
	stars, truth, err := SyntheticField(catalog, sc.Field)
	if err != nil {
		return nil, err
	}

	s, err := solver.New(sc.Solver)
	if err != nil {
		return nil, err
	}
	if err := s.AddIndex(idx); err != nil {
		return nil, err
	}
	if err := s.SetField(stars); err != nil {
		return nil, err
	}
	s.SetImageSize(sc.Field.WCS.Width, sc.Field.WCS.Height)
	res, err := s.Run(ctx)
	if err != nil {
		return nil, err
	}

	out := &Outcome{Result: res, Index: idx, Truth: truth, CenterError: math.Inf(1)}
	out.Recall = CorrespondenceRecall(res, idx, truth)
	if res.WCS != nil {
		want := sc.Field.WCS.Center()
		got := res.WCS.Center()
		out.CenterError = wcs.ArcsecBetween(wcs.RADecToXYZ(want.RA, want.Dec), wcs.RADecToXYZ(got.RA, got.Dec))
	}
	return out, nil
}

// Report prints a summary of the outcome.
func (o *Outcome) Report(w io.Writer, maxResults int) {
	res := o.Result
	fmt.Fprintf(w, "Attempt %s: %s after %d quads, %d verifications in %v\n",
		res.AttemptID, res.Status, res.QuadsTried, res.Verified, res.Elapsed.Round(time.Millisecond))
	if res.WCS == nil {
		if res.Verified > 0 {
			fmt.Fprintf(w, "Best log-odds %.2f with %d correspondences, below the keep threshold\n",
				res.BestLogOdds, res.BestMatched)
		} else {
			fmt.Fprintln(w, "No candidate worth reporting")
		}
		return
	}
	fmt.Fprintf(w, "Log-odds %.2f with %d correspondences\n", res.LogOdds(), len(res.Correspondences))
	fmt.Fprintln(w, FormatWCS(res.WCS))
	if res.FitStats.N > 0 {
		fmt.Fprintf(w, "Residuals: rms %.3f\", max %.3f\" over %d stars\n",
			res.FitStats.RMS, res.FitStats.Max, res.FitStats.N)
	}
	fmt.Fprintf(w, "Correspondences: %s\n", FormatCorrespondences(res.Correspondences, maxResults))
	fmt.Fprintf(w, "Recall %.2f, center error %.3f\"\n", o.Recall, o.CenterError)
	if res.WCS.Width > 0 {
		fmt.Fprintln(w, "Corners:")
		fmt.Fprint(w, FormatCorners(res.WCS))
	}
}

// TrialSummary aggregates repeated solves of one scenario.
type TrialSummary struct {
	Trials      int
	Accepted    int
	MeanRecall  float64
	MeanElapsed time.Duration
	Elapsed     time.Duration
}

// RunTrials solves the scenario trials times with fresh field seeds,
// spreading the trials over threads goroutines. Zero threads reads
// QUADSOLVE_BENCH_NTRD and defaults to 1.
func RunTrials(ctx context.Context, sc Scenario, trials, threads int, progress io.Writer) (TrialSummary, error) {
	if threads <= 0 {
		threads = 1
		if env := os.Getenv("QUADSOLVE_BENCH_NTRD"); env != "" {
			if t, err := strconv.Atoi(env); err == nil && t > 0 {
				threads = t
				log.Info().Msgf("Using %d threads for trials", threads)
			}
		}
	}
	start := time.Now()

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(trials,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("trials"),
			progressbar.OptionOnCompletion(func() { fmt.Fprint(progress, "\n") }),
		)
	}

	outcomes := make([]*Outcome, trials)
	errs := make([]error, trials)
	tasks := make(chan int, trials)
	var wg sync.WaitGroup
	worker := func() {
		defer wg.Done()
		for i := range tasks {
			trial := sc
			trial.Field.Seed = sc.Field.Seed + int64(i)
			outcomes[i], errs[i] = trial.Run(ctx)
			if bar != nil {
				if err := bar.Add(1); err != nil {
					return
				}
			}
		}
	}
	wg.Add(threads)
	for i := 0; i < threads; i++ {
		go worker()
	}
	for i := 0; i < trials; i++ {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	sum := TrialSummary{Trials: trials}
	var elapsed time.Duration
	for i, o := range outcomes {
		if errs[i] != nil {
			return sum, fmt.Errorf("trial %d: %w", i, errs[i])
		}
		if o.Result.Status == solver.Accepted {
			sum.Accepted++
		}
		sum.MeanRecall += o.Recall
		elapsed += o.Result.Elapsed
	}
	if trials > 0 {
		sum.MeanRecall /= float64(trials)
		sum.MeanElapsed = elapsed / time.Duration(trials)
	}
	sum.Elapsed = time.Since(start)
	return sum, nil
}
