package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/patrikhermansson/quadsolve/example"
	"github.com/patrikhermansson/quadsolve/field"
	"github.com/patrikhermansson/quadsolve/solver"
	"github.com/rs/zerolog/log"
)

// Execute runs the command line program with the given arguments, writing
// the report to out.
//
// Without -stars it images and solves the default synthetic scenario. With
// -stars it solves the star list in the file against the synthetic index.
func Execute(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("quadsolve", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", "", "solver configuration (.json)")
	starsPath := fs.String("stars", "", "star list to solve (.csv: x, y[, flux[, background]])")
	workers := fs.Int("workers", 0, "worker goroutines (overrides the configuration)")
	trials := fs.Int("trials", 0, "run this many synthetic trials and print a summary")
	show := fs.Int("show", 10, "correspondences to print")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	sc := example.DefaultScenario()
	if *configPath != "" {
		cfg, err := solver.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		sc.Solver = cfg
	}
	if *workers > 0 {
		sc.Solver.Workers = *workers
	}

	switch {
	case *trials > 0:
		sum, err := example.RunTrials(ctx, sc, *trials, 0, os.Stderr)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Accepted %d of %d trials, mean recall %.3f, mean solve time %v\n",
			sum.Accepted, sum.Trials, sum.MeanRecall, sum.MeanElapsed)
		return nil
	case *starsPath != "":
		stars, err := example.LoadStars(*starsPath)
		if err != nil {
			return err
		}
		return solveStars(ctx, sc, stars, out, *show)
	}

	o, err := sc.Run(ctx)
	if err != nil {
		return err
	}
	o.Report(out, *show)
	return nil
}

func solveStars(ctx context.Context, sc example.Scenario, stars []field.Star, out io.Writer, show int) error {
	s, err := solver.New(sc.Solver)
	if err != nil {
		return err
	}
	if err := s.SetField(stars); err != nil {
		return err
	}
	idx, err := example.BuildIndex(example.SyntheticSky(sc.Sky), sc.Index, sc.QuadsPerStar)
	if err != nil {
		return err
	}
	if err := s.AddIndex(idx); err != nil {
		return err
	}
	res, err := s.Run(ctx)
	if err != nil {
		return err
	}
	log.Debug().Msgf("Star list solve finished with status %s", res.Status)
	o := &example.Outcome{Result: res, Index: idx}
	o.Report(out, show)
	return nil
}
