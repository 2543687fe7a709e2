// Package solver runs a blind plate solve: it enumerates field quads,
// looks their codes up in the attached indexes and verifies each candidate
// until one crosses the acceptance threshold or the search ends.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/patrikhermansson/quadsolve/core"
	"github.com/patrikhermansson/quadsolve/field"
	"github.com/patrikhermansson/quadsolve/fit"
	"github.com/patrikhermansson/quadsolve/match"
	"github.com/patrikhermansson/quadsolve/quad"
	"github.com/patrikhermansson/quadsolve/verify"
	"github.com/patrikhermansson/quadsolve/wcs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Status is the outcome of a solve attempt. Only Accepted carries a
// trusted transform; the others report the best candidate seen, if any.
type Status int

const (
	Accepted Status = iota
	Exhausted
	TimedOut
)

func (s Status) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Exhausted:
		return "exhausted"
	case TimedOut:
		return "timed out"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// State is the controller's position in the solve state machine.
type State int32

const (
	StateIdle State = iota
	StateEnumerating
	StateMatching
	StateVerifying
	StateAccepted
	StateExhausted
	StateTimedOut
)

var stateNames = [...]string{"idle", "enumerating", "matching", "verifying", "accepted", "exhausted", "timed out"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether s ends an attempt.
func (s State) Terminal() bool { return s >= StateAccepted }

func (s Status) state() State { return StateAccepted + State(s) }

// Result describes a finished attempt.
type Result struct {
	AttemptID string
	Status    Status
	// WCS is the refined transform for an accepted solve, and the
	// provisional transform of Best otherwise.
	WCS *wcs.TanWCS
	// Best is the highest scoring candidate, or nil when nothing reached
	// Config.KeepLogOdds.
	Best            *verify.Match
	Correspondences []verify.Correspondence
	FitStats        fit.Stats

	// BestLogOdds and BestMatched describe the highest scoring candidate
	// even when it stayed below Config.KeepLogOdds. BestLogOdds is negative
	// infinity when nothing was verified.
	BestLogOdds float64
	BestMatched int

	QuadsTried int64 // field quads looked up
	CodesTried int64 // reference quads returned by the lookups
	Verified   int64 // candidates scored
	Elapsed    time.Duration
}

// LogOdds returns the best candidate's score, or negative infinity.
func (r *Result) LogOdds() float64 { return r.BestLogOdds }

// Solver holds the field and indexes of a solve. Attach everything before
// calling Run; Run itself must not be called concurrently.
type Solver struct {
	cfg     Config
	indexes []core.Index
	field   *field.Field
	width   float64
	height  float64
	state   atomic.Int32
}

// New validates cfg.
func New(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{cfg: cfg}, nil
}

// Config returns the solver's configuration.
func (s *Solver) Config() Config { return s.cfg }

// State returns the phase most recently entered by any worker.
func (s *Solver) State() State { return State(s.state.Load()) }

func (s *Solver) enter(st State) { s.state.Store(int32(st)) }

// AddIndex attaches a reference index. All indexes must share the
// configured quad size.
func (s *Solver) AddIndex(idx core.Index) error {
	if idx == nil {
		return fmt.Errorf("nil index: %w", core.ErrInvalidConfig)
	}
	if idx.DimQuad() != s.cfg.DimQuad {
		return fmt.Errorf("index %q has dimquad %d, solver uses %d: %w",
			idx.Name(), idx.DimQuad(), s.cfg.DimQuad, core.ErrInvalidConfig)
	}
	s.indexes = append(s.indexes, idx)
	return nil
}

// SetField orders the stars by flux and keeps the brightest
// Config.MaxFieldStars. A field smaller than a quad yields
// core.ErrInsufficientStars.
func (s *Solver) SetField(stars []field.Star) error {
	f, err := field.Preprocess(stars, field.Options{
		MinStars: s.cfg.DimQuad,
		MaxStars: s.cfg.MaxFieldStars,
		ByFlux:   true,
	})
	if err != nil {
		return err
	}
	s.field = f
	return nil
}

// SetImageSize records the image dimensions in pixels for the returned
// transform. It is optional.
func (s *Solver) SetImageSize(width, height float64) {
	s.width, s.height = width, height
}

// Solve is New, AddIndex, SetField and Run in one call.
func Solve(ctx context.Context, stars []field.Star, indexes []core.Index, cfg Config) (*Result, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for _, idx := range indexes {
		if err := s.AddIndex(idx); err != nil {
			return nil, err
		}
	}
	if err := s.SetField(stars); err != nil {
		return nil, err
	}
	return s.Run(ctx)
}

// search is the shared state of one Run.
type search struct {
	cfg      Config
	matcher  *match.Matcher
	verifier *verify.Verifier
	logger   zerolog.Logger
	cancel   context.CancelFunc

	quadsTried atomic.Int64
	codesTried atomic.Int64
	verified   atomic.Int64
	overBudget atomic.Bool

	mu       sync.Mutex
	best     *verify.Match
	accepted bool
}

// Run searches until a candidate is accepted, the quads run out, or a
// budget is spent. Contract errors are returned before any work starts;
// the other outcomes are reported through Result.Status.
func (s *Solver) Run(ctx context.Context) (*Result, error) {
	if len(s.indexes) == 0 {
		return nil, fmt.Errorf("no indexes attached: %w", core.ErrInvalidConfig)
	}
	if s.field == nil {
		return nil, fmt.Errorf("no field attached: %w", core.ErrInvalidConfig)
	}
	matcher, err := match.NewMatcher(s.indexes, s.cfg.CodeTolerance, s.cfg.FUnitsLower, s.cfg.FUnitsUpper)
	if err != nil {
		return nil, err
	}
	verifier, err := verify.NewVerifier(s.field, s.cfg.verifyOptions())
	if err != nil {
		return nil, err
	}
	enum, err := quad.NewEnumerator(s.field, quad.Options{
		DimQuad:         s.cfg.DimQuad,
		Bands:           matcher.Bands(),
		CircleTolerance: s.cfg.CircleTolerance,
		Parity:          s.cfg.Parity,
	})
	if err != nil {
		return nil, err
	}

	start := time.Now()
	s.enter(StateEnumerating)
	res := &Result{AttemptID: uuid.NewString(), BestLogOdds: math.Inf(-1)}
	logger := log.With().Str("attempt", res.AttemptID).Logger()
	matcher.Logger = logger
	logger.Info().Msgf("Solving %d field stars against %d indexes with %d workers",
		s.field.Len(), len(s.indexes), s.cfg.Workers)

	if s.cfg.QuadBudget == 0 {
		res.Status = Exhausted
		res.Elapsed = time.Since(start)
		s.enter(StateExhausted)
		logger.Info().Msg("Quad budget is zero, nothing to search")
		return res, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if s.cfg.TimeLimit > 0 {
		var cancelTimeout context.CancelFunc
		runCtx, cancelTimeout = context.WithTimeout(runCtx, time.Duration(s.cfg.TimeLimit))
		defer cancelTimeout()
	}

	sr := &search{
		cfg:      s.cfg,
		matcher:  matcher,
		verifier: verifier,
		logger:   logger,
		cancel:   cancel,
	}

	subsets := make(chan *quad.Subset, s.cfg.Workers)
	go func() {
		defer close(subsets)
		for sub := range enum.Subsets() {
			select {
			case subsets <- sub:
			case <-runCtx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < s.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-runCtx.Done():
					return
				case sub, ok := <-subsets:
					if !ok {
						return
					}
					s.enter(StateEnumerating)
					s.process(runCtx, sr, sub)
				}
			}
		}()
	}
	wg.Wait()

	res.QuadsTried = min(sr.quadsTried.Load(), s.budget())
	res.CodesTried = sr.codesTried.Load()
	res.Verified = sr.verified.Load()

	accepted := sr.report(res)

	switch {
	case accepted:
		res.Status = Accepted
	case sr.overBudget.Load():
		res.Status = TimedOut
		logger.Info().Msgf("Quad budget of %d spent", s.cfg.QuadBudget)
	case errors.Is(runCtx.Err(), context.DeadlineExceeded) || ctx.Err() != nil:
		res.Status = TimedOut
		logger.Info().Msgf("Stopped after %v: %v", time.Since(start).Round(time.Millisecond), runCtx.Err())
	default:
		res.Status = Exhausted
	}

	if accepted {
		s.refine(res, verifier, logger)
	}
	if res.WCS != nil && s.width > 0 && s.height > 0 {
		res.WCS = res.WCS.Clone()
		res.WCS.Width, res.WCS.Height = s.width, s.height
	}
	res.Elapsed = time.Since(start)
	s.enter(res.Status.state())

	ev := logger.Info().
		Str("status", res.Status.String()).
		Int64("quads", res.QuadsTried).
		Int64("verified", res.Verified)
	if res.Verified > 0 {
		ev = ev.Float64("log_odds", res.BestLogOdds).Int("matched", res.BestMatched)
	}
	ev.Msgf("Solve finished in %v", res.Elapsed.Round(time.Millisecond))
	return res, nil
}

func (s *Solver) budget() int64 {
	if s.cfg.QuadBudget == NoLimit {
		return 1<<63 - 1
	}
	return int64(s.cfg.QuadBudget)
}

// process runs every labeling of one subset through match and verify. It
// checks for cancellation between quads.
func (s *Solver) process(ctx context.Context, sr *search, sub *quad.Subset) {
	sep := sub.Separation()
	for q := range sub.Quads(s.cfg.Parity) {
		if ctx.Err() != nil {
			return
		}
		if sr.quadsTried.Add(1) > s.budget() {
			sr.overBudget.Store(true)
			sr.cancel()
			return
		}
		s.enter(StateMatching)
		cands, err := sr.matcher.Match(q, sep)
		if err != nil {
			sr.logger.Error().Err(err).Msgf("Lookup of quad %v failed", q.Stars)
			continue
		}
		sr.codesTried.Add(int64(len(cands)))
		for _, c := range cands {
			s.enter(StateVerifying)
			m, err := sr.verifier.Verify(c)
			if err != nil {
				sr.logger.Debug().Err(err).Msgf("Skipping candidate %v -> %v", q.Stars, c.Ref.Stars)
				continue
			}
			sr.verified.Add(1)
			if sr.offer(m) {
				return
			}
		}
	}
}

// offer records m if it beats the best so far and reports whether the
// search has been accepted. The first candidate to cross the threshold
// wins; later ones are ignored.
func (sr *search) offer(m *verify.Match) bool {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	if sr.accepted {
		return true
	}
	if sr.best == nil || m.LogOdds > sr.best.LogOdds {
		sr.best = m
		if m.LogOdds >= sr.cfg.KeepLogOdds {
			sr.logger.Debug().Msgf("New best: log-odds %.2f, %d hits, %d misses, index %q",
				m.LogOdds, m.Hits, m.Misses, m.Candidate.Index.Name())
		}
	}
	if m.LogOdds >= sr.cfg.AcceptLogOdds {
		sr.best = m
		sr.accepted = true
		sr.cancel()
		sr.logger.Info().Msgf("Accepted quad %v in index %q with log-odds %.2f",
			m.Candidate.Field.Stars, m.Candidate.Index.Name(), m.LogOdds)
	}
	return sr.accepted
}

// report copies the best candidate into res and reports whether it was
// accepted. The score and correspondence count are always copied; the
// candidate itself only when it was accepted or reached KeepLogOdds.
func (sr *search) report(res *Result) bool {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	best := sr.best
	if best == nil {
		return sr.accepted
	}
	res.BestLogOdds = best.LogOdds
	res.BestMatched = len(best.Correspondences)
	if sr.accepted || best.LogOdds >= sr.cfg.KeepLogOdds {
		res.Best = best
		res.WCS = best.WCS
		res.Correspondences = best.Correspondences
	}
	return sr.accepted
}

// refine fits a TAN transform to the accepted correspondences, collects
// correspondences again under the fit and repeats, then adds SIP terms.
// A failed fit keeps the previous transform.
func (s *Solver) refine(res *Result, v *verify.Verifier, logger zerolog.Logger) {
	b := s.field.Bounds()
	crpix := [2]float64{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
	idx := res.Best.Candidate.Index

	w := res.WCS
	corr := res.Correspondences
	for i := 0; i < s.cfg.RefineIterations; i++ {
		fitted, err := fit.FitTan(pairsOf(corr), crpix)
		if err != nil {
			logger.Debug().Err(err).Msgf("Refinement stopped at iteration %d", i)
			break
		}
		w = fitted
		if next := v.Correspondences(w, idx, s.cfg.MatchRadius); len(next) >= 3 {
			corr = next
		}
	}
	if s.cfg.SIPOrder >= 2 {
		if fitted, err := fit.FitSIP(pairsOf(corr), crpix, s.cfg.SIPOrder); err == nil {
			w = fitted
		}
	}
	res.WCS = w
	res.Correspondences = corr
	res.FitStats = fit.Summarize(fit.Residuals(w, pairsOf(corr)))
	logger.Debug().Msgf("Refined to %d correspondences, rms %.3f\"", len(corr), res.FitStats.RMS)
}

func pairsOf(corr []verify.Correspondence) []fit.Pair {
	out := make([]fit.Pair, len(corr))
	for i, c := range corr {
		out[i] = fit.Pair{X: c.X, Y: c.Y, XYZ: c.XYZ}
	}
	return out
}
