package index

import (
	"fmt"
	"io"
	"sort"

	"github.com/patrikhermansson/quadsolve/core"
	"github.com/patrikhermansson/quadsolve/quad"
	"github.com/patrikhermansson/quadsolve/rpt"
	"github.com/patrikhermansson/quadsolve/wcs"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// Options describes the index to build.
type Options struct {
	Name        string
	DimQuad     int
	ScaleLower  float64 // arcseconds
	ScaleUpper  float64 // arcseconds
	Constraints core.CodeConstraints

	// Tree parameters for both the code and the star trees.
	LeafCapacity         int
	CandidateProjections int
	ParallelThreshold    int
	// Seed fixes the tree shapes. Zero draws one from core.GetSeed.
	Seed int64
	// Progress, if set, receives progress bars for the slow steps.
	Progress io.Writer
}

// DefaultOptions returns options for a four-star index with both code
// conventions enabled.
func DefaultOptions() Options {
	return Options{
		Name:                 "index",
		DimQuad:              4,
		ScaleLower:           60,
		ScaleUpper:           600,
		Constraints:          core.CodeConstraints{CxLessThanDx: true, MeanXLessThanHalf: true},
		LeafCapacity:         16,
		CandidateProjections: 4,
		ParallelThreshold:    4096,
	}
}

// Builder accumulates reference stars and quads.
type Builder struct {
	opts  Options
	stars []core.RefStar
	quads [][]int
	codes []quad.Code
	pairs map[[2]int]bool
}

// NewBuilder validates opts.
func NewBuilder(opts Options) (*Builder, error) {
	if opts.DimQuad < quad.MinDimQuad || opts.DimQuad > quad.MaxDimQuad {
		return nil, fmt.Errorf("dimquad %d: %w", opts.DimQuad, core.ErrInvalidConfig)
	}
	if opts.ScaleLower <= 0 || opts.ScaleUpper < opts.ScaleLower {
		return nil, fmt.Errorf("scale band [%g, %g]: %w", opts.ScaleLower, opts.ScaleUpper, core.ErrInvalidConfig)
	}
	if opts.LeafCapacity <= 0 {
		opts.LeafCapacity = 16
	}
	if opts.CandidateProjections <= 0 {
		opts.CandidateProjections = 4
	}
	if opts.ParallelThreshold <= 0 {
		opts.ParallelThreshold = 4096
	}
	if opts.Seed == 0 {
		opts.Seed = core.GetSeed()
	}
	return &Builder{opts: opts, pairs: make(map[[2]int]bool)}, nil
}

// AddStar appends a catalog star and returns its index-local id.
func (b *Builder) AddStar(catalogID int64, ra, dec float64) int {
	id := len(b.stars)
	b.stars = append(b.stars, core.RefStar{
		ID:        id,
		CatalogID: catalogID,
		RA:        ra,
		Dec:       dec,
		XYZ:       wcs.RADecToXYZ(ra, dec),
	})
	return id
}

// NumStars returns the number of stars added so far.
func (b *Builder) NumStars() int { return len(b.stars) }

// NumQuads returns the number of quads added so far.
func (b *Builder) NumQuads() int { return len(b.quads) }

// skyFrame returns the anchor frame of stars a and b on the tangent plane
// at their midpoint, plus that tangent point.
func (b *Builder) skyFrame(a, c int) (f quad.Frame, ra, dec float64, ok bool) {
	ra, dec = wcs.XYZToRADec(wcs.Mean(b.stars[a].XYZ, b.stars[c].XYZ))
	pa, okA := b.tangent(ra, dec, a)
	pc, okC := b.tangent(ra, dec, c)
	if !okA || !okC {
		return quad.Frame{}, 0, 0, false
	}
	f, ok = quad.NewFrame(pa, pc)
	return f, ra, dec, ok
}

func (b *Builder) tangent(ra, dec float64, id int) ([2]float64, bool) {
	xi, eta, ok := wcs.ProjectTan(ra, dec, b.stars[id].XYZ)
	return [2]float64{xi, eta}, ok
}

// AddQuad stores a quad given its star ids in code order: anchors first.
// The stars are relabeled to satisfy the index's code conventions.
func (b *Builder) AddQuad(stars []int) error {
	if len(stars) != b.opts.DimQuad {
		return fmt.Errorf("quad has %d stars, want %d: %w", len(stars), b.opts.DimQuad, core.ErrInvalidCode)
	}
	for _, id := range stars {
		if id < 0 || id >= len(b.stars) {
			return fmt.Errorf("star %d: %w", id, core.ErrStarNotFound)
		}
	}
	sep := wcs.ArcsecBetween(b.stars[stars[0]].XYZ, b.stars[stars[1]].XYZ)
	if sep < b.opts.ScaleLower || sep > b.opts.ScaleUpper {
		return fmt.Errorf("anchor separation %.2f\" outside [%g, %g]: %w",
			sep, b.opts.ScaleLower, b.opts.ScaleUpper, core.ErrInvalidCode)
	}
	f, ra, dec, ok := b.skyFrame(stars[0], stars[1])
	if !ok {
		return fmt.Errorf("degenerate anchors %d, %d: %w", stars[0], stars[1], core.ErrDegenerate)
	}
	interior := make([][2]float64, 0, len(stars)-2)
	for _, id := range stars[2:] {
		p, ok := b.tangent(ra, dec, id)
		if !ok {
			return fmt.Errorf("star %d not projectable: %w", id, core.ErrDegenerate)
		}
		interior = append(interior, p)
	}
	code := quad.ComputeCode(f, interior...)
	if !code.Valid() {
		return fmt.Errorf("quad %v: %w", stars, core.ErrInvalidCode)
	}
	for i := 0; i < len(code); i += 2 {
		if !quad.InCircle(code[i], code[i+1], quad.DefaultCircleTolerance) {
			return fmt.Errorf("star %d outside the anchor circle: %w", stars[2+i/2], core.ErrInvalidCode)
		}
	}
	labeled, canon := quad.Canonicalize(stars, code, b.opts.Constraints)
	b.quads = append(b.quads, labeled)
	b.codes = append(b.codes, canon)
	b.pairs[pairKey(stars[0], stars[1])] = true
	return nil
}

func pairKey(a, c int) [2]int {
	if a > c {
		a, c = c, a
	}
	return [2]int{a, c}
}

func (b *Builder) newTree(dim int) *rpt.RPTIndex {
	t := rpt.NewRPTIndex(dim, b.opts.LeafCapacity, b.opts.CandidateProjections, b.opts.ParallelThreshold)
	t.Seed = b.opts.Seed
	return t
}

func (b *Builder) starTree() (*rpt.RPTIndex, error) {
	t := b.newTree(3)
	vecs := make(map[int][]float64, len(b.stars))
	for _, s := range b.stars {
		vecs[s.ID] = []float64{s.XYZ[0], s.XYZ[1], s.XYZ[2]}
	}
	if err := t.BulkAdd(vecs); err != nil {
		return nil, err
	}
	t.Build()
	return t, nil
}

// GenerateQuads adds up to perStar quads anchored on each star. Partners
// are taken nearest first among stars in the scale band, each anchor pair
// at most once; interior stars are the lowest-id stars inside the anchor
// circle, so a catalog sorted by brightness yields bright quads. It
// returns the number of quads added.
func (b *Builder) GenerateQuads(perStar int) (int, error) {
	if len(b.stars) < b.opts.DimQuad {
		return 0, fmt.Errorf("%d stars: %w", len(b.stars), core.ErrInsufficientStars)
	}
	if perStar <= 0 {
		return 0, nil
	}
	tree, err := b.starTree()
	if err != nil {
		return 0, err
	}
	var bar *progressbar.ProgressBar
	if b.opts.Progress != nil {
		w := b.opts.Progress
		bar = progressbar.NewOptions(len(b.stars),
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("quads"),
			progressbar.OptionOnCompletion(func() { fmt.Fprint(w, "\n") }),
		)
	}

	need := b.opts.DimQuad - 2
	upper := wcs.ArcsecToChord(b.opts.ScaleUpper)
	added := 0
	for a := range b.stars {
		made := 0
		partners, err := tree.RangeSearch(b.stars[a].XYZ[:], upper)
		if err != nil {
			return added, err
		}
		for _, nb := range partners {
			if made >= perStar {
				break
			}
			c := nb.ID
			if c == a || b.pairs[pairKey(a, c)] {
				continue
			}
			sep := wcs.ArcsecBetween(b.stars[a].XYZ, b.stars[c].XYZ)
			if sep < b.opts.ScaleLower || sep > b.opts.ScaleUpper {
				continue
			}
			interior := b.circleStars(tree, a, c, need)
			if len(interior) < need {
				continue
			}
			if err := b.AddQuad(append([]int{a, c}, interior...)); err != nil {
				log.Debug().Err(err).Msgf("skipping quad anchored on %d, %d", a, c)
				continue
			}
			made++
			added++
		}
		if bar != nil {
			if err := bar.Add(1); err != nil {
				return added, err
			}
		}
	}
	log.Info().Msgf("Index %q: generated %d quads over %d stars", b.opts.Name, added, len(b.stars))
	return added, nil
}

// circleStars returns up to n lowest-id stars strictly inside the circle on
// anchors a and c.
func (b *Builder) circleStars(tree *rpt.RPTIndex, a, c, n int) []int {
	f, ra, dec, ok := b.skyFrame(a, c)
	if !ok {
		return nil
	}
	mid := wcs.Mean(b.stars[a].XYZ, b.stars[c].XYZ)
	r := wcs.ArcsecToChord(wcs.ArcsecBetween(b.stars[a].XYZ, b.stars[c].XYZ)/2) * 1.001
	near, err := tree.RangeSearch(mid[:], r)
	if err != nil {
		return nil
	}
	ids := make([]int, 0, len(near))
	for _, nb := range near {
		if nb.ID != a && nb.ID != c {
			ids = append(ids, nb.ID)
		}
	}
	sort.Ints(ids)
	var out []int
	for _, id := range ids {
		p, ok := b.tangent(ra, dec, id)
		if !ok {
			continue
		}
		x, y := f.Project(p)
		if quad.InCircle(x, y, 0) {
			out = append(out, id)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

// Build freezes the stars and quads into a queryable Index.
func (b *Builder) Build() (*Index, error) {
	if len(b.stars) == 0 {
		return nil, fmt.Errorf("index %q: %w", b.opts.Name, core.ErrEmptyIndex)
	}
	x := &Index{
		name:        b.opts.Name,
		dimquad:     b.opts.DimQuad,
		scaleLower:  b.opts.ScaleLower,
		scaleUpper:  b.opts.ScaleUpper,
		constraints: b.opts.Constraints,
		stars:       append([]core.RefStar(nil), b.stars...),
		quads:       make([][]int, len(b.quads)),
	}
	for i, q := range b.quads {
		x.quads[i] = append([]int(nil), q...)
	}

	x.codes = b.newTree(quad.CodeDim(b.opts.DimQuad))
	x.codes.Progress = b.opts.Progress
	vecs := make(map[int][]float64, len(b.codes))
	for i, c := range b.codes {
		vecs[i] = c
	}
	if err := x.codes.BulkAdd(vecs); err != nil {
		return nil, err
	}
	x.codes.Build()

	st, err := b.starTree()
	if err != nil {
		return nil, err
	}
	x.starTree = st
	x.summarize()
	log.Info().Msgf("Index %q built: %d stars, %d quads, scale [%g, %g] arcsec",
		x.name, len(x.stars), len(x.quads), x.scaleLower, x.scaleUpper)
	return x, nil
}
