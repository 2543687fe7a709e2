package example

import (
	"fmt"
	"strings"

	"github.com/patrikhermansson/quadsolve/core"
	"github.com/patrikhermansson/quadsolve/internal/helpers"
	"github.com/patrikhermansson/quadsolve/solver"
	"github.com/patrikhermansson/quadsolve/verify"
	"github.com/patrikhermansson/quadsolve/wcs"
)

// FormatCorrespondences returns a formatted string of field to reference
// pairs. maxResults specifies how many items to include.
func FormatCorrespondences(corr []verify.Correspondence, maxResults int) string {
	var sb strings.Builder
	limit := helpers.MinInt(maxResults, len(corr))
	for i := 0; i < limit; i++ {
		c := corr[i]
		fmt.Fprintf(&sb, "%d->%d (%.1f, %.1f) ", c.FieldID, c.RefID, c.X, c.Y)
	}
	if len(corr) > limit {
		fmt.Fprintf(&sb, "... %d more", len(corr)-limit)
	}
	return sb.String()
}

// FormatWCS returns the transform's center, scale, orientation and parity.
func FormatWCS(w *wcs.TanWCS) string {
	c := w.Center()
	parity := "normal"
	if w.Flipped() {
		parity = "flipped"
	}
	return fmt.Sprintf("Center (%.5f, %.5f) deg, scale %.4f\"/px, rotation %.2f deg, %s parity",
		c.RA, c.Dec, w.PixelScale(), w.Rotation(), parity)
}

// FormatCorners converts the image corners to RA/Dec, one per line.
func FormatCorners(w *wcs.TanWCS) string {
	corners := [][2]float64{{0, 0}, {w.Width, 0}, {w.Width, w.Height}, {0, w.Height}}
	var sb strings.Builder
	for i, rd := range wcs.ConvertPixels(w, corners) {
		fmt.Fprintf(&sb, "  (%7.1f, %7.1f) -> (%.5f, %.5f)\n", corners[i][0], corners[i][1], rd.RA, rd.Dec)
	}
	return sb.String()
}

// CorrespondenceRecall computes the fraction of the result's
// correspondences whose reference star is the field star's true catalog
// star. truth is indexed by the caller's field star index.
func CorrespondenceRecall(res *solver.Result, idx core.Index, truth []int64) float64 {
	if res == nil || len(res.Correspondences) == 0 {
		return 0.0
	}
	correct := 0
	for _, c := range res.Correspondences {
		rs, err := idx.Star(c.RefID)
		if err != nil || c.FieldID < 0 || c.FieldID >= len(truth) {
			continue
		}
		if truth[c.FieldID] == rs.CatalogID {
			correct++
		}
	}
	return float64(correct) / float64(len(res.Correspondences))
}
