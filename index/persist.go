package index

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/patrikhermansson/quadsolve/core"
	"github.com/patrikhermansson/quadsolve/rpt"
)

// indexSerialized is the gob form of an Index. The trees encode their
// points and seed, and rebuild identically on first use.
type indexSerialized struct {
	Name        string
	DimQuad     int
	ScaleLower  float64
	ScaleUpper  float64
	Constraints core.CodeConstraints
	Stars       []core.RefStar
	Quads       [][]int
	Codes       *rpt.RPTIndex
	StarTree    *rpt.RPTIndex
}

// Save writes the index to w using gob encoding.
func (x *Index) Save(w io.Writer) error {
	ser := indexSerialized{
		Name:        x.name,
		DimQuad:     x.dimquad,
		ScaleLower:  x.scaleLower,
		ScaleUpper:  x.scaleUpper,
		Constraints: x.constraints,
		Stars:       x.stars,
		Quads:       x.quads,
		Codes:       x.codes,
		StarTree:    x.starTree,
	}
	if err := gob.NewEncoder(w).Encode(ser); err != nil {
		return fmt.Errorf("save index %q: %w", x.name, err)
	}
	return nil
}

// Load reads an index written by Save.
func Load(r io.Reader) (*Index, error) {
	var ser indexSerialized
	if err := gob.NewDecoder(r).Decode(&ser); err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}
	if ser.Codes == nil || ser.StarTree == nil || len(ser.Stars) == 0 {
		return nil, fmt.Errorf("load index %q: %w", ser.Name, core.ErrEmptyIndex)
	}
	if len(ser.Quads) != ser.Codes.Len() {
		return nil, fmt.Errorf("load index %q: %d quads but %d codes: %w",
			ser.Name, len(ser.Quads), ser.Codes.Len(), core.ErrInvalidCode)
	}
	x := &Index{
		name:        ser.Name,
		dimquad:     ser.DimQuad,
		scaleLower:  ser.ScaleLower,
		scaleUpper:  ser.ScaleUpper,
		constraints: ser.Constraints,
		stars:       ser.Stars,
		quads:       ser.Quads,
		codes:       ser.Codes,
		starTree:    ser.StarTree,
	}
	x.codes.Build()
	x.starTree.Build()
	x.summarize()
	return x, nil
}
