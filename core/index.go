package core

// Index represents a read-only reference index of sky quads.
// Implementations must be safe for concurrent queries from multiple goroutines.
type Index interface {

	// Name identifies the index in logs and results.
	Name() string

	// DimQuad returns the number of stars in each of the index's quads.
	DimQuad() int

	// ScaleRange returns the angular size band, in arcseconds, of the quads'
	// anchor separations.
	ScaleRange() (lower, upper float64)

	// Constraints reports the labeling conventions used for the stored codes.
	Constraints() CodeConstraints

	// CodeMatches returns every stored quad whose code lies within radius of code.
	CodeMatches(code []float64, radius float64) ([]CodeMatch, error)

	// Star returns the reference star with the given index-local id.
	Star(id int) (RefStar, error)

	// StarsWithin returns the ids of reference stars within a chord distance
	// radius of the unit vector xyz.
	StarsWithin(xyz [3]float64, radius float64) []int

	// Covers reports whether the unit vector xyz lies inside the index footprint.
	Covers(xyz [3]float64) bool

	// Density returns the mean number of reference stars per steradian.
	Density() float64

	// Stats returns metadata about the index, such as star and quad counts.
	Stats() IndexStats
}

// CodeConstraints describes how an index canonicalizes the codes it stores.
type CodeConstraints struct {
	CxLessThanDx      bool // interior x coordinates are non-decreasing
	MeanXLessThanHalf bool // mean interior x coordinate is at most one half
}

// CodeMatch is a stored quad found near a query code.
// Stars are index-local star ids in code order: anchor A, anchor B, then interior stars.
type CodeMatch struct {
	QuadID   int
	Stars    []int
	Code     []float64
	Distance float64
}

// RefStar is a reference catalog star.
type RefStar struct {
	ID        int        // index-local id
	CatalogID int64      // identifier in the source catalog
	RA        float64    // degrees
	Dec       float64    // degrees
	XYZ       [3]float64 // unit vector
}

// IndexStats contains metadata about an index.
type IndexStats struct {
	Stars      int     // number of reference stars
	Quads      int     // number of stored quads
	Dimension  int     // code dimensionality
	ScaleLower float64 // arcseconds
	ScaleUpper float64 // arcseconds
	Distance   string  // code-space metric
}

// Neighbor holds a neighbor's id and its computed distance.
type Neighbor struct {
	ID       int
	Distance float64
}
