package rpt

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/patrikhermansson/quadsolve/core"
	"github.com/schollz/progressbar/v3"
)

// NewRPTIndex creates a new RPT (Random Projection Tree) index.
// It initializes parameters like dimension, leaf capacity, candidate projections and parallel threshold.
func NewRPTIndex(
	dimension int,
	leafCapacity int,
	candidateProjections int,
	parallelThreshold int,
) *RPTIndex {
	if leafCapacity < 1 {
		leafCapacity = 1
	}
	if candidateProjections < 1 {
		candidateProjections = 1
	}
	return &RPTIndex{
		dimension:            dimension,
		points:               make(map[int][]float64),
		dirty:                true, // marks that the tree needs to be rebuilt
		LeafCapacity:         leafCapacity,
		CandidateProjections: candidateProjections,
		ParallelThreshold:    parallelThreshold,
		Distance:             core.Euclidean, // default distance function
		DistanceName:         "euclidean",
		Seed:                 core.GetSeed(),
	}
}

// treeNode represents a node in the random projection tree.
// It holds the projection, threshold, and pointers to left/right children.
// If isLeaf is true, the node holds a list of point ids.
type treeNode struct {
	isLeaf     bool      // true if this node is a leaf
	points     []int     // ids of points in the leaf
	projection []float64 // unit projection vector used for splitting at this node
	threshold  float64   // points with dot < threshold go left
	left       *treeNode // left child node
	right      *treeNode // right child node
}

// RPTIndex is a random projection tree over fixed-dimension points.
// Radius queries are exact: a subtree is pruned only when the split plane
// proves none of its points can lie within the radius.
type RPTIndex struct {
	mu                   sync.RWMutex      // protects concurrent access
	dimension            int               // dimension of each vector
	points               map[int][]float64 // mapping of point id to vector
	tree                 *treeNode         // root of the random projection tree
	dirty                bool              // indicates if the tree needs to be rebuilt
	Distance             core.DistanceFunc // function to compute distance between vectors
	DistanceName         string            // name of the distance metric
	LeafCapacity         int               // maximum number of points in a leaf
	CandidateProjections int               // number of random projections to try when splitting
	ParallelThreshold    int               // threshold to trigger parallel tree building
	Seed                 int64             // seed for projection sampling, fixed at construction
	Progress             io.Writer         // if set, BulkAdd reports progress here
}

// TreeStats describes the shape of a built tree.
type TreeStats struct {
	Count     int
	Dimension int
	Distance  string
	Leaves    int
	Depth     int
}

// splitIDs chooses the best of several random projections and splits ids
// along it. ok is false when every candidate failed to separate the points,
// which only happens when all of them coincide on every sampled projection.
func splitIDs(ids []int, points map[int][]float64, dimension int, rnd *rand.Rand,
	candidateProjections int) (proj []float64, threshold float64, leftIDs, rightIDs []int, ok bool) {

	type pair struct {
		id  int
		dot float64
	}
	bestImbalance := -1

	for c := 0; c < candidateProjections; c++ {
		p := make([]float64, dimension)
		var norm float64
		for i := 0; i < dimension; i++ {
			v := rnd.Float64()*2 - 1
			p[i] = v
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm < 1e-8 {
			continue
		}
		for i := 0; i < dimension; i++ {
			p[i] /= norm
		}

		pairs := make([]pair, len(ids))
		for i, id := range ids {
			vec := points[id]
			var dot float64
			for j := 0; j < dimension; j++ {
				dot += vec[j] * p[j]
			}
			pairs[i] = pair{id, dot}
		}
		sort.Slice(pairs, func(i, j int) bool {
			return pairs[i].dot < pairs[j].dot
		})
		if pairs[0].dot == pairs[len(pairs)-1].dot {
			continue
		}

		// Median threshold, jittered by a fraction of the interquartile spread.
		mid := len(pairs) / 2
		spread := pairs[3*len(pairs)/4].dot - pairs[len(pairs)/4].dot
		thr := pairs[mid].dot + (rnd.Float64()*2-1)*0.25*spread

		cut := sort.Search(len(pairs), func(i int) bool { return pairs[i].dot >= thr })
		if cut == 0 || cut == len(pairs) {
			// Fallback: split at the first value not below the median that
			// leaves both sides populated.
			thr = pairs[mid].dot
			cut = sort.Search(len(pairs), func(i int) bool { return pairs[i].dot >= thr })
			if cut == 0 {
				cut = sort.Search(len(pairs), func(i int) bool { return pairs[i].dot > pairs[0].dot })
				thr = pairs[cut].dot
			}
		}

		imbalance := len(pairs) - 2*cut
		if imbalance < 0 {
			imbalance = -imbalance
		}
		if bestImbalance >= 0 && imbalance >= bestImbalance {
			continue
		}
		bestImbalance = imbalance
		proj = p
		threshold = thr
		leftIDs = make([]int, 0, cut)
		rightIDs = make([]int, 0, len(pairs)-cut)
		for _, pr := range pairs[:cut] {
			leftIDs = append(leftIDs, pr.id)
		}
		for _, pr := range pairs[cut:] {
			rightIDs = append(rightIDs, pr.id)
		}
		ok = true
	}
	return proj, threshold, leftIDs, rightIDs, ok
}

// buildTreeRecursive builds the tree recursively using random projections.
func buildTreeRecursive(ids []int, points map[int][]float64, dimension int, rnd *rand.Rand,
	leafCapacity int, candidateProjections int, parallelThreshold int) *treeNode {

	// If the number of points is small enough, create a leaf node.
	if len(ids) <= leafCapacity {
		return &treeNode{
			isLeaf: true,
			points: ids,
		}
	}

	proj, threshold, leftIDs, rightIDs, ok := splitIDs(ids, points, dimension, rnd, candidateProjections)
	if !ok {
		// Duplicate points cannot be separated; keep them in one oversized leaf.
		return &treeNode{
			isLeaf: true,
			points: ids,
		}
	}

	var leftChild, rightChild *treeNode
	// Child seeds are drawn before forking so the tree depends only on the seed.
	leftRnd := rand.New(rand.NewSource(rnd.Int63()))
	rightRnd := rand.New(rand.NewSource(rnd.Int63()))
	if len(ids) > parallelThreshold {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			leftChild = buildTreeRecursive(leftIDs, points, dimension,
				leftRnd, leafCapacity, candidateProjections, parallelThreshold)
		}()
		go func() {
			defer wg.Done()
			rightChild = buildTreeRecursive(rightIDs, points, dimension,
				rightRnd, leafCapacity, candidateProjections, parallelThreshold)
		}()
		wg.Wait()
	} else {
		leftChild = buildTreeRecursive(leftIDs, points, dimension, leftRnd,
			leafCapacity, candidateProjections, parallelThreshold)
		rightChild = buildTreeRecursive(rightIDs, points, dimension, rightRnd,
			leafCapacity, candidateProjections, parallelThreshold)
	}

	return &treeNode{
		isLeaf:     false,
		projection: proj,
		threshold:  threshold,
		left:       leftChild,
		right:      rightChild,
	}
}

// buildTree constructs the random projection tree from all stored points.
func (r *RPTIndex) buildTree() {
	ids := make([]int, 0, len(r.points))
	for id := range r.points {
		ids = append(ids, id)
	}
	// Map iteration order is random; sort so the tree depends only on the seed.
	sort.Ints(ids)
	localRand := rand.New(rand.NewSource(r.Seed))
	r.tree = buildTreeRecursive(ids, r.points, r.dimension, localRand, r.LeafCapacity,
		r.CandidateProjections, r.ParallelThreshold)
	r.dirty = false // tree is now up to date
}

// Build rebuilds the tree if points were added since the last build.
// Queries build lazily too, but calling Build up front keeps them read-only.
func (r *RPTIndex) Build() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dirty {
		r.buildTree()
	}
}

// collectWithin gathers ids of leaves whose region may hold a point within
// radius of query. Projections are unit vectors, so a point's dot product
// differs from the query's by at most their distance.
func collectWithin(node *treeNode, query []float64, radius float64, out []int) []int {
	if node == nil {
		return out
	}
	if node.isLeaf {
		return append(out, node.points...)
	}
	var dot float64
	for i := range query {
		dot += query[i] * node.projection[i]
	}
	if dot-radius < node.threshold {
		out = collectWithin(node.left, query, radius, out)
	}
	if dot+radius >= node.threshold {
		out = collectWithin(node.right, query, radius, out)
	}
	return out
}

// ensureBuilt takes the read lock with an up to date tree.
// The caller must release the read lock.
func (r *RPTIndex) ensureBuilt() {
	r.mu.RLock()
	if r.dirty {
		r.mu.RUnlock()
		r.mu.Lock()
		if r.dirty {
			r.buildTree()
		}
		r.mu.Unlock()
		r.mu.RLock()
	}
}

// RangeSearch returns every point within radius of query (Euclidean),
// sorted by increasing distance and then by id.
func (r *RPTIndex) RangeSearch(query []float64, radius float64) ([]core.Neighbor, error) {
	if len(query) != r.dimension {
		return nil, fmt.Errorf("query dimension %d does not match index dimension %d",
			len(query), r.dimension)
	}
	if radius < 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("invalid radius %v", radius)
	}
	r.ensureBuilt()
	defer r.mu.RUnlock()
	if len(r.points) == 0 {
		return nil, errors.New("index is empty")
	}

	candidateIDs := collectWithin(r.tree, query, radius, nil)
	r2 := radius * radius
	var neighbors []core.Neighbor
	for _, id := range candidateIDs {
		d2 := core.SquaredEuclidean(query, r.points[id])
		if d2 <= r2 {
			neighbors = append(neighbors, core.Neighbor{ID: id, Distance: r.Distance(query, r.points[id])})
		}
	}
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Distance != neighbors[j].Distance {
			return neighbors[i].Distance < neighbors[j].Distance
		}
		return neighbors[i].ID < neighbors[j].ID
	})
	return neighbors, nil
}

// Nearest returns the closest point within radius of query, if any.
func (r *RPTIndex) Nearest(query []float64, radius float64) (core.Neighbor, bool, error) {
	neighbors, err := r.RangeSearch(query, radius)
	if err != nil || len(neighbors) == 0 {
		return core.Neighbor{}, false, err
	}
	return neighbors[0], true, nil
}

// Point returns a copy of the vector stored under id.
func (r *RPTIndex) Point(id int) ([]float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vec, ok := r.points[id]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(vec))
	copy(out, vec)
	return out, true
}

// Add inserts a new point with the given id and vector into the index.
// It marks the tree as dirty so it will be rebuilt.
func (r *RPTIndex) Add(id int, vector []float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(vector) != r.dimension {
		return fmt.Errorf("vector dimension %d does not match index dimension %d",
			len(vector), r.dimension)
	}
	if _, exists := r.points[id]; exists {
		return fmt.Errorf("id %d already exists", id)
	}
	v := make([]float64, len(vector))
	copy(v, vector)
	r.points[id] = v
	r.dirty = true
	return nil
}

// BulkAdd inserts multiple points into the index and marks the tree as dirty.
func (r *RPTIndex) BulkAdd(vectors map[int][]float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var bar *progressbar.ProgressBar
	if r.Progress != nil {
		w := r.Progress
		bar = progressbar.NewOptions(len(vectors),
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("codes"),
			progressbar.OptionOnCompletion(func() { fmt.Fprint(w, "\n") }),
		)
	}
	ids := make([]int, 0, len(vectors))
	for id := range vectors {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		vector := vectors[id]
		if len(vector) != r.dimension {
			return fmt.Errorf("vector dimension %d does not match index dimension %d for id %d",
				len(vector), r.dimension, id)
		}
		if _, exists := r.points[id]; exists {
			return fmt.Errorf("id %d already exists", id)
		}
		v := make([]float64, len(vector))
		copy(v, vector)
		r.points[id] = v
		if bar != nil {
			if err := bar.Add(1); err != nil {
				return err
			}
		}
	}
	r.dirty = true
	return nil
}

// Len returns the number of stored points.
func (r *RPTIndex) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.points)
}

// Stats returns some basic statistics about the index.
func (r *RPTIndex) Stats() TreeStats {
	r.ensureBuilt()
	defer r.mu.RUnlock()
	st := TreeStats{
		Count:     len(r.points),
		Dimension: r.dimension,
		Distance:  r.DistanceName,
	}
	var walk func(n *treeNode, depth int)
	walk = func(n *treeNode, depth int) {
		if n == nil {
			return
		}
		if depth > st.Depth {
			st.Depth = depth
		}
		if n.isLeaf {
			st.Leaves++
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(r.tree, 0)
	return st
}

// rptSerialized is used to serialize the index using gob.
// The tree itself is not stored; it is rebuilt from the seed on first use.
type rptSerialized struct {
	Dimension            int
	Points               map[int][]float64
	DistanceName         string
	LeafCapacity         int
	CandidateProjections int
	ParallelThreshold    int
	Seed                 int64
}

func (r *RPTIndex) serialized() rptSerialized {
	return rptSerialized{
		Dimension:            r.dimension,
		Points:               r.points,
		DistanceName:         r.DistanceName,
		LeafCapacity:         r.LeafCapacity,
		CandidateProjections: r.CandidateProjections,
		ParallelThreshold:    r.ParallelThreshold,
		Seed:                 r.Seed,
	}
}

func (r *RPTIndex) restore(ser rptSerialized) error {
	dist, ok := core.Distances[ser.DistanceName]
	if !ok {
		return fmt.Errorf("unknown distance %q", ser.DistanceName)
	}
	r.dimension = ser.Dimension
	r.points = ser.Points
	if r.points == nil {
		r.points = make(map[int][]float64)
	}
	r.Distance = dist
	r.DistanceName = ser.DistanceName
	r.LeafCapacity = ser.LeafCapacity
	r.CandidateProjections = ser.CandidateProjections
	r.ParallelThreshold = ser.ParallelThreshold
	r.Seed = ser.Seed
	r.tree = nil
	r.dirty = true // mark tree as dirty so it will be rebuilt
	return nil
}

// GobEncode serializes the index to bytes using gob.
func (r *RPTIndex) GobEncode() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(r.serialized()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode deserializes the index from gob data.
func (r *RPTIndex) GobDecode(data []byte) error {
	var ser rptSerialized
	dec := gob.NewDecoder(bytes.NewBuffer(data))
	if err := dec.Decode(&ser); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.restore(ser)
}

// Save writes the index to the given writer using gob encoding.
func (r *RPTIndex) Save(w io.Writer) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return gob.NewEncoder(w).Encode(r.serialized())
}

// Load reads the index from the given reader using gob encoding.
func (r *RPTIndex) Load(rdr io.Reader) error {
	var ser rptSerialized
	if err := gob.NewDecoder(rdr).Decode(&ser); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.restore(ser)
}
