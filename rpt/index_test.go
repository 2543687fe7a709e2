package rpt_test

import (
	"bytes"
	"math"
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/patrikhermansson/quadsolve/rpt"
)

const (
	defaultLeafCapacity         = 10
	defaultCandidateProjections = 3
	defaultParallelThreshold    = 100
)

func TestRPTIndex_BasicOperations(t *testing.T) {
	dim := 4
	idx := rpt.NewRPTIndex(dim, defaultLeafCapacity, defaultCandidateProjections,
		defaultParallelThreshold)

	vec1 := []float64{0.1, 0.2, 0.3, 0.4}
	if err := idx.Add(1, vec1); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	stats := idx.Stats()
	if stats.Count != 1 {
		t.Errorf("expected count 1, got %d", stats.Count)
	}

	// Test duplicate add returns error.
	if err := idx.Add(1, vec1); err == nil {
		t.Errorf("expected error when adding duplicate id, but got none")
	}

	// Test add with wrong dimension.
	if err := idx.Add(2, []float64{1, 2, 3}); err == nil {
		t.Errorf("expected error on add with wrong dimension, but got none")
	}

	// The stored vector is a copy.
	vec1[0] = 9
	got, ok := idx.Point(1)
	if !ok || got[0] != 0.1 {
		t.Errorf("expected stored copy to be unchanged, got %v", got)
	}
}

func TestRPTIndex_RangeSearch(t *testing.T) {
	dim := 4
	idx := rpt.NewRPTIndex(dim, 2, defaultCandidateProjections, defaultParallelThreshold)

	vectors := map[int][]float64{
		1: {0.1, 0.2, 0.3, 0.4},
		2: {0.9, 0.8, 0.7, 0.6},
		3: {0.1, 0.2, 0.3, 0.41},
		4: {0.5, 0.5, 0.5, 0.5},
		5: {0.11, 0.2, 0.3, 0.4},
	}
	if err := idx.BulkAdd(vectors); err != nil {
		t.Fatalf("BulkAdd failed: %v", err)
	}

	if _, err := idx.RangeSearch([]float64{1, 2}, 0.1); err == nil {
		t.Errorf("expected error for query dimension mismatch, but got none")
	}
	if _, err := idx.RangeSearch([]float64{0, 0, 0, 0}, -1); err == nil {
		t.Errorf("expected error for negative radius, but got none")
	}

	neighbors, err := idx.RangeSearch([]float64{0.1, 0.2, 0.3, 0.4}, 0.02)
	if err != nil {
		t.Fatalf("RangeSearch failed: %v", err)
	}
	var ids []int
	for _, n := range neighbors {
		ids = append(ids, n.ID)
	}
	want := []int{1, 3, 5}
	if len(ids) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, ids)
	}
	if ids[0] != 1 {
		t.Errorf("expected exact match first, got %v", ids)
	}
	sort.Ints(ids)
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("expected ids %v, got %v", want, ids)
			break
		}
	}

	nb, ok, err := idx.Nearest([]float64{0.52, 0.5, 0.5, 0.5}, 0.05)
	if err != nil || !ok || nb.ID != 4 {
		t.Errorf("expected nearest id 4, got %+v ok=%v err=%v", nb, ok, err)
	}
	if _, ok, _ := idx.Nearest([]float64{0, 0, 0, 1}, 0.01); ok {
		t.Errorf("expected no neighbor within radius")
	}
}

// The tree must return exactly what a linear scan returns, including points
// that sit on the far side of a split plane.
func TestRPTIndex_RangeSearchMatchesBruteForce(t *testing.T) {
	dim := 4
	rnd := rand.New(rand.NewSource(7))
	idx := rpt.NewRPTIndex(dim, 8, 4, 200)
	idx.Seed = 11

	vectors := make(map[int][]float64)
	for i := 0; i < 2000; i++ {
		v := make([]float64, dim)
		for j := range v {
			v[j] = rnd.Float64()
		}
		vectors[i] = v
	}
	if err := idx.BulkAdd(vectors); err != nil {
		t.Fatalf("BulkAdd failed: %v", err)
	}
	idx.Build()

	for q := 0; q < 50; q++ {
		query := make([]float64, dim)
		for j := range query {
			query[j] = rnd.Float64()
		}
		radius := 0.05 + 0.1*rnd.Float64()

		var want []int
		for id, v := range vectors {
			var d2 float64
			for j := range v {
				d := v[j] - query[j]
				d2 += d * d
			}
			if math.Sqrt(d2) <= radius {
				want = append(want, id)
			}
		}
		sort.Ints(want)

		neighbors, err := idx.RangeSearch(query, radius)
		if err != nil {
			t.Fatalf("RangeSearch failed: %v", err)
		}
		got := make([]int, len(neighbors))
		for i, n := range neighbors {
			got[i] = n.ID
			if i > 0 && neighbors[i-1].Distance > n.Distance {
				t.Fatalf("results not sorted by distance")
			}
		}
		sort.Ints(got)
		if len(got) != len(want) {
			t.Fatalf("query %d: expected %d results, got %d", q, len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("query %d: result mismatch at %d: %d vs %d", q, i, got[i], want[i])
			}
		}
	}
}

func TestRPTIndex_DuplicatePoints(t *testing.T) {
	idx := rpt.NewRPTIndex(2, 2, defaultCandidateProjections, defaultParallelThreshold)
	for i := 0; i < 20; i++ {
		if err := idx.Add(i, []float64{0.5, 0.5}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	neighbors, err := idx.RangeSearch([]float64{0.5, 0.5}, 0)
	if err != nil {
		t.Fatalf("RangeSearch failed: %v", err)
	}
	if len(neighbors) != 20 {
		t.Errorf("expected 20 coincident points, got %d", len(neighbors))
	}
	if st := idx.Stats(); st.Leaves != 1 {
		t.Errorf("expected a single leaf for coincident points, got %d", st.Leaves)
	}
}

func TestRPTIndex_SaveLoad(t *testing.T) {
	dim := 4
	idx := rpt.NewRPTIndex(dim, defaultLeafCapacity, defaultCandidateProjections,
		defaultParallelThreshold)
	vectors := map[int][]float64{
		1: {0.1, 0.2, 0.3, 0.4},
		2: {0.4, 0.3, 0.2, 0.1},
		3: {0.25, 0.25, 0.75, 0.75},
	}
	if err := idx.BulkAdd(vectors); err != nil {
		t.Fatalf("BulkAdd failed: %v", err)
	}

	var buf bytes.Buffer
	if err := idx.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	newIdx := rpt.NewRPTIndex(1, 1, 1, 1)
	if err := newIdx.Load(&buf); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	stats := newIdx.Stats()
	if stats.Count != len(vectors) || stats.Dimension != dim {
		t.Errorf("expected count %d dim %d after load, got %+v", len(vectors), dim, stats)
	}
	if newIdx.Seed != idx.Seed {
		t.Errorf("expected seed to survive save/load")
	}
	neighbors, err := newIdx.RangeSearch([]float64{0.25, 0.25, 0.75, 0.75}, 1e-9)
	if err != nil {
		t.Fatalf("RangeSearch after load failed: %v", err)
	}
	if len(neighbors) != 1 || neighbors[0].ID != 3 {
		t.Errorf("expected id 3 after load, got %v", neighbors)
	}
}

func TestRPTIndex_ConcurrentRangeSearch(t *testing.T) {
	dim := 4
	idx := rpt.NewRPTIndex(dim, defaultLeafCapacity, defaultCandidateProjections,
		defaultParallelThreshold)
	for i := 0; i < 200; i++ {
		v := []float64{float64(i%10) / 10, float64(i/10%10) / 10, 0.5, float64(i) / 200}
		if err := idx.Add(i, v); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	// Queries race the lazy build.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for q := 0; q < 20; q++ {
				if _, err := idx.RangeSearch([]float64{0.5, 0.5, 0.5, 0.5}, 0.2); err != nil {
					t.Errorf("RangeSearch failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestRPTIndex_BulkAddProgress(t *testing.T) {
	idx := rpt.NewRPTIndex(2, defaultLeafCapacity, defaultCandidateProjections,
		defaultParallelThreshold)
	var out bytes.Buffer
	idx.Progress = &out
	if err := idx.BulkAdd(map[int][]float64{1: {0, 0}, 2: {1, 1}}); err != nil {
		t.Fatalf("BulkAdd failed: %v", err)
	}
	if out.Len() == 0 {
		t.Errorf("expected progress output")
	}
	if err := idx.BulkAdd(map[int][]float64{1: {0, 0}}); err == nil {
		t.Errorf("expected error for duplicate id in BulkAdd")
	}
}
