package vectorindex

import (
	"errors"
	"sort"
)

var (
	ErrDimensionMismatch = errors.New("vectorindex: vector dimension mismatch")
	ErrEmptyVector       = errors.New("vectorindex: vector must not be empty")
)

// Result is one nearest-neighbor hit: the position of the entry in insertion
// order plus its squared L2 distance to the query.
type Result struct {
	Position int
	Distance float32
}

// FlatL2 is a brute-force squared-Euclidean index. It is built once at
// startup and read-only afterwards, so concurrent Search calls need no
// locking. The dimension is fixed by the first vector added.
type FlatL2 struct {
	dimension int
	vectors   [][]float32
}

func NewFlatL2() *FlatL2 {
	return &FlatL2{}
}

// Add appends a vector. Entries are never reordered after construction:
// the insertion position is the retrieval key.
func (idx *FlatL2) Add(vec []float32) error {
	if len(vec) == 0 {
		return ErrEmptyVector
	}
	if idx.dimension == 0 {
		idx.dimension = len(vec)
	}
	if len(vec) != idx.dimension {
		return ErrDimensionMismatch
	}

	owned := make([]float32, len(vec))
	copy(owned, vec)
	idx.vectors = append(idx.vectors, owned)
	return nil
}

// Size returns the number of indexed vectors.
func (idx *FlatL2) Size() int {
	return len(idx.vectors)
}

// Dimension returns the fixed vector dimension, 0 if nothing was added yet.
func (idx *FlatL2) Dimension() int {
	return idx.dimension
}

// Search returns the k entries closest to query, ascending by squared L2
// distance. Ties keep insertion order. k larger than the index returns all
// entries.
func (idx *FlatL2) Search(query []float32, k int) ([]Result, error) {
	if len(query) == 0 {
		return nil, ErrEmptyVector
	}
	if len(query) != idx.dimension {
		return nil, ErrDimensionMismatch
	}
	if k <= 0 {
		return nil, errors.New("vectorindex: k must be >= 1")
	}

	results := make([]Result, len(idx.vectors))
	for i, vec := range idx.vectors {
		results[i] = Result{Position: i, Distance: squaredL2(vec, query)}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Distance < results[b].Distance
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

func squaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
