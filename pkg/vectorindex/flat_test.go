package vectorindex

import (
	"errors"
	"testing"
)

func TestSearchOrdering(t *testing.T) {
	idx := NewFlatL2()
	vectors := [][]float32{
		{0, 0, 10}, // position 0, far
		{0, 0, 1},  // position 1, near
		{0, 0, 4},  // position 2, middle
	}
	for _, v := range vectors {
		if err := idx.Add(v); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	results, err := idx.Search([]float32{0, 0, 0}, 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	wantPositions := []int{1, 2, 0}
	for i, want := range wantPositions {
		if results[i].Position != want {
			t.Errorf("result[%d].Position = %d, want %d", i, results[i].Position, want)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].Distance < results[i-1].Distance {
			t.Errorf("distances not ascending at %d: %v then %v", i, results[i-1].Distance, results[i].Distance)
		}
	}
}

func TestSearchTiesKeepInsertionOrder(t *testing.T) {
	idx := NewFlatL2()
	// Both are at distance 1 from the query.
	_ = idx.Add([]float32{1, 0})
	_ = idx.Add([]float32{0, 1})

	results, err := idx.Search([]float32{0, 0}, 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if results[0].Position != 0 || results[1].Position != 1 {
		t.Errorf("tied results reordered: got positions %d, %d", results[0].Position, results[1].Position)
	}
}

func TestSearchKLargerThanIndex(t *testing.T) {
	idx := NewFlatL2()
	_ = idx.Add([]float32{1, 2})
	_ = idx.Add([]float32{3, 4})

	results, err := idx.Search([]float32{0, 0}, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}
}

func TestSearchErrors(t *testing.T) {
	idx := NewFlatL2()
	_ = idx.Add([]float32{1, 2, 3})

	tests := []struct {
		name    string
		query   []float32
		k       int
		wantErr error
	}{
		{"empty query", nil, 1, ErrEmptyVector},
		{"wrong dimension", []float32{1, 2}, 1, ErrDimensionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := idx.Search(tt.query, tt.k)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Search error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := idx.Search([]float32{1, 2, 3}, 0); err == nil {
		t.Error("Search with k=0 should error")
	}
}

func TestAddDimensionFixedByFirstVector(t *testing.T) {
	idx := NewFlatL2()
	if err := idx.Add([]float32{1, 2, 3}); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if err := idx.Add([]float32{1, 2}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Add with wrong dimension = %v, want ErrDimensionMismatch", err)
	}
	if err := idx.Add(nil); !errors.Is(err, ErrEmptyVector) {
		t.Errorf("Add with empty vector = %v, want ErrEmptyVector", err)
	}
	if idx.Size() != 1 {
		t.Errorf("Size = %d, want 1", idx.Size())
	}
	if idx.Dimension() != 3 {
		t.Errorf("Dimension = %d, want 3", idx.Dimension())
	}
}

func TestAddCopiesInput(t *testing.T) {
	idx := NewFlatL2()
	vec := []float32{1, 0}
	_ = idx.Add(vec)
	vec[0] = 99

	results, err := idx.Search([]float32{1, 0}, 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if results[0].Distance != 0 {
		t.Errorf("Distance = %v, want 0 (index must own its vectors)", results[0].Distance)
	}
}
