// Package sparse provides compact storage for mostly-zero indicator columns
package sparse

import (
	"errors"
	"math"
	"slices"
)

var ErrOutOfBounds = errors.New("index is out of bounds")

// Vector stores a float64 column of fixed length where only the non-zero cells are kept.
// Indices are kept sorted so lookups are a binary search and in-order appends are O(1).
// Missing cells are represented with NaN and are stored like any other non-zero value.
type Vector struct {
	indices []int
	values  []float64
	n       int
}

// NewVector creates an all-zero vector of length n
func NewVector(n int) *Vector {
	if n < 0 {
		n = 0
	}
	return &Vector{n: n}
}

// Len returns the logical length of the vector
func (v *Vector) Len() int {
	return v.n
}

// Nnz returns the number of stored (non-zero or missing) cells
func (v *Vector) Nnz() int {
	return len(v.indices)
}

// At returns the value at index i
func (v *Vector) At(i int) float64 {
	if i < 0 || i >= v.n {
		panic(ErrOutOfBounds)
	}
	pos, found := slices.BinarySearch(v.indices, i)
	if !found {
		return 0.0
	}
	return v.values[pos]
}

// Set updates the value at index i. Setting zero removes the cell from storage.
func (v *Vector) Set(i int, val float64) {
	if i < 0 || i >= v.n {
		panic(ErrOutOfBounds)
	}

	// fast path for in-order construction
	if last := len(v.indices) - 1; last < 0 || v.indices[last] < i {
		if val != 0 {
			v.indices = append(v.indices, i)
			v.values = append(v.values, val)
		}
		return
	}

	pos, found := slices.BinarySearch(v.indices, i)
	switch {
	case found && val == 0:
		v.indices = slices.Delete(v.indices, pos, pos+1)
		v.values = slices.Delete(v.values, pos, pos+1)
	case found:
		v.values[pos] = val
	case val != 0:
		v.indices = slices.Insert(v.indices, pos, i)
		v.values = slices.Insert(v.values, pos, val)
	}
}

// Dense materializes the vector into a newly allocated slice
func (v *Vector) Dense() []float64 {
	dense := make([]float64, v.n)
	for i, idx := range v.indices {
		dense[idx] = v.values[i]
	}
	return dense
}

// NonMissing returns the stored non-missing values along with the total count of
// non-missing cells, zeros included
func (v *Vector) NonMissing() ([]float64, int) {
	vals := make([]float64, 0, len(v.values))
	for _, val := range v.values {
		if math.IsNaN(val) {
			continue
		}
		vals = append(vals, val)
	}
	missing := len(v.values) - len(vals)
	return vals, v.n - missing
}
