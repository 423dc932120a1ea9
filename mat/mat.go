package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoColumns   = errors.New("no columns")
	ErrRowMismatch = errors.New("row size mismatch")
)

// Column is a read-only column of values
type Column interface {
	Len() int
	At(i int) float64
}

// Columns is a gonum Matrix view over a set of equal length columns. Columns may use
// any storage so a mix of dense and sparse columns can be used with gonum routines
// without first copying them into a dense matrix.
type Columns struct {
	cols []Column
	m    int
}

// NewColumns creates a matrix view where each input column is a matrix column
func NewColumns(cols []Column) (*Columns, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	m := cols[0].Len()
	for j, col := range cols {
		if col.Len() != m {
			return nil, fmt.Errorf("at column %d, %w", j, ErrRowMismatch)
		}
	}
	return &Columns{cols: cols, m: m}, nil
}

// Dims returns the number of rows and columns
func (c *Columns) Dims() (int, int) {
	return c.m, len(c.cols)
}

// At returns the value at row i and column j
func (c *Columns) At(i, j int) float64 {
	if i < 0 || i >= c.m {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= len(c.cols) {
		panic(mat.ErrColAccess)
	}
	return c.cols[j].At(i)
}

// T returns the implicit transpose of the view
func (c *Columns) T() mat.Matrix {
	return mat.Transpose{Matrix: c}
}

// NewDenseFromColumns copies the column major input into a row ordered dense matrix
func NewDenseFromColumns(x [][]float64) (*mat.Dense, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrNoColumns
	}

	m := len(x[0])
	for j, col := range x {
		if len(col) != m {
			return nil, fmt.Errorf("at column %d, %w", j, ErrRowMismatch)
		}
	}
	if m == 0 {
		return nil, mat.ErrZeroLength
	}

	// flatten to row order
	data := make([]float64, m*n)
	for j, col := range x {
		for i, val := range col {
			data[i*n+j] = val
		}
	}
	return mat.NewDense(m, n, data), nil
}
