package preprocessing

import (
	"fmt"

	"github.com/aouyang1/go-dstk/feature"
	dmat "github.com/aouyang1/go-dstk/mat"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"
)

// Encoded is the table produced by OneHotEncode. Columns passed through from the input
// keep their order and come first, followed by the generated indicator columns grouped
// by source feature. Generated columns hold 0, 1 or NaN for missing.
type Encoded struct {
	nrow        int
	sparse      bool
	totalLevels int

	cols   []*column
	idx    map[string]int
	labels *feature.Labels
}

func (e *Encoded) setColumns(cols []*column) {
	idx := make(map[string]int, len(cols))
	var labels []*feature.Indicator
	for i, c := range cols {
		idx[c.name] = i
		if c.generated() {
			labels = append(labels, c.label)
		}
	}
	e.cols = cols
	e.idx = idx
	e.labels = feature.NewLabels(labels)
}

// Nrow returns the number of rows which always matches the input
func (e *Encoded) Nrow() int {
	return e.nrow
}

// Ncol returns the number of output columns
func (e *Encoded) Ncol() int {
	return len(e.cols)
}

// Names returns the output column names in order
func (e *Encoded) Names() []string {
	names := make([]string, len(e.cols))
	for i, c := range e.cols {
		names[i] = c.name
	}
	return names
}

// Sparse reports if generated columns are held in a sparse representation
func (e *Encoded) Sparse() bool {
	return e.sparse
}

// TotalLevels returns the number of distinct levels observed across all encoded features
func (e *Encoded) TotalLevels() int {
	return e.totalLevels
}

// Labels returns the generated indicators remaining in the output
func (e *Encoded) Labels() *feature.Labels {
	return e.labels
}

// Generated reports if the named column was generated by the encoding
func (e *Encoded) Generated(name string) bool {
	i, exists := e.idx[name]
	return exists && e.cols[i].generated()
}

func (e *Encoded) column(name string) (*column, error) {
	i, exists := e.idx[name]
	if !exists {
		return nil, fmt.Errorf("%q, %w", name, ErrUnknownColumn)
	}
	return e.cols[i], nil
}

// Float returns a copy of the named column as float64. Missing values and non-numeric
// values are NaN.
func (e *Encoded) Float(name string) ([]float64, error) {
	c, err := e.column(name)
	if err != nil {
		return nil, err
	}
	return c.float(), nil
}

// Series returns a copy of the named column as a gota Series. Generated columns are
// materialized as dense float series.
func (e *Encoded) Series(name string) (series.Series, error) {
	c, err := e.column(name)
	if err != nil {
		return series.Series{Err: err}, err
	}
	return c.series(), nil
}

// DataFrame materializes the output into a dense gota DataFrame
func (e *Encoded) DataFrame() dataframe.DataFrame {
	cols := make([]series.Series, len(e.cols))
	for i, c := range e.cols {
		cols[i] = c.series()
	}
	return dataframe.New(cols...)
}

// Matrix returns a gonum view of the output with one matrix column per output column.
// Sparse generated columns are not densified. Non-numeric columns read as NaN.
func (e *Encoded) Matrix() (mat.Matrix, error) {
	cols := make([]dmat.Column, len(e.cols))
	for i, c := range e.cols {
		cols[i] = c
	}
	mx, err := dmat.NewColumns(cols)
	if err != nil {
		return nil, err
	}
	return mx, nil
}

// Dense copies the output into a dense gonum matrix
func (e *Encoded) Dense() (*mat.Dense, error) {
	cols := make([][]float64, len(e.cols))
	for i, c := range e.cols {
		cols[i] = c.float()
	}
	return dmat.NewDenseFromColumns(cols)
}
