package preprocessing

import (
	"math"

	"github.com/aouyang1/go-dstk/feature"
	"github.com/aouyang1/go-dstk/frame"
	"github.com/aouyang1/go-dstk/sparse"
	"github.com/aouyang1/go-dstk/stats"
	"github.com/go-gota/gota/series"
)

// indicatorData is the storage of a generated column
type indicatorData interface {
	Len() int
	At(i int) float64
	Set(i int, val float64)
	Dense() []float64
	Variance() (float64, bool)
}

func newIndicatorData(n int, isSparse bool) indicatorData {
	if isSparse {
		return &sparseIndicator{sparse.NewVector(n)}
	}
	return make(denseIndicator, n)
}

type denseIndicator []float64

func (d denseIndicator) Len() int {
	return len(d)
}

func (d denseIndicator) At(i int) float64 {
	return d[i]
}

func (d denseIndicator) Set(i int, val float64) {
	d[i] = val
}

func (d denseIndicator) Dense() []float64 {
	res := make([]float64, len(d))
	copy(res, d)
	return res
}

func (d denseIndicator) Variance() (float64, bool) {
	return stats.Variance(d)
}

type sparseIndicator struct {
	*sparse.Vector
}

func (s *sparseIndicator) Variance() (float64, bool) {
	return stats.MomentVariance(s.NonMissing())
}

// column is a single output column. Exactly one of src or data is set: src holds a
// column passed through from the input, data holds a generated indicator.
type column struct {
	name  string
	src   *series.Series
	label *feature.Indicator
	data  indicatorData
}

func passthroughColumn(s series.Series) *column {
	return &column{name: s.Name, src: &s}
}

func generatedColumn(label *feature.Indicator, data indicatorData) *column {
	return &column{name: label.String(), label: label, data: data}
}

func (c *column) generated() bool {
	return c.data != nil
}

// float returns the values of the column as float64. Non-numeric passthrough values are
// returned as NaN.
func (c *column) float() []float64 {
	if c.generated() {
		return c.data.Dense()
	}
	if !frame.Numeric(c.src.Type()) {
		res := make([]float64, c.src.Len())
		for i := range res {
			res[i] = math.NaN()
		}
		return res
	}
	return c.src.Float()
}

func (c *column) series() series.Series {
	if c.generated() {
		return series.New(c.data.Dense(), series.Float, c.name)
	}
	return c.src.Copy()
}

// variance returns the sample variance of the column ignoring missing values. Returns
// false if the variance is undefined, including for all non-numeric columns.
func (c *column) variance() (float64, bool) {
	if c.generated() {
		return c.data.Variance()
	}
	if !frame.Numeric(c.src.Type()) {
		return math.NaN(), false
	}
	return stats.Variance(c.src.Float())
}

// Len and At let a column back a gonum matrix view
func (c *column) Len() int {
	if c.generated() {
		return c.data.Len()
	}
	return c.src.Len()
}

func (c *column) At(i int) float64 {
	if c.generated() {
		return c.data.At(i)
	}
	if !frame.Numeric(c.src.Type()) {
		return math.NaN()
	}
	return c.src.Elem(i).Float()
}
