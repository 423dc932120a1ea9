package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinVarianceSize is the number of non-missing observations needed for the sample
// variance to be defined
const MinVarianceSize = 2

// Variance returns the unbiased sample variance of x ignoring NaN values. The boolean is
// false if fewer than MinVarianceSize non-missing values are present. A column whose
// non-missing values are all identical reports exactly zero regardless of floating point
// rounding in the mean.
func Variance(x []float64) (float64, bool) {
	vals := make([]float64, 0, len(x))
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		vals = append(vals, v)
	}
	if len(vals) < MinVarianceSize {
		return math.NaN(), false
	}
	if IsConstant(vals) {
		return 0.0, true
	}
	return stat.Variance(vals, nil), true
}

// IsConstant reports if every value in x is identical. NaN values are not expected.
func IsConstant(x []float64) bool {
	if len(x) == 0 {
		return true
	}
	return floats.Min(x) == floats.Max(x)
}

// MomentVariance returns the unbiased sample variance from n observations where the
// non-zero observations are given by nz and the remaining n-len(nz) are zero. Used for
// sparse columns so the zeros are never materialized.
func MomentVariance(nz []float64, n int) (float64, bool) {
	if n < MinVarianceSize || len(nz) > n {
		return math.NaN(), false
	}
	if len(nz) == 0 {
		return 0.0, true
	}
	if len(nz) == n && IsConstant(nz) {
		return 0.0, true
	}

	sum := floats.Sum(nz)
	sumSq := floats.Dot(nz, nz)
	cnt := float64(n)
	v := (sumSq - sum*sum/cnt) / (cnt - 1)
	if v < 0 {
		v = 0
	}
	return v, true
}
