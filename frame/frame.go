// Package frame contains the column level queries the encoder needs from a gota DataFrame:
// categorical column discovery, level enumeration, missing masks and mode imputation.
package frame

import (
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Categorical returns the names of every string typed column in column order. This is
// the implicit feature list when none is provided.
func Categorical(df dataframe.DataFrame) []string {
	var names []string
	types := df.Types()
	for i, name := range df.Names() {
		if types[i] == series.String {
			names = append(names, name)
		}
	}
	return names
}

// Numeric reports if a column of this type carries numeric values
func Numeric(t series.Type) bool {
	switch t {
	case series.Int, series.Float, series.Bool:
		return true
	}
	return false
}

// Column returns a copy of the named column. Errors raised by the DataFrame are
// returned as is.
func Column(df dataframe.DataFrame, name string) (series.Series, error) {
	s := df.Col(name)
	if s.Err != nil {
		return s, s.Err
	}
	return s, nil
}

// Missing returns a mask of the missing elements of s
func Missing(s series.Series) []bool {
	mask := make([]bool, s.Len())
	for i := 0; i < s.Len(); i++ {
		mask[i] = s.Elem(i).IsNA()
	}
	return mask
}

// Key returns the level name of a non-missing element. Floats use the shortest
// representation that parses back to the same value so distinct values never share a key.
func Key(e series.Element) string {
	if e.Type() == series.Float {
		return strconv.FormatFloat(e.Float(), 'g', -1, 64)
	}
	return e.String()
}

// Levels returns the distinct non-missing values of s in order of first appearance
func Levels(s series.Series) []string {
	seen := make(map[string]struct{})
	var levels []string
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		level := Key(e)
		if _, exists := seen[level]; exists {
			continue
		}
		seen[level] = struct{}{}
		levels = append(levels, level)
	}
	return levels
}

// NUnique returns the number of distinct non-missing values of s
func NUnique(s series.Series) int {
	return len(Levels(s))
}

// Mode returns the most frequent non-missing value of s. Ties go to the value seen
// first. Returns false if every element is missing.
func Mode(s series.Series) (string, bool) {
	counts := make(map[string]int)
	var order []string
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		level := Key(e)
		if _, exists := counts[level]; !exists {
			order = append(order, level)
		}
		counts[level]++
	}
	if len(order) == 0 {
		return "", false
	}

	mode := order[0]
	for _, level := range order[1:] {
		if counts[level] > counts[mode] {
			mode = level
		}
	}
	return mode, true
}

// FillMissing returns a copy of s with every missing element replaced by val. Observed
// elements are left as is.
func FillMissing(s series.Series, val string) series.Series {
	filled := s.Copy()

	var idx []int
	for i, missing := range Missing(s) {
		if missing {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return filled
	}

	vals := make([]string, len(idx))
	for i := range vals {
		vals[i] = val
	}
	return filled.Set(idx, series.New(vals, s.Type(), s.Name))
}

// ImputeMode fills the missing elements of s with its mode. If s has no observed values
// it is returned unchanged.
func ImputeMode(s series.Series) series.Series {
	mode, exists := Mode(s)
	if !exists {
		return s.Copy()
	}
	return FillMissing(s, mode)
}
