package frame

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorSeries() series.Series {
	return series.New([]string{"red", "blue", "NaN", "red"}, series.String, "color")
}

func TestCategorical(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1.5, 2.5, 3.5, 4.5}, series.Float, "price"),
		colorSeries(),
		series.New([]int{1, 2, 3, 4}, series.Int, "qty"),
		series.New([]string{"s", "m", "l", "s"}, series.String, "size"),
		series.New([]bool{true, false, true, true}, series.Bool, "sold"),
	)
	require.NoError(t, df.Err)

	assert.Equal(t, []string{"color", "size"}, Categorical(df))
}

func TestCategoricalNone(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{1.5, 2.5}, series.Float, "price"),
	)
	assert.Empty(t, Categorical(df))
}

func TestNumeric(t *testing.T) {
	assert.True(t, Numeric(series.Float))
	assert.True(t, Numeric(series.Int))
	assert.True(t, Numeric(series.Bool))
	assert.False(t, Numeric(series.String))
}

func TestColumn(t *testing.T) {
	df := dataframe.New(colorSeries())

	s, err := Column(df, "color")
	require.NoError(t, err)
	assert.Equal(t, "color", s.Name)

	_, err = Column(df, "shape")
	assert.Error(t, err)
}

func TestMissing(t *testing.T) {
	assert.Equal(t, []bool{false, false, true, false}, Missing(colorSeries()))
}

func TestKey(t *testing.T) {
	testData := map[string]struct {
		e        series.Element
		expected string
	}{
		"string": {
			e:        colorSeries().Elem(0),
			expected: "red",
		},
		"int": {
			e:        series.New([]int{42}, series.Int, "x").Elem(0),
			expected: "42",
		},
		"float full precision": {
			e:        series.New([]float64{0.1234561}, series.Float, "x").Elem(0),
			expected: "0.1234561",
		},
		"whole float": {
			e:        series.New([]float64{3}, series.Float, "x").Elem(0),
			expected: "3",
		},
		"bool": {
			e:        series.New([]bool{false}, series.Bool, "x").Elem(0),
			expected: "false",
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, Key(td.e))
		})
	}
}

func TestLevels(t *testing.T) {
	testData := map[string]struct {
		s        series.Series
		expected []string
	}{
		"first appearance order": {
			s:        colorSeries(),
			expected: []string{"red", "blue"},
		},
		"all missing": {
			s:        series.New([]string{"NaN", "NaN"}, series.String, "x"),
			expected: nil,
		},
		"ints": {
			s:        series.New([]int{3, 1, 3, 2}, series.Int, "x"),
			expected: []string{"3", "1", "2"},
		},
		"floats differing past six decimals": {
			s:        series.New([]string{"0.1234561", "0.1234564", "2.5", "NaN", "0.1234561"}, series.Float, "x"),
			expected: []string{"0.1234561", "0.1234564", "2.5"},
		},
		"bools": {
			s:        series.New([]string{"true", "false", "NaN", "true"}, series.Bool, "x"),
			expected: []string{"true", "false"},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, td.expected, Levels(td.s))
			assert.Equal(t, len(td.expected), NUnique(td.s))
		})
	}
}

func TestMode(t *testing.T) {
	testData := map[string]struct {
		s         series.Series
		expected  string
		expExists bool
	}{
		"most frequent": {
			s:         colorSeries(),
			expected:  "red",
			expExists: true,
		},
		"tie goes to first seen": {
			s:         series.New([]string{"b", "a", "a", "b", "NaN"}, series.String, "x"),
			expected:  "b",
			expExists: true,
		},
		"later value wins on count": {
			s:         series.New([]string{"b", "a", "a"}, series.String, "x"),
			expected:  "a",
			expExists: true,
		},
		"floats": {
			s:         series.New([]string{"0.1234564", "0.1234561", "0.1234561", "NaN"}, series.Float, "x"),
			expected:  "0.1234561",
			expExists: true,
		},
		"all missing": {
			s: series.New([]string{"NaN", "NaN"}, series.String, "x"),
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			mode, exists := Mode(td.s)
			assert.Equal(t, td.expExists, exists, "exists")
			assert.Equal(t, td.expected, mode)
		})
	}
}

func TestImputeMode(t *testing.T) {
	s := colorSeries()
	filled := ImputeMode(s)

	assert.Equal(t, "color", filled.Name)
	assert.Equal(t, series.String, filled.Type())
	assert.Equal(t, []string{"red", "blue", "red", "red"}, filled.Records())

	// input untouched
	assert.Equal(t, []bool{false, false, true, false}, Missing(s))

	empty := series.New([]string{"NaN", "NaN"}, series.String, "x")
	assert.Equal(t, []bool{true, true}, Missing(ImputeMode(empty)))
}

func TestFillMissingInt(t *testing.T) {
	s := series.New([]string{"1", "NaN", "3"}, series.Int, "x")
	filled := FillMissing(s, "7")
	assert.Equal(t, series.Int, filled.Type())

	vals, err := filled.Int()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 3}, vals)
}

func TestFillMissingFloat(t *testing.T) {
	s := series.New([]string{"0.1234561", "NaN", "0.1234564"}, series.Float, "x")
	filled := FillMissing(s, "0.1234561")
	assert.Equal(t, series.Float, filled.Type())
	assert.Equal(t, "x", filled.Name)
	assert.Equal(t, []float64{0.1234561, 0.1234561, 0.1234564}, filled.Float())

	// input untouched
	assert.Equal(t, []bool{false, true, false}, Missing(s))
}

func TestFillMissingNoneMissing(t *testing.T) {
	s := series.New([]float64{1.25, 2.5}, series.Float, "x")
	assert.Equal(t, []float64{1.25, 2.5}, FillMissing(s, "0").Float())
}
