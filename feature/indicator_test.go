package feature

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicatorString(t *testing.T) {
	feat := NewIndicator("color", "red")
	expected := "binary#color_red"
	assert.Equal(t, expected, feat.String())

	assert.Equal(t, "binary#color_nan", NewMissing("color").String())
}

func TestIndicatorGet(t *testing.T) {
	feat := NewIndicator("color", "red")

	testData := map[string]struct {
		label     string
		expVal    string
		expExists bool
	}{
		"unknown": {
			label: "unknown",
		},
		"capitalized": {
			label:     "NAME",
			expVal:    "color",
			expExists: true,
		},
		"exact match": {
			label:     "name",
			expVal:    "color",
			expExists: true,
		},
		"level": {
			label:     "level",
			expVal:    "red",
			expExists: true,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			val, exists := feat.Get(td.label)
			assert.Equal(t, td.expExists, exists, "exists")
			assert.Equal(t, td.expVal, val, "value")
		})
	}
}

func TestIndicatorType(t *testing.T) {
	assert.Equal(t, FeatureTypeLevel, NewIndicator("color", "red").Type())
	assert.Equal(t, FeatureTypeMissing, NewMissing("color").Type())
	assert.True(t, NewMissing("color").IsMissing())
	assert.Equal(t, "missing", FeatureTypeMissing.String())
}

func TestIndicatorDecode(t *testing.T) {
	feat := NewIndicator("color", "red")
	exp := map[string]string{
		"name":  "color",
		"level": "red",
	}
	assert.Equal(t, exp, feat.Decode())
}

func TestIndicatorUnmarshalJSON(t *testing.T) {
	feat := NewIndicator("color", "red")
	out, err := json.Marshal(feat.Decode())
	require.NoError(t, err)

	var nextFeat Indicator
	require.NoError(t, json.Unmarshal(out, &nextFeat))

	assert.Equal(t, feat, &nextFeat)
}

func TestParse(t *testing.T) {
	testData := map[string]struct {
		label     string
		names     []string
		expected  *Indicator
		expExists bool
	}{
		"level": {
			label:     "binary#color_red",
			names:     []string{"color"},
			expected:  NewIndicator("color", "red"),
			expExists: true,
		},
		"missing": {
			label:     "binary#color_nan",
			names:     []string{"color"},
			expected:  NewMissing("color"),
			expExists: true,
		},
		"level with separator": {
			label:     "binary#color_dark_red",
			names:     []string{"color"},
			expected:  NewIndicator("color", "dark_red"),
			expExists: true,
		},
		"longest feature wins": {
			label:     "binary#color_tone_warm",
			names:     []string{"color", "color_tone"},
			expected:  NewIndicator("color_tone", "warm"),
			expExists: true,
		},
		"empty level": {
			label:     "binary#color_",
			names:     []string{"color"},
			expected:  NewIndicator("color", ""),
			expExists: true,
		},
		"no prefix": {
			label: "color_red",
			names: []string{"color"},
		},
		"unknown feature": {
			label: "binary#shape_round",
			names: []string{"color"},
		},
		"prefix of name only": {
			label: "binary#colors_red",
			names: []string{"color"},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ind, exists := Parse(td.label, td.names)
			assert.Equal(t, td.expExists, exists, "exists")
			assert.Equal(t, td.expected, ind)
			if exists {
				assert.Equal(t, td.label, ind.String(), "round trip")
			}
		})
	}
}
