// Package feature defines the naming convention of generated one-hot indicator columns.
// An indicator name is built from a fixed prefix tag, the source feature name and the
// categorical level it represents, e.g. binary#color_red. Parse is the inverse.
package feature

import (
	"strings"
)

const (
	// PrefixTag is prepended to every generated column name
	PrefixTag = "binary#"

	// MissingLevel is the level of the missing-indicator column of a feature
	MissingLevel = "nan"

	levelSep = "_"
)

type FeatureType int

const (
	FeatureTypeLevel FeatureType = iota
	FeatureTypeMissing
)

func (t FeatureType) String() string {
	switch t {
	case FeatureTypeLevel:
		return "level"
	case FeatureTypeMissing:
		return "missing"
	}
	return "unknown"
}

// Prefix returns the label prefix assigned to a source feature
func Prefix(name string) string {
	return PrefixTag + name
}

// Parse decodes a generated column label back into its indicator. Feature names may
// themselves contain the level separator, so the label is matched against the known
// source feature names and the longest match wins. Returns false if the label was not
// generated from any of the names.
func Parse(label string, names []string) (*Indicator, bool) {
	if !strings.HasPrefix(label, PrefixTag) {
		return nil, false
	}
	rest := label[len(PrefixTag):]

	var best *Indicator
	for _, name := range names {
		if !strings.HasPrefix(rest, name+levelSep) {
			continue
		}
		if best != nil && len(best.Name) >= len(name) {
			continue
		}
		best = NewIndicator(name, rest[len(name)+len(levelSep):])
	}
	return best, best != nil
}
