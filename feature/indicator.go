package feature

import (
	"encoding/json"
	"strings"
)

// Indicator is a generated binary column flagging the rows where the source feature
// takes on a given level. The level MissingLevel flags rows where the source value
// was missing.
type Indicator struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// NewIndicator creates a new level indicator for a source feature
func NewIndicator(name, level string) *Indicator {
	return &Indicator{name, level}
}

// NewMissing creates the missing-indicator for a source feature
func NewMissing(name string) *Indicator {
	return &Indicator{name, MissingLevel}
}

// String returns the generated column label, binary#<name>_<level>
func (i Indicator) String() string {
	return Prefix(i.Name) + levelSep + i.Level
}

// Get returns the value of an arbitrary label and returns the value along with whether
// the label exists
func (i Indicator) Get(label string) (string, bool) {
	switch strings.ToLower(label) {
	case "name":
		return i.Name, true
	case "level":
		return i.Level, true
	}
	return "", false
}

// Type returns whether this is a level or missing indicator
func (i Indicator) Type() FeatureType {
	if i.Level == MissingLevel {
		return FeatureTypeMissing
	}
	return FeatureTypeLevel
}

// IsMissing reports if this indicator flags missing source values
func (i Indicator) IsMissing() bool {
	return i.Type() == FeatureTypeMissing
}

// Decode converts the indicator into a map of label values
func (i Indicator) Decode() map[string]string {
	res := make(map[string]string)
	res["name"] = i.Name
	res["level"] = i.Level
	return res
}

// UnmarshalJSON is the custom unmarshalling to convert a map[string]string
// to an indicator
func (i *Indicator) UnmarshalJSON(data []byte) error {
	var labelStr struct {
		Name  string `json:"name"`
		Level string `json:"level"`
	}
	if err := json.Unmarshal(data, &labelStr); err != nil {
		return err
	}
	i.Name = labelStr.Name
	i.Level = labelStr.Level
	return nil
}
