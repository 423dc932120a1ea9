package preprocessing

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// MissingPolicy determines how missing values of the encoded features are treated
type MissingPolicy string

const (
	// MissingRetain keeps missing values as unknown: every level indicator of a feature is
	// set to missing on rows flagged by the feature's missing-indicator.
	MissingRetain MissingPolicy = "retain"

	// MissingMode imputes missing values with the feature's most frequent level before
	// encoding.
	MissingMode MissingPolicy = "mode"
)

// DefaultLevelWarnThreshold is the total number of distinct levels across all features
// above which dense output logs a warning
const DefaultLevelWarnThreshold = 100

// Options configures a one-hot encoding
type Options struct {
	// Features to encode. If empty, every string typed column is encoded.
	Features []string `json:"features"`

	Missing MissingPolicy `json:"missing"`

	// DropFirst omits the indicator of each feature's first level, the reference level.
	DropFirst bool `json:"drop_first"`

	// Sparse stores generated columns in a sparse representation
	Sparse bool `json:"sparse"`

	// TrackMissing generates a <prefix>_nan missing-indicator column per feature
	TrackMissing bool `json:"track_missing"`

	// DropZeroVariance removes every numeric output column whose variance is no greater
	// than VarianceTolerance
	DropZeroVariance  bool    `json:"drop_zero_variance"`
	VarianceTolerance float64 `json:"variance_tolerance"`

	// LevelWarnThreshold is the total number of levels across features above which a
	// warning is logged when dense output is requested
	LevelWarnThreshold int `json:"level_warn_threshold"`
}

// NewDefaultOptions returns the default encoding options
func NewDefaultOptions() *Options {
	return &Options{
		Missing:            MissingRetain,
		DropFirst:          true,
		Sparse:             false,
		TrackMissing:       true,
		DropZeroVariance:   true,
		LevelWarnThreshold: DefaultLevelWarnThreshold,
	}
}

// LoadOptions decodes JSON encoded options on top of the defaults so only overridden
// fields need to be present
func LoadOptions(r io.Reader) (*Options, error) {
	opt := NewDefaultOptions()
	if err := json.NewDecoder(r).Decode(opt); err != nil {
		return nil, fmt.Errorf("unable to decode options, %w", err)
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

// Validate checks for unsupported option combinations
func (o *Options) Validate() error {
	switch o.Missing {
	case MissingRetain:
		if !o.TrackMissing {
			return ErrRetainWithoutTracking
		}
	case MissingMode:
	default:
		return fmt.Errorf("%q, %w", o.Missing, ErrUnknownMissingPolicy)
	}
	if o.VarianceTolerance < 0 {
		return ErrNegativeTolerance
	}
	return nil
}
