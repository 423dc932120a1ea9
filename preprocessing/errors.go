package preprocessing

import (
	"errors"
)

var (
	ErrRetainWithoutTracking = errors.New("cannot retain missing-value semantics without a missing-indicator column, track missing must be enabled")
	ErrUnknownMissingPolicy  = errors.New("unknown missing value policy")
	ErrNegativeTolerance     = errors.New("variance tolerance must be non-negative")
	ErrDuplicateColumn       = errors.New("duplicate output column name")
	ErrUnknownColumn         = errors.New("unknown column name")
)
