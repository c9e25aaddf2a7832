package sampling

import "errors"

var (
	// ErrNilPool indicates no full pool was supplied at all (a missing
	// upload, as opposed to a legitimately empty one).
	ErrNilPool = errors.New("sampling: full pool is required")

	// ErrInvalidSampleSize indicates a requested sample size of zero or less.
	ErrInvalidSampleSize = errors.New("sampling: sample size must be positive")

	// ErrInvalidRange indicates a range filter with Min greater than Max.
	ErrInvalidRange = errors.New("sampling: range min exceeds max")

	// ErrValidationFindings is returned only under Options.StrictFindings
	// when the validator reports any duplicate, conflict, or unknown ID.
	ErrValidationFindings = errors.New("sampling: validation findings present")
)
