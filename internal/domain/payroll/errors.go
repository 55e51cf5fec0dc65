package payroll

import "errors"

var (
	// ErrInvalidCategory is a caller contract violation: category selects an
	// entire pricing branch, so the calculator fails fast instead of
	// defaulting.
	ErrInvalidCategory = errors.New("unrecognized employee category")
)
