package timecard

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid cutoff period")
	ErrEmptySheet    = errors.New("attendance sheet has no data rows")
)
