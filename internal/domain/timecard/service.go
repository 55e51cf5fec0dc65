package timecard

import "github.com/studiopayroll/payroll-engine-go/internal/pkg/timeutil"

// TimecardService merges raw punches with filed exceptions into the per-
// cutoff worked-time figures the payroll calculator consumes.
type TimecardService interface {
	// ComputeDay derives the time credit for a single date from one punch
	// pair, optionally capped by a fixed-schedule time-out.
	ComputeDay(timeIn, timeOut, fixedOut *timeutil.Clock) DailyComputation

	// SummarizeCutoff merges punches with approved filed exceptions over the
	// period and returns the cutoff totals. Malformed records contribute
	// zero; the merge never fails.
	SummarizeCutoff(rows []AttendanceRow, filed []FiledRequest, fixedOut *timeutil.Clock, period Period) CutoffSummary
}
