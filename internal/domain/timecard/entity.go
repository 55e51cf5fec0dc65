package timecard

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/studiopayroll/payroll-engine-go/internal/pkg/timeutil"
)

// AttendanceRow is one biometric punch pair for one employee on one calendar
// date. Date is canonical YYYY-MM-DD; a nil punch side means the device has
// no record for it.
type AttendanceRow struct {
	Date    string
	TimeIn  *timeutil.Clock
	TimeOut *timeutil.Clock
}

// RequestType enum
type RequestType string

const (
	RequestOB         RequestType = "OB"
	RequestOT         RequestType = "OT"
	RequestLeave      RequestType = "LEAVE"
	RequestRemoteWork RequestType = "REMOTEWORK"
	RequestWFH        RequestType = "WFH"
	RequestRDOT       RequestType = "RDOT"
)

// RequestStatus values as supplied by the approval workflow.
const StatusApproved = "approved"

// FiledRequest is one filed exception record. Only approved requests dated
// inside the cutoff take part in the merge.
type FiledRequest struct {
	Type          RequestType
	Date          string
	Hours         float64
	Status        string
	TimeIn        *timeutil.Clock
	TimeOut       *timeutil.Clock
	SuggestedRate *decimal.Decimal
}

// Eligible reports whether the request may be merged for the given period.
// An empty status means the caller filtered approvals upstream.
func (r FiledRequest) Eligible(p Period) bool {
	if r.Status != "" && r.Status != StatusApproved {
		return false
	}
	return p.Contains(r.Date)
}

// Period is one cutoff's inclusive date range, canonical YYYY-MM-DD on both
// ends.
type Period struct {
	Start string
	End   string
}

// NewPeriod normalizes both endpoints to canonical form and validates the
// range.
func NewPeriod(start, end string) (Period, error) {
	s, err := timeutil.NormalizeDate(start)
	if err != nil {
		return Period{}, fmt.Errorf("%w: start %q", ErrInvalidPeriod, start)
	}
	e, err := timeutil.NormalizeDate(end)
	if err != nil {
		return Period{}, fmt.Errorf("%w: end %q", ErrInvalidPeriod, end)
	}
	if e < s {
		return Period{}, fmt.Errorf("%w: end %s precedes start %s", ErrInvalidPeriod, e, s)
	}
	return Period{Start: s, End: e}, nil
}

// Contains reports whether the canonical date falls inside the period,
// endpoints included. An empty endpoint is unbounded.
func (p Period) Contains(date string) bool {
	if p.Start != "" && date < p.Start {
		return false
	}
	if p.End != "" && date > p.End {
		return false
	}
	return true
}

// DailyComputation is the derived time credit for one date.
type DailyComputation struct {
	Hours float64
	Days  float64
}

// CutoffSummary aggregates one employee's merged attendance over a cutoff.
// RDOTHours never feed TotalHours/TotalDays; rest-day overtime is paid at a
// separate premium rate.
type CutoffSummary struct {
	TotalHours float64
	TotalDays  float64
	RDOTHours  float64
}

// Schedule holds the official shift parameters the per-day computation
// clips against.
type Schedule struct {
	ShiftStart  timeutil.Clock // official window start
	ShiftEnd    timeutil.Clock // official window end
	EarliestIn  timeutil.Clock // punches in before this are rejected
	EarliestOut timeutil.Clock // punches out before this are rejected
	LunchStart  timeutil.Clock // unpaid lunch interval start
	LunchEnd    timeutil.Clock // unpaid lunch interval end (exclusive)
	HalfDayEnd  timeutil.Clock // effective end at or before this forces a half day

	FullDayHours float64
	HalfDayHours float64
}

// DefaultSchedule returns the studio's official shift: 07:00-17:30 with an
// unpaid 12:00-13:00 lunch.
func DefaultSchedule() Schedule {
	return Schedule{
		ShiftStart:   timeutil.NewClock(7, 0),
		ShiftEnd:     timeutil.NewClock(17, 30),
		EarliestIn:   timeutil.NewClock(6, 0),
		EarliestOut:  timeutil.NewClock(7, 0),
		LunchStart:   timeutil.NewClock(12, 0),
		LunchEnd:     timeutil.NewClock(13, 0),
		HalfDayEnd:   timeutil.NewClock(13, 59),
		FullDayHours: 8,
		HalfDayHours: 4,
	}
}
