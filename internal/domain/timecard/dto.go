package timecard

import (
	"github.com/shopspring/decimal"
	"github.com/studiopayroll/payroll-engine-go/internal/pkg/timeutil"
	"github.com/studiopayroll/payroll-engine-go/internal/pkg/validator"
)

// ========== SUMMARY DTOs ==========

type PunchDTO struct {
	Date    string  `json:"date"`
	TimeIn  *string `json:"time_in,omitempty"`
	TimeOut *string `json:"time_out,omitempty"`
}

type FiledRequestDTO struct {
	Type          string           `json:"type"`
	Date          string           `json:"date"`
	Hours         float64          `json:"hours,omitempty"`
	Status        string           `json:"status,omitempty"`
	Category      string           `json:"category,omitempty"`
	TimeIn        *string          `json:"time_in,omitempty"`
	TimeOut       *string          `json:"time_out,omitempty"`
	SuggestedRate *decimal.Decimal `json:"suggested_rate,omitempty"`
}

type SummaryRequest struct {
	PeriodStart   string            `json:"period_start"`
	PeriodEnd     string            `json:"period_end"`
	FixedTimeOut  *string           `json:"fixed_time_out,omitempty"`
	Punches       []PunchDTO        `json:"punches"`
	FiledRequests []FiledRequestDTO `json:"filed_requests,omitempty"`
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid YYYY-MM-DD date"})
	}
	if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid YYYY-MM-DD date"})
	}
	if len(errs) == 0 && r.PeriodEnd < r.PeriodStart {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not precede period_start"})
	}
	if r.FixedTimeOut != nil {
		if _, err := timeutil.ParseClock(*r.FixedTimeOut); err != nil {
			errs = append(errs, validator.ValidationError{Field: "fixed_time_out", Message: "must be a valid HH:MM time"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the requested cutoff range.
func (r *SummaryRequest) Period() Period {
	return Period{Start: r.PeriodStart, End: r.PeriodEnd}
}

// FixedOut returns the parsed fixed-schedule cutoff time, nil when absent.
func (r *SummaryRequest) FixedOut() *timeutil.Clock {
	if r.FixedTimeOut == nil {
		return nil
	}
	c, err := timeutil.ParseClock(*r.FixedTimeOut)
	if err != nil {
		return nil
	}
	return &c
}

// Rows converts the punch DTOs to attendance rows. A row with a malformed
// date or an unparseable punch time contributes nothing and is dropped; an
// absent punch side stays nil so the anomaly rule can see it.
func (r *SummaryRequest) Rows() []AttendanceRow {
	rows := make([]AttendanceRow, 0, len(r.Punches))
	for _, p := range r.Punches {
		date, err := timeutil.NormalizeDate(p.Date)
		if err != nil {
			continue
		}
		in, ok := parseOptionalClock(p.TimeIn)
		if !ok {
			continue
		}
		out, ok := parseOptionalClock(p.TimeOut)
		if !ok {
			continue
		}
		rows = append(rows, AttendanceRow{Date: date, TimeIn: in, TimeOut: out})
	}
	return rows
}

// Filed converts the filed-request DTOs, dropping records with malformed
// dates or unknown types.
func (r *SummaryRequest) Filed() []FiledRequest {
	return ConvertFiledRequests(r.FiledRequests)
}

// ConvertFiledRequests maps filed-request DTOs onto domain records, dropping
// entries with a malformed date or an unknown type.
func ConvertFiledRequests(dtos []FiledRequestDTO) []FiledRequest {
	reqs := make([]FiledRequest, 0, len(dtos))
	for _, f := range dtos {
		date, err := timeutil.NormalizeDate(f.Date)
		if err != nil {
			continue
		}
		t := RequestType(f.Type)
		switch t {
		case RequestOB, RequestOT, RequestLeave, RequestRemoteWork, RequestWFH, RequestRDOT:
		default:
			continue
		}
		in, ok := parseOptionalClock(f.TimeIn)
		if !ok {
			in = nil
		}
		out, ok := parseOptionalClock(f.TimeOut)
		if !ok {
			out = nil
		}
		reqs = append(reqs, FiledRequest{
			Type:          t,
			Date:          date,
			Hours:         f.Hours,
			Status:        f.Status,
			TimeIn:        in,
			TimeOut:       out,
			SuggestedRate: f.SuggestedRate,
		})
	}
	return reqs
}

// parseOptionalClock distinguishes "absent" (nil, ok) from "present but
// malformed" (nil, !ok).
func parseOptionalClock(s *string) (*timeutil.Clock, bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	c, err := timeutil.ParseClock(*s)
	if err != nil {
		return nil, false
	}
	return &c, true
}

type SummaryResponse struct {
	TotalHours float64 `json:"total_hours"`
	TotalDays  float64 `json:"total_days"`
	RDOTHours  float64 `json:"rdot_hours"`
}

// ========== IMPORT DTOs ==========

type ImportResponse struct {
	Rows        []PunchDTO       `json:"rows"`
	SkippedRows []int            `json:"skipped_rows,omitempty"`
	Summary     *SummaryResponse `json:"summary,omitempty"`
}
