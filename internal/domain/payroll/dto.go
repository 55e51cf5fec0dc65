package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/studiopayroll/payroll-engine-go/internal/domain/timecard"
	"github.com/studiopayroll/payroll-engine-go/internal/pkg/validator"
)

// ========== CALCULATE DTOs ==========

type CashAdvanceDTO struct {
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	PerCutoff     decimal.Decimal  `json:"per_cutoff"`
	CurrentCutoff string           `json:"current_cutoff"`
	StartCutoff   string           `json:"start_cutoff"`
	Approved      bool             `json:"approved"`
	Override      *decimal.Decimal `json:"override,omitempty"`
}

type CalculateRequest struct {
	Category string `json:"category"`

	MonthlySalary   decimal.Decimal `json:"monthly_salary"`
	PerDayRate      decimal.Decimal `json:"per_day_rate"`
	AllowancePerDay decimal.Decimal `json:"allowance_per_day"`

	WorkedDays        float64 `json:"worked_days"`
	FixedWorkedDays   float64 `json:"fixed_worked_days"`
	CutoffWorkingDays float64 `json:"cutoff_working_days"`

	OBQuantity        float64         `json:"ob_quantity"`
	OBCategory        string          `json:"ob_category"`
	OBPayFromRequests decimal.Decimal `json:"ob_pay_from_requests"`

	OTHours              float64 `json:"ot_hours"`
	NightDiffHours       float64 `json:"night_diff_hours"`
	RestDayOTHours       float64 `json:"rest_day_ot_hours"`
	Holiday30Hours       float64 `json:"holiday_30_hours"`
	HolidayDoubleHours   float64 `json:"holiday_double_hours"`
	HolidayOTDoubleHours float64 `json:"holiday_ot_double_hours"`

	TardinessMinutes float64 `json:"tardiness_minutes"`

	SSSEnrolled        bool `json:"sss_enrolled"`
	PagIbigEnrolled    bool `json:"pagibig_enrolled"`
	PhilHealthEnrolled bool `json:"philhealth_enrolled"`

	CashAdvance  *CashAdvanceDTO  `json:"cash_advance,omitempty"`
	ManualNetPay *decimal.Decimal `json:"manual_net_pay,omitempty"`

	// Raw filed requests for the cutoff. When present, approved OB requests
	// are priced into OBPayFromRequests and filed OT hours fill OTHours
	// before calculation.
	PeriodStart   string                     `json:"period_start,omitempty"`
	PeriodEnd     string                     `json:"period_end,omitempty"`
	FiledRequests []timecard.FiledRequestDTO `json:"filed_requests,omitempty"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	} else if !Category(r.Category).Valid() {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "must be one of core, core_probationary, intern, owner, freelancer"})
	}
	halves := []string{string(CutoffFirst), string(CutoffSecond)}
	if r.CashAdvance != nil {
		if h := r.CashAdvance.CurrentCutoff; h != "" && !validator.IsInSlice(h, halves) {
			errs = append(errs, validator.ValidationError{Field: "cash_advance.current_cutoff", Message: "must be 'first' or 'second'"})
		}
		if h := r.CashAdvance.StartCutoff; h != "" && !validator.IsInSlice(h, halves) {
			errs = append(errs, validator.ValidationError{Field: "cash_advance.start_cutoff", Message: "must be 'first' or 'second'"})
		}
	}
	if len(r.FiledRequests) > 0 {
		if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
			errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid YYYY-MM-DD date when filed_requests are present"})
		}
		if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
			errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid YYYY-MM-DD date when filed_requests are present"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the cutoff range bounding the filed requests.
func (r *CalculateRequest) Period() timecard.Period {
	return timecard.Period{Start: r.PeriodStart, End: r.PeriodEnd}
}

// Filed converts the attached filed-request DTOs.
func (r *CalculateRequest) Filed() []timecard.FiledRequest {
	return timecard.ConvertFiledRequests(r.FiledRequests)
}

// ToInput maps the request onto the calculator's normalized input record.
func (r *CalculateRequest) ToInput() Input {
	in := Input{
		Category:             Category(r.Category),
		MonthlySalary:        r.MonthlySalary,
		PerDayRate:           r.PerDayRate,
		AllowancePerDay:      r.AllowancePerDay,
		WorkedDays:           r.WorkedDays,
		FixedWorkedDays:      r.FixedWorkedDays,
		CutoffWorkingDays:    r.CutoffWorkingDays,
		OBQuantity:           r.OBQuantity,
		OBCategory:           r.OBCategory,
		OBPayFromRequests:    r.OBPayFromRequests,
		OTHours:              r.OTHours,
		NightDiffHours:       r.NightDiffHours,
		RestDayOTHours:       r.RestDayOTHours,
		Holiday30Hours:       r.Holiday30Hours,
		HolidayDoubleHours:   r.HolidayDoubleHours,
		HolidayOTDoubleHours: r.HolidayOTDoubleHours,
		TardinessMinutes:     r.TardinessMinutes,
		SSSEnrolled:          r.SSSEnrolled,
		PagIbigEnrolled:      r.PagIbigEnrolled,
		PhilHealthEnrolled:   r.PhilHealthEnrolled,
		ManualNetPay:         r.ManualNetPay,
	}
	if r.CashAdvance != nil {
		in.CashAdvance = CashAdvance{
			TotalAmount:   r.CashAdvance.TotalAmount,
			PerCutoff:     r.CashAdvance.PerCutoff,
			CurrentCutoff: CutoffHalf(r.CashAdvance.CurrentCutoff),
			StartCutoff:   CutoffHalf(r.CashAdvance.StartCutoff),
			Approved:      r.CashAdvance.Approved,
			Override:      r.CashAdvance.Override,
		}
	}
	return in
}

type BreakdownResponse struct {
	CalculationID string `json:"calculation_id"`

	DailyRate decimal.Decimal `json:"daily_rate"`
	CutoffPay decimal.Decimal `json:"cutoff_pay"`

	OBPay decimal.Decimal `json:"ob_pay"`

	OTRate             decimal.Decimal `json:"ot_rate"`
	OTPay              decimal.Decimal `json:"ot_pay"`
	NightDiffPay       decimal.Decimal `json:"night_diff_pay"`
	RestDayOTPay       decimal.Decimal `json:"rest_day_ot_pay"`
	Holiday30Pay       decimal.Decimal `json:"holiday_30_pay"`
	HolidayDoublePay   decimal.Decimal `json:"holiday_double_pay"`
	HolidayOTDoublePay decimal.Decimal `json:"holiday_ot_double_pay"`

	GrossEarnings decimal.Decimal `json:"gross_earnings"`

	SSS                  decimal.Decimal `json:"sss"`
	PagIbig              decimal.Decimal `json:"pagibig"`
	PhilHealth           decimal.Decimal `json:"philhealth"`
	CashAdvanceDeduction decimal.Decimal `json:"cash_advance_deduction"`
	TardinessDeduction   decimal.Decimal `json:"tardiness_deduction"`
	TotalDeductions      decimal.Decimal `json:"total_deductions"`

	NetPay decimal.Decimal `json:"net_pay"`
}

// ToBreakdownResponse maps a computed breakdown onto the response DTO.
func ToBreakdownResponse(id string, b Breakdown) BreakdownResponse {
	return BreakdownResponse{
		CalculationID:        id,
		DailyRate:            b.DailyRate,
		CutoffPay:            b.CutoffPay,
		OBPay:                b.OBPay,
		OTRate:               b.OTRate,
		OTPay:                b.OTPay,
		NightDiffPay:         b.NightDiffPay,
		RestDayOTPay:         b.RestDayOTPay,
		Holiday30Pay:         b.Holiday30Pay,
		HolidayDoublePay:     b.HolidayDoublePay,
		HolidayOTDoublePay:   b.HolidayOTDoublePay,
		GrossEarnings:        b.GrossEarnings,
		SSS:                  b.SSS,
		PagIbig:              b.PagIbig,
		PhilHealth:           b.PhilHealth,
		CashAdvanceDeduction: b.CashAdvanceDeduction,
		TardinessDeduction:   b.TardinessDeduction,
		TotalDeductions:      b.TotalDeductions,
		NetPay:               b.NetPay,
	}
}
