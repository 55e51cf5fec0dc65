package payroll

import "github.com/shopspring/decimal"

// Category enum — drives which base-pay branch executes. The set is closed;
// an unrecognized value is a caller contract violation.
type Category string

const (
	CategoryCore             Category = "core"
	CategoryCoreProbationary Category = "core_probationary"
	CategoryIntern           Category = "intern"
	CategoryOwner            Category = "owner"
	CategoryFreelancer       Category = "freelancer"
)

// Valid reports whether the category is one of the known variants.
func (c Category) Valid() bool {
	switch c {
	case CategoryCore, CategoryCoreProbationary, CategoryIntern, CategoryOwner, CategoryFreelancer:
		return true
	}
	return false
}

// CutoffHalf enum — which half of the calendar month a cutoff covers.
type CutoffHalf string

const (
	CutoffFirst  CutoffHalf = "first"
	CutoffSecond CutoffHalf = "second"
)

// OB sub-categories priced at distinct flat rates.
const (
	OBVideographer = "videographer"
	OBTalent       = "talent"
	OBAssisted     = "assisted"
)

// CashAdvance describes an active advance's repayment schedule relative to
// the two halves of the month. Override is an explicit is-set option: nil
// means no override, a non-nil zero means finance set the deduction to zero.
type CashAdvance struct {
	TotalAmount   decimal.Decimal
	PerCutoff     decimal.Decimal
	CurrentCutoff CutoffHalf
	StartCutoff   CutoffHalf
	Approved      bool
	Override      *decimal.Decimal
}

// Input is the normalized per-employee, per-cutoff record the calculator
// consumes. Category determines which fields are relevant: PerDayRate is
// ignored for core, MonthlySalary for freelancers, and so on.
type Input struct {
	Category Category

	MonthlySalary   decimal.Decimal
	PerDayRate      decimal.Decimal
	AllowancePerDay decimal.Decimal // interns; zero falls back to the configured default

	WorkedDays        float64
	FixedWorkedDays   float64
	CutoffWorkingDays float64

	OBQuantity        float64
	OBCategory        string
	OBPayFromRequests decimal.Decimal // pre-priced filed OB requests; wins when positive

	OTHours              float64
	NightDiffHours       float64
	RestDayOTHours       float64
	Holiday30Hours       float64
	HolidayDoubleHours   float64
	HolidayOTDoubleHours float64

	TardinessMinutes float64

	SSSEnrolled        bool
	PagIbigEnrolled    bool
	PhilHealthEnrolled bool

	CashAdvance  CashAdvance
	ManualNetPay *decimal.Decimal // freelancer path; nil defaults to zero
}

// Breakdown is the fully itemized pay result. Every monetary field is
// non-negative and NetPay is floored at zero.
type Breakdown struct {
	DailyRate decimal.Decimal
	CutoffPay decimal.Decimal

	OBPay decimal.Decimal

	OTRate             decimal.Decimal
	OTPay              decimal.Decimal
	NightDiffPay       decimal.Decimal
	RestDayOTPay       decimal.Decimal
	Holiday30Pay       decimal.Decimal
	HolidayDoublePay   decimal.Decimal
	HolidayOTDoublePay decimal.Decimal

	GrossEarnings decimal.Decimal

	SSS                  decimal.Decimal
	PagIbig              decimal.Decimal
	PhilHealth           decimal.Decimal
	CashAdvanceDeduction decimal.Decimal
	TardinessDeduction   decimal.Decimal
	TotalDeductions      decimal.Decimal

	NetPay decimal.Decimal
}

// Rates carries the per-cutoff amounts and multipliers the calculator prices
// with. The statutory figures are flat amounts in this domain, not
// contribution-table lookups, but they stay configurable.
type Rates struct {
	SSS        decimal.Decimal
	PagIbig    decimal.Decimal
	PhilHealth decimal.Decimal

	InternAllowancePerDay decimal.Decimal
	OwnerCutoffPay        decimal.Decimal

	OBInternRate       decimal.Decimal
	OBVideographerRate decimal.Decimal
	OBTalentRate       decimal.Decimal
	OBDefaultRate      decimal.Decimal

	NightDiffMultiplier     decimal.Decimal
	RestDayOTMultiplier     decimal.Decimal
	Holiday30Multiplier     decimal.Decimal
	HolidayDoubleMultiplier decimal.Decimal
}

// DefaultRates returns the studio's current amounts.
func DefaultRates() Rates {
	return Rates{
		SSS:        decimal.NewFromInt(425),
		PagIbig:    decimal.NewFromInt(100),
		PhilHealth: decimal.NewFromFloat(212.5),

		InternAllowancePerDay: decimal.NewFromInt(125),
		OwnerCutoffPay:        decimal.NewFromInt(60000),

		OBInternRate:       decimal.NewFromInt(500),
		OBVideographerRate: decimal.NewFromInt(2500),
		OBTalentRate:       decimal.NewFromInt(2000),
		OBDefaultRate:      decimal.NewFromInt(1500),

		NightDiffMultiplier:     decimal.NewFromFloat(1.1),
		RestDayOTMultiplier:     decimal.NewFromFloat(1.3),
		Holiday30Multiplier:     decimal.NewFromFloat(0.3),
		HolidayDoubleMultiplier: decimal.NewFromInt(2),
	}
}
