package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/studiopayroll/payroll-engine-go/internal/domain/payroll"
	"github.com/studiopayroll/payroll-engine-go/internal/domain/timecard"
	"github.com/studiopayroll/payroll-engine-go/internal/pkg/coerce"
	timecardservice "github.com/studiopayroll/payroll-engine-go/internal/service/timecard"
)

var (
	two           = decimal.NewFromInt(2)
	hoursPerDay   = decimal.NewFromInt(8)
	minutesPerDay = decimal.NewFromInt(480)
)

type PayrollServiceImpl struct {
	rates payroll.Rates
}

func NewPayrollService(rates payroll.Rates) payroll.PayrollService {
	return &PayrollServiceImpl{rates: rates}
}

// Calculate maps a normalized input record to a fully itemized breakdown.
// The only error is an unrecognized category; everything else degrades per
// the lenient boundary policy.
func (s *PayrollServiceImpl) Calculate(in payroll.Input) (payroll.Breakdown, error) {
	if !in.Category.Valid() {
		return payroll.Breakdown{}, payroll.ErrInvalidCategory
	}

	in = sanitize(in)

	// Freelancer pay is negotiated per project outside the structured rate
	// system; the manual figure is both gross and net.
	if in.Category == payroll.CategoryFreelancer {
		net := coerce.NonNegativeDecimal(coerce.DecimalValue(in.ManualNetPay))
		return payroll.Breakdown{GrossEarnings: net, NetPay: net}, nil
	}

	var b payroll.Breakdown
	b.DailyRate, b.CutoffPay = s.basePay(in)
	b.OBPay = s.officialBusinessPay(in)

	// The hourly-equivalent rate derives from the daily rate rather than a
	// separately configured figure.
	b.OTRate = b.DailyRate.Div(hoursPerDay)
	b.OTPay = b.OTRate.Mul(decimal.NewFromFloat(in.OTHours))
	b.NightDiffPay = b.OTRate.Mul(s.rates.NightDiffMultiplier).Mul(decimal.NewFromFloat(in.NightDiffHours))
	b.RestDayOTPay = b.OTRate.Mul(s.rates.RestDayOTMultiplier).Mul(decimal.NewFromFloat(in.RestDayOTHours))
	b.Holiday30Pay = b.OTRate.Mul(s.rates.Holiday30Multiplier).Mul(decimal.NewFromFloat(in.Holiday30Hours))
	b.HolidayDoublePay = b.OTRate.Mul(s.rates.HolidayDoubleMultiplier).Mul(decimal.NewFromFloat(in.HolidayDoubleHours))
	b.HolidayOTDoublePay = b.OTRate.Mul(s.rates.HolidayDoubleMultiplier).Mul(s.rates.RestDayOTMultiplier).Mul(decimal.NewFromFloat(in.HolidayOTDoubleHours))

	b.GrossEarnings = b.CutoffPay.
		Add(b.OBPay).
		Add(b.OTPay).
		Add(b.NightDiffPay).
		Add(b.RestDayOTPay).
		Add(b.Holiday30Pay).
		Add(b.HolidayDoublePay).
		Add(b.HolidayOTDoublePay)

	if in.SSSEnrolled {
		b.SSS = s.rates.SSS
	}
	if in.PagIbigEnrolled {
		b.PagIbig = s.rates.PagIbig
	}
	if in.PhilHealthEnrolled {
		b.PhilHealth = s.rates.PhilHealth
	}
	if in.TardinessMinutes > 0 {
		b.TardinessDeduction = b.DailyRate.
			Div(minutesPerDay).
			Mul(decimal.NewFromFloat(in.TardinessMinutes)).
			Round(2)
	}
	b.CashAdvanceDeduction = cashAdvanceDeduction(in.CashAdvance)

	b.TotalDeductions = b.SSS.
		Add(b.PagIbig).
		Add(b.PhilHealth).
		Add(b.CashAdvanceDeduction).
		Add(b.TardinessDeduction)

	b.NetPay = b.GrossEarnings.Sub(b.TotalDeductions)
	if b.NetPay.IsNegative() {
		b.NetPay = decimal.Zero
	}

	return b, nil
}

// basePay runs the category branch: one pricing rule per variant.
func (s *PayrollServiceImpl) basePay(in payroll.Input) (dailyRate, cutoffPay decimal.Decimal) {
	workedDays := decimal.NewFromFloat(in.WorkedDays)

	switch in.Category {
	case payroll.CategoryCore:
		cutoffBase := in.MonthlySalary.Div(two)
		dailyRate = cutoffBase.Div(decimal.NewFromFloat(coreDivisor(in)))
		cutoffPay = dailyRate.Mul(workedDays)
	case payroll.CategoryCoreProbationary:
		dailyRate = in.PerDayRate
		cutoffPay = dailyRate.Mul(workedDays)
	case payroll.CategoryIntern:
		dailyRate = in.AllowancePerDay
		if !dailyRate.IsPositive() {
			dailyRate = s.rates.InternAllowancePerDay
		}
		cutoffPay = dailyRate.Mul(workedDays)
	case payroll.CategoryOwner:
		dailyRate = decimal.Zero
		cutoffPay = s.rates.OwnerCutoffPay
	}
	return dailyRate, cutoffPay
}

// coreDivisor is the daily-rate denominator fallback chain: an explicit
// fixed-day count, then the supplied cutoff working-day count, then the
// employee's own worked days, then 1. The self-referential third step makes
// cutoffPay collapse to the cutoff base whenever worked days are the only
// figure available; that behavior is intentional and relied upon.
func coreDivisor(in payroll.Input) float64 {
	switch {
	case in.FixedWorkedDays > 0:
		return in.FixedWorkedDays
	case in.CutoffWorkingDays > 0:
		return in.CutoffWorkingDays
	case in.WorkedDays > 0:
		return in.WorkedDays
	default:
		return 1
	}
}

// officialBusinessPay prefers the pre-priced filed-request total when it is
// strictly positive; otherwise it prices quantity at the flat unit rate.
func (s *PayrollServiceImpl) officialBusinessPay(in payroll.Input) decimal.Decimal {
	if in.OBPayFromRequests.IsPositive() {
		return in.OBPayFromRequests
	}
	return s.obUnitRate(in.Category, in.OBCategory).Mul(decimal.NewFromFloat(in.OBQuantity))
}

func (s *PayrollServiceImpl) obUnitRate(category payroll.Category, obCategory string) decimal.Decimal {
	if category == payroll.CategoryIntern {
		return s.rates.OBInternRate
	}
	switch obCategory {
	case payroll.OBVideographer:
		return s.rates.OBVideographerRate
	case payroll.OBTalent:
		return s.rates.OBTalentRate
	default:
		return s.rates.OBDefaultRate
	}
}

// cashAdvanceDeduction applies the repayment schedule. A manual override
// always wins, including an explicit zero. Otherwise an approved advance is
// collected when this cutoff is the half it started in, or when it started
// in the first half and this is the second — an advance starting in the
// second half is not collected during a first half, by schedule.
func cashAdvanceDeduction(ca payroll.CashAdvance) decimal.Decimal {
	if ca.Override != nil {
		return coerce.NonNegativeDecimal(*ca.Override)
	}
	if !ca.Approved || !ca.PerCutoff.IsPositive() {
		return decimal.Zero
	}
	sameHalf := ca.CurrentCutoff == ca.StartCutoff
	carryOver := ca.StartCutoff == payroll.CutoffFirst && ca.CurrentCutoff == payroll.CutoffSecond
	if !sameHalf && !carryOver {
		return decimal.Zero
	}
	if ca.PerCutoff.GreaterThan(ca.TotalAmount) {
		return ca.TotalAmount
	}
	return ca.PerCutoff
}

// PriceOfficialBusiness prices each eligible filed OB request at its own
// suggested rate when one is set, else at the category default, and reports
// the request count alongside.
func (s *PayrollServiceImpl) PriceOfficialBusiness(reqs []timecard.FiledRequest, period timecard.Period, category payroll.Category, obCategory string) (decimal.Decimal, float64) {
	total := decimal.Zero
	var count float64
	for _, req := range reqs {
		if req.Type != timecard.RequestOB || !req.Eligible(period) {
			continue
		}
		rate := s.obUnitRate(category, obCategory)
		if req.SuggestedRate != nil && req.SuggestedRate.IsPositive() {
			rate = *req.SuggestedRate
		}
		total = total.Add(rate)
		count++
	}
	return total, count
}

// AssembleInput fills an input record's filed-request-derived figures:
// approved OB requests are priced into OBPayFromRequests and filed OT hours
// fill OTHours. A figure the caller supplied directly is left alone so
// pre-assembled inputs are never double-counted.
func AssembleInput(svc payroll.PayrollService, in payroll.Input, filed []timecard.FiledRequest, period timecard.Period) payroll.Input {
	if len(filed) == 0 {
		return in
	}
	if !in.OBPayFromRequests.IsPositive() {
		total, count := svc.PriceOfficialBusiness(filed, period, in.Category, in.OBCategory)
		in.OBPayFromRequests = total
		if in.OBQuantity == 0 {
			in.OBQuantity = count
		}
	}
	if in.OTHours == 0 {
		in.OTHours = timecardservice.FiledHoursByType(filed, timecard.RequestOT, period)
	}
	return in
}

// sanitize clamps negative quantities to zero at the boundary. Inputs that
// arrive malformed degrade rather than fail.
func sanitize(in payroll.Input) payroll.Input {
	in.MonthlySalary = coerce.NonNegativeDecimal(in.MonthlySalary)
	in.PerDayRate = coerce.NonNegativeDecimal(in.PerDayRate)
	in.AllowancePerDay = coerce.NonNegativeDecimal(in.AllowancePerDay)
	in.OBPayFromRequests = coerce.NonNegativeDecimal(in.OBPayFromRequests)

	in.WorkedDays = coerce.NonNegative(in.WorkedDays)
	in.FixedWorkedDays = coerce.NonNegative(in.FixedWorkedDays)
	in.CutoffWorkingDays = coerce.NonNegative(in.CutoffWorkingDays)
	in.OBQuantity = coerce.NonNegative(in.OBQuantity)
	in.OTHours = coerce.NonNegative(in.OTHours)
	in.NightDiffHours = coerce.NonNegative(in.NightDiffHours)
	in.RestDayOTHours = coerce.NonNegative(in.RestDayOTHours)
	in.Holiday30Hours = coerce.NonNegative(in.Holiday30Hours)
	in.HolidayDoubleHours = coerce.NonNegative(in.HolidayDoubleHours)
	in.HolidayOTDoubleHours = coerce.NonNegative(in.HolidayOTDoubleHours)
	in.TardinessMinutes = coerce.NonNegative(in.TardinessMinutes)

	in.CashAdvance.TotalAmount = coerce.NonNegativeDecimal(in.CashAdvance.TotalAmount)
	in.CashAdvance.PerCutoff = coerce.NonNegativeDecimal(in.CashAdvance.PerCutoff)

	return in
}
