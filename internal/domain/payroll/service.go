package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/studiopayroll/payroll-engine-go/internal/domain/timecard"
)

// PayrollService is the calculator contract. Calculate is pure: no I/O, no
// hidden state, structurally equal input always yields structurally equal
// output. That property is what lets callers recompute previews on every
// keystroke and lets tests assert exact figures.
type PayrollService interface {
	Calculate(in Input) (Breakdown, error)

	// PriceOfficialBusiness prices approved filed OB requests for a cutoff:
	// each request at its own suggested rate when one is set, otherwise at
	// the category/sub-category default. It returns the priced total and the
	// request count.
	PriceOfficialBusiness(reqs []timecard.FiledRequest, period timecard.Period, category Category, obCategory string) (decimal.Decimal, float64)
}
