package response

import (
	"errors"
	"net/http"

	"github.com/studiopayroll/payroll-engine-go/internal/domain/payroll"
	"github.com/studiopayroll/payroll-engine-go/internal/domain/timecard"
	"github.com/studiopayroll/payroll-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidCategory):
		BadRequest(w, "Unrecognized employee category", nil)

	// Timecard domain errors
	case errors.Is(err, timecard.ErrInvalidPeriod):
		BadRequest(w, "Invalid cutoff period", nil)
	case errors.Is(err, timecard.ErrEmptySheet):
		BadRequest(w, "Attendance sheet has no data rows", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
