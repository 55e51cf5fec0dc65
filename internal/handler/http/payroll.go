package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/studiopayroll/payroll-engine-go/internal/domain/payroll"
	"github.com/studiopayroll/payroll-engine-go/internal/handler/http/response"
	payrollservice "github.com/studiopayroll/payroll-engine-go/internal/service/payroll"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// Calculate computes one itemized breakdown. Nothing is stored; the
// calculation id only correlates a response with its log line.
func (h *payrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	in := payrollservice.AssembleInput(h.payrollService, req.ToInput(), req.Filed(), req.Period())

	breakdown, err := h.payrollService.Calculate(in)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToBreakdownResponse(uuid.NewString(), breakdown))
}
