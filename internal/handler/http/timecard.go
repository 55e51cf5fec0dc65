package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/studiopayroll/payroll-engine-go/internal/domain/timecard"
	"github.com/studiopayroll/payroll-engine-go/internal/handler/http/response"
	"github.com/studiopayroll/payroll-engine-go/internal/pkg/timeutil"
)

// maxSheetUpload caps biometric sheet uploads at 8 MiB.
const maxSheetUpload = 8 << 20

type TimecardHandler interface {
	Summarize(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type SheetParser interface {
	ParseAttendance(r io.Reader) ([]timecard.AttendanceRow, []int, error)
}

type timecardHandlerImpl struct {
	timecardService timecard.TimecardService
	sheetParser     SheetParser
}

func NewTimecardHandler(timecardService timecard.TimecardService, sheetParser SheetParser) TimecardHandler {
	return &timecardHandlerImpl{
		timecardService: timecardService,
		sheetParser:     sheetParser,
	}
}

// Summarize merges the posted punches and filed requests into cutoff totals.
func (h *timecardHandlerImpl) Summarize(w http.ResponseWriter, r *http.Request) {
	var req timecard.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	summary := h.timecardService.SummarizeCutoff(req.Rows(), req.Filed(), req.FixedOut(), req.Period())

	response.Success(w, timecard.SummaryResponse{
		TotalHours: summary.TotalHours,
		TotalDays:  summary.TotalDays,
		RDOTHours:  summary.RDOTHours,
	})
}

// Import parses an uploaded biometric XLSX sheet into attendance rows. When
// period_start/period_end query params are present the rows are also
// summarized in the same call.
func (h *timecardHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var period *timecard.Period
	start := r.URL.Query().Get("period_start")
	end := r.URL.Query().Get("period_end")
	if start != "" || end != "" {
		p, err := timecard.NewPeriod(start, end)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		period = &p
	}

	if err := r.ParseMultipartForm(maxSheetUpload); err != nil {
		response.UnsupportedMediaType(w, "Expected a multipart form with an attendance sheet")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing 'file' form field", nil)
		return
	}
	defer file.Close()

	rows, skipped, err := h.sheetParser.ParseAttendance(file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := timecard.ImportResponse{
		Rows:        toPunchDTOs(rows),
		SkippedRows: skipped,
	}

	if period != nil {
		summary := h.timecardService.SummarizeCutoff(rows, nil, nil, *period)
		resp.Summary = &timecard.SummaryResponse{
			TotalHours: summary.TotalHours,
			TotalDays:  summary.TotalDays,
			RDOTHours:  summary.RDOTHours,
		}
	}

	response.SuccessWithMessage(w, "Attendance sheet parsed", resp)
}

func toPunchDTOs(rows []timecard.AttendanceRow) []timecard.PunchDTO {
	out := make([]timecard.PunchDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, timecard.PunchDTO{
			Date:    row.Date,
			TimeIn:  clockString(row.TimeIn),
			TimeOut: clockString(row.TimeOut),
		})
	}
	return out
}

func clockString(c *timeutil.Clock) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}
