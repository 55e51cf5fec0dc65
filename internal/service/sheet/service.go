package sheet

import (
	"io"
	"strings"

	"github.com/studiopayroll/payroll-engine-go/internal/domain/timecard"
	"github.com/studiopayroll/payroll-engine-go/internal/pkg/timeutil"
	"github.com/xuri/excelize/v2"
)

// Column layout of an exported biometric sheet: date, time in, time out.
const (
	colDate = iota
	colTimeIn
	colTimeOut
)

type SheetServiceImpl struct{}

func NewSheetService() *SheetServiceImpl {
	return &SheetServiceImpl{}
}

// ParseAttendance reads an uploaded biometric XLSX export into attendance
// rows. The first row is a header. Rows with an unparseable date are skipped
// and reported by 1-based sheet row number; empty punch cells stay absent so
// the merger's anomaly rule applies.
func (s *SheetServiceImpl) ParseAttendance(r io.Reader) ([]timecard.AttendanceRow, []int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) <= 1 {
		return nil, nil, timecard.ErrEmptySheet
	}

	var parsed []timecard.AttendanceRow
	var skipped []int
	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		date, err := timeutil.NormalizeDate(cell(row, colDate))
		if err != nil {
			skipped = append(skipped, i+1)
			continue
		}

		in, ok := parseCellClock(cell(row, colTimeIn))
		if !ok {
			skipped = append(skipped, i+1)
			continue
		}
		out, ok := parseCellClock(cell(row, colTimeOut))
		if !ok {
			skipped = append(skipped, i+1)
			continue
		}

		parsed = append(parsed, timecard.AttendanceRow{Date: date, TimeIn: in, TimeOut: out})
	}

	return parsed, skipped, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseCellClock distinguishes an empty cell (absent punch) from a malformed
// one (row skipped).
func parseCellClock(s string) (*timeutil.Clock, bool) {
	if s == "" {
		return nil, true
	}
	c, err := timeutil.ParseClock(s)
	if err != nil {
		return nil, false
	}
	return &c, true
}
