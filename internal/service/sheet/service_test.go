package sheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiopayroll/payroll-engine-go/internal/domain/timecard"
	"github.com/xuri/excelize/v2"
)

func buildSheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheetName, cellRef, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseAttendance(t *testing.T) {
	t.Parallel()
	svc := NewSheetService()

	buf := buildSheet(t, [][]interface{}{
		{"Date", "Time In", "Time Out"},
		{"2024-06-03", "08:00", "17:00"},
		{"2024-06-04", "08:15", ""}, // missing punch-out stays absent
		{"not a date", "08:00", "17:00"},
		{"2024-06-06", "morning", "17:00"},
	})

	rows, skipped, err := svc.ParseAttendance(buf)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "2024-06-03", rows[0].Date)
	require.NotNil(t, rows[0].TimeIn)
	require.NotNil(t, rows[0].TimeOut)
	assert.Equal(t, "08:00", rows[0].TimeIn.String())
	assert.Equal(t, "17:00", rows[0].TimeOut.String())

	assert.Equal(t, "2024-06-04", rows[1].Date)
	assert.NotNil(t, rows[1].TimeIn)
	assert.Nil(t, rows[1].TimeOut)

	// 1-based sheet row numbers of the dropped rows
	assert.Equal(t, []int{4, 5}, skipped)
}

func TestParseAttendance_EmptySheet(t *testing.T) {
	t.Parallel()
	svc := NewSheetService()

	buf := buildSheet(t, [][]interface{}{
		{"Date", "Time In", "Time Out"},
	})

	_, _, err := svc.ParseAttendance(buf)
	assert.ErrorIs(t, err, timecard.ErrEmptySheet)
}

func TestParseAttendance_NotAWorkbook(t *testing.T) {
	t.Parallel()
	svc := NewSheetService()

	_, _, err := svc.ParseAttendance(strings.NewReader("definitely not xlsx"))
	assert.Error(t, err)
}
