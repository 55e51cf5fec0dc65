package timecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/studiopayroll/payroll-engine-go/internal/domain/timecard"
	"github.com/studiopayroll/payroll-engine-go/internal/pkg/timeutil"
)

func newTestService() timecard.TimecardService {
	return NewTimecardService(timecard.DefaultSchedule())
}

func clock(h, m int) *timeutil.Clock {
	c := timeutil.NewClock(h, m)
	return &c
}

// ===== COMPUTE DAY =====

func TestComputeDay_NoPunches(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	got := svc.ComputeDay(nil, nil, nil)
	assert.Equal(t, timecard.DailyComputation{}, got)
}

func TestComputeDay_PartialPunchIsHalfDay(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	// either missing side earns the flat half-day credit
	got := svc.ComputeDay(clock(8, 0), nil, nil)
	assert.Equal(t, timecard.DailyComputation{Hours: 4, Days: 0.5}, got)

	got = svc.ComputeDay(nil, clock(17, 0), nil)
	assert.Equal(t, timecard.DailyComputation{Hours: 4, Days: 0.5}, got)
}

func TestComputeDay_NoonTimeInForcesHalfDay(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	// 12:30 in, 17:00 out: 4.5h raw span, still a forced half day
	got := svc.ComputeDay(clock(12, 30), clock(17, 0), nil)
	assert.Equal(t, timecard.DailyComputation{Hours: 4, Days: 0.5}, got)

	// 12:59 is still inside the noon hour, 13:00 is not
	got = svc.ComputeDay(clock(12, 59), clock(17, 0), nil)
	assert.Equal(t, timecard.DailyComputation{Hours: 4, Days: 0.5}, got)
}

func TestComputeDay_RejectedPunches(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	cases := []struct {
		name    string
		in, out *timeutil.Clock
	}{
		{"time-in before 06:00", clock(5, 30), clock(17, 0)},
		{"time-out before 07:00", clock(6, 10), clock(6, 50)},
		{"time-out equals time-in", clock(9, 0), clock(9, 0)},
		{"time-out precedes time-in", clock(15, 0), clock(9, 0)},
	}
	for _, c := range cases {
		got := svc.ComputeDay(c.in, c.out, nil)
		assert.Equal(t, timecard.DailyComputation{}, got, c.name)
	}
}

func TestComputeDay_FullDay(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	// 08:00-17:00 clipped to nothing, minus lunch: 8h
	got := svc.ComputeDay(clock(8, 0), clock(17, 0), nil)
	assert.Equal(t, timecard.DailyComputation{Hours: 8, Days: 1}, got)
}

func TestComputeDay_ClipsToShiftWindow(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	// 06:30-18:00 clips to 07:00-17:30 = 10.5h minus lunch = 9.5h, capped at 8
	got := svc.ComputeDay(clock(6, 30), clock(18, 0), nil)
	assert.Equal(t, timecard.DailyComputation{Hours: 8, Days: 1}, got)
}

func TestComputeDay_LunchDeducted(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	// 09:00-16:00 = 7h minus 1h lunch = 6h
	got := svc.ComputeDay(clock(9, 0), clock(16, 0), nil)
	assert.Equal(t, timecard.DailyComputation{Hours: 6, Days: 0.75}, got)
}

func TestComputeDay_EarlyCheckoutForcesHalfDay(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	// effective end 13:45 is at or before 13:59
	got := svc.ComputeDay(clock(7, 0), clock(13, 45), nil)
	assert.Equal(t, timecard.DailyComputation{Hours: 4, Days: 0.5}, got)

	// 14:00 escapes the coarse rule: 7h span minus lunch = 6h
	got = svc.ComputeDay(clock(7, 0), clock(14, 0), nil)
	assert.Equal(t, timecard.DailyComputation{Hours: 6, Days: 0.75}, got)
}

func TestComputeDay_FractionalHoursRounded(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	// 08:10-15:20 = 430min minus 60min lunch = 370min = 6.17h rounded
	got := svc.ComputeDay(clock(8, 10), clock(15, 20), nil)
	assert.Equal(t, 6.17, got.Hours)
	assert.InDelta(t, 6.17/8, got.Days, 1e-9)
}

func TestComputeDay_FixedSchedule(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	fixedOut := clock(16, 0)

	// both punches present: paid a full day regardless of duration
	got := svc.ComputeDay(clock(8, 0), clock(17, 30), fixedOut)
	assert.Equal(t, timecard.DailyComputation{Hours: 8, Days: 1}, got)

	// the anomaly credit still applies to one-sided punches
	got = svc.ComputeDay(clock(8, 0), nil, fixedOut)
	assert.Equal(t, timecard.DailyComputation{Hours: 4, Days: 0.5}, got)

	// rejected pairs stay rejected
	got = svc.ComputeDay(clock(5, 0), clock(16, 0), fixedOut)
	assert.Equal(t, timecard.DailyComputation{}, got)
}

// ===== SUMMARIZE CUTOFF =====

var june = timecard.Period{Start: "2024-06-01", End: "2024-06-15"}

func TestSummarizeCutoff_PunchesOnly(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	rows := []timecard.AttendanceRow{
		{Date: "2024-06-03", TimeIn: clock(8, 0), TimeOut: clock(17, 0)},
		{Date: "2024-06-04", TimeIn: clock(8, 0), TimeOut: nil}, // anomaly: half day
	}

	got := svc.SummarizeCutoff(rows, nil, nil, june)
	assert.Equal(t, 12.0, got.TotalHours)
	assert.Equal(t, 1.5, got.TotalDays)
	assert.Equal(t, 0.0, got.RDOTHours)
}

func TestSummarizeCutoff_RemoteHoursAdditiveAndCapped(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	rows := []timecard.AttendanceRow{
		{Date: "2024-06-03", TimeIn: clock(8, 0), TimeOut: clock(12, 0)},
	}
	filed := []timecard.FiledRequest{
		// remote hours on the same date stack on the punch baseline but the
		// day never exceeds 8h
		{Type: timecard.RequestWFH, Date: "2024-06-03", Hours: 6, Status: "approved"},
		// remote with both punch times goes through the per-day algorithm
		{Type: timecard.RequestRemoteWork, Date: "2024-06-05", TimeIn: clock(8, 0), TimeOut: clock(17, 0), Status: "approved"},
	}

	got := svc.SummarizeCutoff(rows, filed, nil, june)
	assert.Equal(t, 16.0, got.TotalHours)
	assert.Equal(t, 2.0, got.TotalDays)
}

func TestSummarizeCutoff_RDOTTrackedSeparately(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	filed := []timecard.FiledRequest{
		{Type: timecard.RequestRDOT, Date: "2024-06-08", Hours: 5, Status: "approved"},
		{Type: timecard.RequestRDOT, Date: "2024-06-09", Hours: 3, Status: "approved"},
	}

	got := svc.SummarizeCutoff(nil, filed, nil, june)
	assert.Equal(t, 8.0, got.RDOTHours)
	// rest-day overtime never feeds the worked totals
	assert.Equal(t, 0.0, got.TotalHours)
	assert.Equal(t, 0.0, got.TotalDays)
}

func TestSummarizeCutoff_FiltersPendingAndOutOfRange(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	filed := []timecard.FiledRequest{
		{Type: timecard.RequestWFH, Date: "2024-06-03", Hours: 8, Status: "pending"},
		{Type: timecard.RequestWFH, Date: "2024-06-20", Hours: 8, Status: "approved"},
	}
	rows := []timecard.AttendanceRow{
		{Date: "2024-05-31", TimeIn: clock(8, 0), TimeOut: clock(17, 0)},
	}

	got := svc.SummarizeCutoff(rows, filed, nil, june)
	assert.Equal(t, timecard.CutoffSummary{}, got)
}

func TestSummarizeCutoff_FiledHoursVerbatimWithoutTimes(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	filed := []timecard.FiledRequest{
		{Type: timecard.RequestRemoteWork, Date: "2024-06-06", Hours: 3.5, Status: "approved"},
	}

	got := svc.SummarizeCutoff(nil, filed, nil, june)
	assert.Equal(t, 3.5, got.TotalHours)
	assert.Equal(t, 0.438, got.TotalDays)
}

func TestSummarizeCutoff_Deterministic(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	rows := []timecard.AttendanceRow{
		{Date: "2024-06-05", TimeIn: clock(8, 0), TimeOut: clock(17, 0)},
		{Date: "2024-06-03", TimeIn: clock(9, 0), TimeOut: clock(16, 0)},
	}
	filed := []timecard.FiledRequest{
		{Type: timecard.RequestWFH, Date: "2024-06-04", Hours: 4, Status: "approved"},
		{Type: timecard.RequestRDOT, Date: "2024-06-08", Hours: 2, Status: "approved"},
	}

	first := svc.SummarizeCutoff(rows, filed, nil, june)
	second := svc.SummarizeCutoff(rows, filed, nil, june)
	assert.Equal(t, first, second)
}

func TestFiledHoursByType(t *testing.T) {
	t.Parallel()

	filed := []timecard.FiledRequest{
		{Type: timecard.RequestOT, Date: "2024-06-03", Hours: 2, Status: "approved"},
		{Type: timecard.RequestOT, Date: "2024-06-04", Hours: 1.5, Status: "approved"},
		{Type: timecard.RequestOT, Date: "2024-06-05", Hours: 3, Status: "rejected"},
		{Type: timecard.RequestLeave, Date: "2024-06-06", Hours: 8, Status: "approved"},
	}

	got := FiledHoursByType(filed, timecard.RequestOT, june)
	assert.Equal(t, 3.5, got)
}
