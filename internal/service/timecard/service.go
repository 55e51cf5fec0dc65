package timecard

import (
	"sort"

	"github.com/studiopayroll/payroll-engine-go/internal/domain/timecard"
	"github.com/studiopayroll/payroll-engine-go/internal/pkg/timeutil"
)

type TimecardServiceImpl struct {
	sched timecard.Schedule
}

func NewTimecardService(sched timecard.Schedule) timecard.TimecardService {
	return &TimecardServiceImpl{sched: sched}
}

// ComputeDay derives the time credit for one date from a punch pair.
//
// The rules, in precedence order:
//  1. one-sided punch: flat half-day credit — the leniency policy for punch
//     anomalies, never zero
//  2. time-in inside the noon hour: forced half day regardless of time-out
//  3. sanity guards: time-in before EarliestIn, time-out before EarliestOut,
//     or time-out not after time-in reject the pair outright
//  4. fixed-schedule employees who pass the guards with both punches are
//     credited a full day; they are paid for presence, not duration
//  5. otherwise the pair is clipped to the official shift window, a clipped
//     end at or before HalfDayEnd forces a half day, and the remaining
//     minutes minus the lunch overlap convert to hours capped at a full day
func (s *TimecardServiceImpl) ComputeDay(timeIn, timeOut, fixedOut *timeutil.Clock) timecard.DailyComputation {
	sch := s.sched
	half := timecard.DailyComputation{Hours: sch.HalfDayHours, Days: 0.5}

	if timeIn == nil && timeOut == nil {
		return timecard.DailyComputation{}
	}
	if timeIn == nil || timeOut == nil {
		return half
	}

	in, out := *timeIn, *timeOut

	if in >= sch.LunchStart && in < sch.LunchEnd {
		return half
	}
	if in < sch.EarliestIn || out < sch.EarliestOut || out <= in {
		return timecard.DailyComputation{}
	}

	if fixedOut != nil {
		return timecard.DailyComputation{Hours: sch.FullDayHours, Days: 1}
	}

	start, end := in, out
	if start < sch.ShiftStart {
		start = sch.ShiftStart
	}
	if end > sch.ShiftEnd {
		end = sch.ShiftEnd
	}
	if end <= sch.HalfDayEnd {
		return half
	}
	if end <= start {
		return timecard.DailyComputation{}
	}

	mins := int(end-start) - timeutil.OverlapMinutes(start, end, sch.LunchStart, sch.LunchEnd)
	hours := timeutil.Round2(float64(mins) / timeutil.MinutesPerHour)
	if hours > sch.FullDayHours {
		hours = sch.FullDayHours
	}
	days := hours / sch.FullDayHours
	if days > 1 {
		days = 1
	}
	return timecard.DailyComputation{Hours: hours, Days: days}
}

// SummarizeCutoff merges punches with approved filed exceptions over the
// period. Precedence per date: the punch-derived hours are the baseline,
// remote-work/WFH hours are additive, and the total is capped at a full day.
// RDOT hours accumulate separately and never feed the worked totals.
func (s *TimecardServiceImpl) SummarizeCutoff(rows []timecard.AttendanceRow, filed []timecard.FiledRequest, fixedOut *timeutil.Clock, period timecard.Period) timecard.CutoffSummary {
	punchByDate := make(map[string]timecard.AttendanceRow)
	for _, row := range rows {
		if row.Date == "" || !period.Contains(row.Date) {
			continue
		}
		punchByDate[row.Date] = row
	}

	remoteByDate := make(map[string][]timecard.FiledRequest)
	var rdotHours float64
	for _, req := range filed {
		if !req.Eligible(period) {
			continue
		}
		switch req.Type {
		case timecard.RequestRemoteWork, timecard.RequestWFH:
			remoteByDate[req.Date] = append(remoteByDate[req.Date], req)
		case timecard.RequestRDOT:
			rdotHours += req.Hours
		}
	}

	dateSet := make(map[string]struct{}, len(punchByDate)+len(remoteByDate))
	for d := range punchByDate {
		dateSet[d] = struct{}{}
	}
	for d := range remoteByDate {
		dateSet[d] = struct{}{}
	}
	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var totalHours, totalDays float64
	for _, date := range dates {
		var hours float64
		if row, ok := punchByDate[date]; ok {
			hours = s.ComputeDay(row.TimeIn, row.TimeOut, fixedOut).Hours
		}
		for _, req := range remoteByDate[date] {
			if req.TimeIn != nil && req.TimeOut != nil {
				hours += s.ComputeDay(req.TimeIn, req.TimeOut, nil).Hours
			} else {
				hours += req.Hours
			}
		}
		// multiple sources on the same date never stack past a full day
		if hours > s.sched.FullDayHours {
			hours = s.sched.FullDayHours
		}
		totalHours += hours
		totalDays += timeutil.Round3(hours / s.sched.FullDayHours)
	}

	return timecard.CutoffSummary{
		TotalHours: timeutil.Round2(totalHours),
		TotalDays:  timeutil.Round3(totalDays),
		RDOTHours:  timeutil.Round2(rdotHours),
	}
}

// FiledHoursByType sums the hours of eligible filed requests of one type,
// for assembling the calculator input (OT, night diff and the like).
func FiledHoursByType(filed []timecard.FiledRequest, t timecard.RequestType, period timecard.Period) float64 {
	var total float64
	for _, req := range filed {
		if req.Type == t && req.Eligible(period) {
			total += req.Hours
		}
	}
	return total
}
