package report

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/employee"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/report"
	periodService "github.com/cmlabs-hris/hris-attendance-core/internal/service/period"
)

const unassignedDepartment = "Unassigned"

// inWindow keeps events whose business day starts inside w.
func inWindow(events []attendance.Event, w period.Window, loc *time.Location) []attendance.Event {
	kept := make([]attendance.Event, 0, len(events))
	for _, e := range events {
		if w.Contains(periodService.DayIn(e.CalendarDate, loc)) {
			kept = append(kept, e)
		}
	}
	return kept
}

// foldTally folds statuses into a single Tally.
func foldTally(events []attendance.Event) report.Tally {
	var t report.Tally
	for _, e := range events {
		t = t.Add(e.Status)
	}
	return t
}

// foldBy groups events by key and folds each group.
func foldBy(events []attendance.Event, key func(attendance.Event) string) map[string]report.Tally {
	out := make(map[string]report.Tally)
	for _, e := range events {
		k := key(e)
		out[k] = out[k].Add(e.Status)
	}
	return out
}

func departmentKey(e attendance.Event) string {
	if e.Department == "" {
		return unassignedDepartment
	}
	return e.Department
}

func dayKey(loc *time.Location) func(attendance.Event) string {
	return func(e attendance.Event) string {
		return periodService.DateKey(periodService.DayIn(e.CalendarDate, loc))
	}
}

func punctualityStat(t report.Tally) report.PunctualityStat {
	return report.PunctualityStat{Rate: t.Rate(), SampleSize: t.Total()}
}

// punctualityByDepartment omits departments without events.
func punctualityByDepartment(events []attendance.Event) map[string]report.PunctualityStat {
	return departmentStats(foldBy(events, departmentKey))
}

func departmentStats(tallies map[string]report.Tally) map[string]report.PunctualityStat {
	out := make(map[string]report.PunctualityStat, len(tallies))
	for dept, t := range tallies {
		out[dept] = punctualityStat(t)
	}
	return out
}

// mergeTallies combines per-group tallies into one.
func mergeTallies(tallies map[string]report.Tally) report.Tally {
	var total report.Tally
	for _, t := range tallies {
		total = total.Merge(t)
	}
	return total
}

// trendPoints emits one point per day of w, zero-valued for days without events.
func trendPoints(events []attendance.Event, w period.Window, loc *time.Location) []report.TrendPoint {
	byDay := foldBy(inWindow(events, w, loc), dayKey(loc))

	days := w.Days()
	points := make([]report.TrendPoint, 0, len(days))
	for _, d := range days {
		t := byDay[periodService.DateKey(d)]
		points = append(points, report.TrendPoint{
			Date:          periodService.DateKey(d),
			Rate:          t.Rate(),
			TotalSessions: t.Total(),
		})
	}
	return points
}

var sessionOrder = map[attendance.SessionType]int{
	attendance.SessionCheckIn:  0,
	attendance.SessionLunchOut: 1,
	attendance.SessionLunchIn:  2,
	attendance.SessionCheckOut: 3,
}

// buildRoster merges the day's events into one entry per employee. Employees that only
// appear in events (e.g. deactivated since) are still listed.
func buildRoster(employees []employee.Employee, events []attendance.Event, workingDay bool, loc *time.Location) []report.RosterEntry {
	byEmployee := make(map[string][]attendance.Event)
	for _, e := range events {
		byEmployee[e.EmployeeID] = append(byEmployee[e.EmployeeID], e)
	}

	entries := make([]report.RosterEntry, 0, len(employees))
	seen := make(map[string]bool, len(employees))
	for _, emp := range employees {
		seen[emp.ID] = true
		entries = append(entries, rosterEntry(emp.ID, emp.FullName, emp.Department, byEmployee[emp.ID], workingDay, loc))
	}
	for id, evs := range byEmployee {
		if seen[id] {
			continue
		}
		name := ""
		if evs[0].EmployeeName != nil {
			name = *evs[0].EmployeeName
		}
		entries = append(entries, rosterEntry(id, name, evs[0].Department, evs, workingDay, loc))
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Department != b.Department {
			return a.Department < b.Department
		}
		if a.EmployeeName != b.EmployeeName {
			return a.EmployeeName < b.EmployeeName
		}
		return a.EmployeeID < b.EmployeeID
	})
	return entries
}

func rosterEntry(id, name, department string, events []attendance.Event, workingDay bool, loc *time.Location) report.RosterEntry {
	sorted := append([]attendance.Event(nil), events...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if sessionOrder[a.SessionType] != sessionOrder[b.SessionType] {
			return sessionOrder[a.SessionType] < sessionOrder[b.SessionType]
		}
		if !a.RecordedAt.Equal(b.RecordedAt) {
			return a.RecordedAt.Before(b.RecordedAt)
		}
		return a.ID < b.ID
	})

	items := make([]report.EventItem, 0, len(sorted))
	for _, e := range sorted {
		items = append(items, report.EventItem{
			ID:          e.ID,
			SessionType: string(e.SessionType),
			ActualTime:  e.ActualTime,
			Status:      string(e.Status),
			RecordedAt:  e.RecordedAt.In(loc).Format(time.RFC3339),
		})
	}

	present := len(items) > 0
	return report.RosterEntry{
		EmployeeID:   id,
		EmployeeName: name,
		Department:   department,
		Present:      present,
		Absent:       workingDay && !present,
		Events:       items,
	}
}
