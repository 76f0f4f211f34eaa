package report

import "github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"

// ========================================
// DAILY ROSTER
// ========================================

type Roster struct {
	Date       string        `json:"date"` // YYYY-MM-DD
	WorkingDay bool          `json:"working_day"`
	Entries    []RosterEntry `json:"entries"`
}

type RosterEntry struct {
	EmployeeID   string      `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	Department   string      `json:"department"`
	Present      bool        `json:"present"`
	Absent       bool        `json:"absent"` // only on working days
	Events       []EventItem `json:"events"`
}

type EventItem struct {
	ID          string `json:"id"`
	SessionType string `json:"session_type"`
	ActualTime  string `json:"actual_time"`
	Status      string `json:"status"`
	RecordedAt  string `json:"recorded_at"`
}

// ========================================
// EMPLOYEE PERFORMANCE
// ========================================

type Performance struct {
	EmployeeID    string            `json:"employee_id"`
	EmployeeName  string            `json:"employee_name"`
	Period        string            `json:"period"`
	DateFilter    period.DateFilter `json:"date_filter"`
	OnTimeRate    float64           `json:"on_time_rate"`
	OnTimeCount   int               `json:"on_time_count"`
	LateCount     int               `json:"late_count"`
	EarlyCount    int               `json:"early_count"`
	OvertimeCount int               `json:"overtime_count"`
	TotalSessions int               `json:"total_sessions"`
}

// ========================================
// DEPARTMENT PUNCTUALITY
// ========================================

type PunctualityStat struct {
	Rate       float64 `json:"rate"`
	SampleSize int     `json:"sample_size"`
}

// DepartmentPunctuality holds one entry per department with at least one event.
type DepartmentPunctuality struct {
	DateFilter  period.DateFilter          `json:"date_filter"`
	Departments map[string]PunctualityStat `json:"departments"`
}

// ========================================
// TREND
// ========================================

type TrendPoint struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	Rate          float64 `json:"rate"`
	TotalSessions int     `json:"total_sessions"`
}

// Trend has one point per calendar day, oldest first, with no gaps.
type Trend struct {
	DateFilter period.DateFilter `json:"date_filter"`
	Points     []TrendPoint      `json:"points"`
}

// ========================================
// ADMIN DASHBOARD
// ========================================

type AdminDashboard struct {
	Date                  string                     `json:"date"`
	WorkingDay            bool                       `json:"working_day"`
	DailyRoster           []RosterEntry              `json:"daily_roster"`
	DepartmentPunctuality map[string]PunctualityStat `json:"department_punctuality"`
	OverallPunctuality    PunctualityStat            `json:"overall_punctuality"`
	TotalEmployees        int                        `json:"total_employees"`
	PresentCount          int                        `json:"present_count"`
	AbsentCount           int                        `json:"absent_count"`
}
