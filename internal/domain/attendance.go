package domain

import (
	"time"

	"github.com/m04kA/SMC-GymConsole/pkg/types"
)

// AttendanceStatus статус отметки посещаемости сотрудника
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceHalfDay AttendanceStatus = "half-day"
)

// AttendanceMark отметка прихода/ухода сотрудника за один день
type AttendanceMark struct {
	ID         string
	EmployeeID string
	Date       CalendarDate
	CheckIn    types.TimeString
	CheckOut   types.TimeString
	Status     AttendanceStatus

	CreatedAt time.Time
}

func (a AttendanceMark) ItemID() string         { return a.ID }
func (a AttendanceMark) ItemDate() CalendarDate { return a.Date }
func (a AttendanceMark) Kind() ItemKind         { return KindAttendance }

// WorkedDayFraction доля отработанного дня для расчёта зарплаты
func (a AttendanceMark) WorkedDayFraction() float64 {
	switch a.Status {
	case AttendancePresent, AttendanceLate:
		return 1
	case AttendanceHalfDay:
		return 0.5
	default:
		return 0
	}
}
