package calendar

import (
	"errors"
	"math"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

var ErrInvalidRange = errors.New("calendar: invalid date range")

// EntryKind доход или расход
type EntryKind string

const (
	Income  EntryKind = "income"
	Expense EntryKind = "expense"
)

// RevenueEntry одна денежная операция дня
type RevenueEntry struct {
	Date   domain.CalendarDate
	Amount float64
	Kind   EntryKind
}

// DailyRevenue итоги дня
type DailyRevenue struct {
	Date    domain.CalendarDate `json:"date"`
	Income  float64             `json:"income"`
	Expense float64             `json:"expense"`
	Net     float64             `json:"net"`
}

// RevenueTotals итоги периода
type RevenueTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// BookingEntries доходы от бронирований, отменённые не учитываются
func BookingEntries(bookings []domain.Booking) []RevenueEntry {
	entries := make([]RevenueEntry, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		entries = append(entries, RevenueEntry{Date: b.Date, Amount: b.Price, Kind: Income})
	}
	return entries
}

// RevenueByDate ряд по каждому дню [from, to], дни без операций нулевые.
// Операции вне периода пропускаются
func RevenueByDate(entries []RevenueEntry, from, to domain.CalendarDate) ([]DailyRevenue, error) {
	start, err := from.Time()
	if err != nil {
		return nil, ErrInvalidRange
	}
	end, err := to.Time()
	if err != nil || end.Before(start) {
		return nil, ErrInvalidRange
	}

	days := make([]DailyRevenue, 0, int(end.Sub(start).Hours()/24)+1)
	index := make(map[domain.CalendarDate]int)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := domain.CalendarDateOf(d)
		index[date] = len(days)
		days = append(days, DailyRevenue{Date: date})
	}

	for _, e := range entries {
		i, ok := index[e.Date]
		if !ok {
			continue
		}
		switch e.Kind {
		case Income:
			days[i].Income += e.Amount
		case Expense:
			days[i].Expense += e.Amount
		}
	}
	for i := range days {
		days[i].Net = days[i].Income - days[i].Expense
	}
	return days, nil
}

// Totals суммирует ряд
func Totals(days []DailyRevenue) RevenueTotals {
	var t RevenueTotals
	for _, d := range days {
		t.Income += d.Income
		t.Expense += d.Expense
	}
	t.Net = t.Income - t.Expense
	return t
}

// AttendanceStats статистика посещаемости сотрудника
type AttendanceStats struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	HalfDay    int     `json:"halfDay"`
	Total      int     `json:"total"`
	WorkedDays float64 `json:"workedDays"`
}

// SummarizeAttendance считает отметки по статусам, half-day = 0.5 рабочего дня
func SummarizeAttendance(marks []domain.AttendanceMark) AttendanceStats {
	var s AttendanceStats
	for _, m := range marks {
		s.Total++
		switch m.Status {
		case domain.AttendancePresent:
			s.Present++
		case domain.AttendanceAbsent:
			s.Absent++
		case domain.AttendanceLate:
			s.Late++
		case domain.AttendanceHalfDay:
			s.HalfDay++
		}
		s.WorkedDays += m.WorkedDayFraction()
	}
	return s
}

// Payroll зарплата за месяц пропорционально отработанным дням, до копеек
func Payroll(salary float64, stats AttendanceStats, year, month int) float64 {
	days := DaysInMonth(year, month)
	if days == 0 || salary <= 0 {
		return 0
	}
	return math.Round(salary*stats.WorkedDays/float64(days)*100) / 100
}
