package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

func TestRevenueByDate(t *testing.T) {
	entries := append(BookingEntries([]domain.Booking{
		{Date: "2026-02-01", Price: 100, Status: domain.StatusConfirmed},
		{Date: "2026-02-01", Price: 40, Status: domain.StatusCancelled},
		{Date: "2026-02-03", Price: 60, Status: domain.StatusCompleted},
		{Date: "2026-03-01", Price: 999, Status: domain.StatusConfirmed},
	}), RevenueEntry{Date: "2026-02-03", Amount: 25, Kind: Expense})

	days, err := RevenueByDate(entries, "2026-02-01", "2026-02-03")
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, DailyRevenue{Date: "2026-02-01", Income: 100, Net: 100}, days[0])
	assert.Equal(t, DailyRevenue{Date: "2026-02-02"}, days[1])
	assert.Equal(t, DailyRevenue{Date: "2026-02-03", Income: 60, Expense: 25, Net: 35}, days[2])

	assert.Equal(t, RevenueTotals{Income: 160, Expense: 25, Net: 135}, Totals(days))
}

func TestRevenueByDate_InvalidRange(t *testing.T) {
	_, err := RevenueByDate(nil, "2026-02-03", "2026-02-01")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = RevenueByDate(nil, "bad", "2026-02-01")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSummarizeAttendanceAndPayroll(t *testing.T) {
	marks := []domain.AttendanceMark{
		{Status: domain.AttendancePresent},
		{Status: domain.AttendancePresent},
		{Status: domain.AttendanceLate},
		{Status: domain.AttendanceHalfDay},
		{Status: domain.AttendanceAbsent},
	}

	stats := SummarizeAttendance(marks)
	assert.Equal(t, AttendanceStats{Present: 2, Absent: 1, Late: 1, HalfDay: 1, Total: 5, WorkedDays: 3.5}, stats)

	// февраль 2026: 28 дней
	assert.Equal(t, 350.0, Payroll(2800, stats, 2026, 1))
	assert.Equal(t, 0.0, Payroll(0, stats, 2026, 1))
}
