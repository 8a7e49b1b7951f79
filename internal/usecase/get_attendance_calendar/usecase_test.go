package get_attendance_calendar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/internal/infra/storage/resource"
	"github.com/m04kA/SMC-GymConsole/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type plainMoney struct{}

func (plainMoney) Currency(amount float64) string { return fmt.Sprintf("$%.2f", amount) }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeEmployees map[string]domain.Employee

func (f fakeEmployees) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	e, ok := f[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	return &e, nil
}

type fakeAttendance struct {
	marks    []*domain.AttendanceMark
	from, to domain.CalendarDate
	err      error
}

func (f *fakeAttendance) ListByEmployee(_ context.Context, _ string, from, to domain.CalendarDate) ([]*domain.AttendanceMark, error) {
	f.from, f.to = from, to
	return f.marks, f.err
}

func newTestUseCase(att *fakeAttendance) *UseCase {
	employees := fakeEmployees{"emp-1": {
		Record: domain.Record{ID: "emp-1"},
		Name:   "Anna", Role: "trainer", Salary: 2800, Status: "active",
	}}
	uc := NewUseCase(employees, att, plainMoney{}, nopLogger{})
	uc.timeProvider = fixedClock{now: time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_StatsAndPayroll(t *testing.T) {
	att := &fakeAttendance{marks: []*domain.AttendanceMark{
		{ID: "a1", EmployeeID: "emp-1", Date: "2026-02-02", Status: domain.AttendancePresent},
		{ID: "a2", EmployeeID: "emp-1", Date: "2026-02-03", Status: domain.AttendanceLate},
		{ID: "a3", EmployeeID: "emp-1", Date: "2026-02-04", Status: domain.AttendanceHalfDay},
		{ID: "a4", EmployeeID: "emp-1", Date: "2026-02-05", Status: domain.AttendanceAbsent},
	}}
	uc := newTestUseCase(att)

	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: "emp-1", SelectedDate: "2026-02-03"})
	require.NoError(t, err)

	assert.Equal(t, domain.CalendarDate("2026-02-01"), att.from)
	assert.Equal(t, domain.CalendarDate("2026-02-28"), att.to)
	assert.Equal(t, "Anna", resp.Employee.Name)
	assert.Equal(t, 4, resp.Stats.Total)
	assert.Equal(t, 2.5, resp.Stats.WorkedDays)
	// 2800 * 2.5 / 28
	assert.Equal(t, 250.0, resp.Payroll)
	assert.Equal(t, "$250.00", resp.FormattedPayroll)

	require.NotNil(t, resp.Calendar.Selected)
	require.Len(t, resp.Calendar.Selected.Attendance, 1)
	assert.Equal(t, "late", resp.Calendar.Selected.Attendance[0].Status)
	assert.Equal(t, 1, resp.Calendar.Weeks[0][2].Count)
}

func TestExecute_EmployeeNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAttendance{})

	_, err := uc.Execute(context.Background(), &Request{EmployeeID: "ghost"})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_InvalidMonth(t *testing.T) {
	uc := newTestUseCase(&fakeAttendance{})

	_, err := uc.Execute(context.Background(), &Request{EmployeeID: "emp-1", Year: ptr.Ptr(2026), Month: ptr.Ptr(-1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PreviousMonth(t *testing.T) {
	att := &fakeAttendance{}
	uc := newTestUseCase(att)

	resp, err := uc.Execute(context.Background(), &Request{EmployeeID: "emp-1", Direction: "prev"})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Calendar.Month)
	assert.Equal(t, domain.CalendarDate("2026-01-31"), att.to)
	assert.Equal(t, 0.0, resp.Payroll)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeAttendance{err: errors.New("timeout")})

	_, err := uc.Execute(context.Background(), &Request{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, ErrInternal)
}
