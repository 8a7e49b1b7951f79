package get_attendance_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/internal/infra/storage/resource"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

// UseCase календарь посещаемости сотрудника
type UseCase struct {
	employeeRepo   EmployeeRepository
	attendanceRepo AttendanceRepository
	money          MoneyFormatter
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	employeeRepo EmployeeRepository,
	attendanceRepo AttendanceRepository,
	money MoneyFormatter,
	logger Logger,
) *UseCase {
	return &UseCase{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		money:          money,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute собирает месяц посещаемости, статистику и зарплату за месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAttendanceCalendar: employee id=%s", req.EmployeeID)

	month, selection, err := uc.resolveMonth(req)
	if err != nil {
		uc.logger.Warn("GetAttendanceCalendar: validation failed: %v", err)
		return nil, err
	}

	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			uc.logger.Warn("GetAttendanceCalendar: employee id=%s not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("GetAttendanceCalendar: failed to get employee id=%s: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: GetAttendanceCalendar - employee repository error: %v", ErrInternal, err)
	}

	from, to := month.Range()
	items, err := uc.attendanceRepo.ListByEmployee(ctx, employee.ID, from, to)
	if err != nil {
		uc.logger.Error("GetAttendanceCalendar: failed to list marks for employee id=%s: %v", employee.ID, err)
		return nil, fmt.Errorf("%w: GetAttendanceCalendar - attendance repository error: %v", ErrInternal, err)
	}
	marks := models.Deref(items)

	board := calendar.NewBoard(nil, nil, marks)
	stats := calendar.SummarizeAttendance(marks)
	payroll := calendar.Payroll(employee.Salary, stats, month.Year, month.Month)

	uc.logger.Info("GetAttendanceCalendar: employee id=%s, month=%s, marks=%d, workedDays=%.1f",
		employee.ID, month.Label(), stats.Total, stats.WorkedDays)

	return &Response{
		Employee: EmployeeInfo{
			ID:     employee.ID,
			Name:   employee.Name,
			Role:   employee.Role,
			Salary: employee.Salary,
			Status: employee.Status,
		},
		Calendar:         models.FromMonthView(board.MonthView(month, selection), uc.money),
		Stats:            stats,
		Payroll:          payroll,
		FormattedPayroll: uc.money.Currency(payroll),
	}, nil
}

func (uc *UseCase) resolveMonth(req *Request) (calendar.Month, calendar.Selection, error) {
	if req.EmployeeID == "" {
		return calendar.Month{}, calendar.Selection{}, fmt.Errorf("%w: employee id is required", ErrInvalidInput)
	}

	month := calendar.CurrentMonth(uc.timeProvider.Now())
	if (req.Year == nil) != (req.Month == nil) {
		return calendar.Month{}, calendar.Selection{}, fmt.Errorf("%w: year and month must be set together", ErrInvalidInput)
	}
	if req.Year != nil {
		month = calendar.Month{Year: *req.Year, Month: *req.Month}
		if !month.Valid() || month.Year < 1 {
			return calendar.Month{}, calendar.Selection{}, fmt.Errorf("%w: month must be in 0..11", ErrInvalidInput)
		}
	}
	if req.Direction != "" {
		dir, err := calendar.ParseDirection(req.Direction)
		if err != nil {
			return calendar.Month{}, calendar.Selection{}, fmt.Errorf("%w: direction must be prev or next", ErrInvalidInput)
		}
		month = month.Shift(dir)
	}

	selected := domain.CalendarDate(req.SelectedDate)
	if !selected.IsZero() {
		if err := selected.Validate(); err != nil {
			return calendar.Month{}, calendar.Selection{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return month, calendar.NewSelection(selected), nil
}
