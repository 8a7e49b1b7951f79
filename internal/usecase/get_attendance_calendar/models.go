package get_attendance_calendar

import (
	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

// Request модель запроса календаря посещаемости сотрудника
type Request struct {
	EmployeeID   string
	Year         *int
	Month        *int // 0 = январь
	Direction    string
	SelectedDate string
}

// EmployeeInfo карточка сотрудника на странице посещаемости
type EmployeeInfo struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Salary float64 `json:"salary"`
	Status string  `json:"status"`
}

// Response месяц посещаемости со статистикой и расчётом зарплаты
type Response struct {
	Employee         EmployeeInfo             `json:"employee"`
	Calendar         models.MonthViewResponse `json:"calendar"`
	Stats            calendar.AttendanceStats `json:"stats"`
	Payroll          float64                  `json:"payroll"`
	FormattedPayroll string                   `json:"formattedPayroll"`
}
