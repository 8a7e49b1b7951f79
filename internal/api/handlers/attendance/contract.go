package attendance

import (
	"context"

	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

type AttendanceService interface {
	MarkAttendance(ctx context.Context, employeeID string, form calendar.AttendanceForm) (*models.AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
