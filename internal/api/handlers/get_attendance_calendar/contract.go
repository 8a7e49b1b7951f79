package get_attendance_calendar

import (
	"context"

	getAttendanceCalendar "github.com/m04kA/SMC-GymConsole/internal/usecase/get_attendance_calendar"
)

type GetAttendanceCalendarUseCase interface {
	Execute(ctx context.Context, req *getAttendanceCalendar.Request) (*getAttendanceCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
