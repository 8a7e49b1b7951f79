package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
	getCalendar "github.com/m04kA/SMC-GymConsole/internal/usecase/get_calendar"
)

type GetCalendarUseCase interface {
	Execute(ctx context.Context, req *getCalendar.Request) (*models.MonthViewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
