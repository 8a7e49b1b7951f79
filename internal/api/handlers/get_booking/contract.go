package get_booking

import (
	"context"

	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

type BookingService interface {
	GetBooking(ctx context.Context, id string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
