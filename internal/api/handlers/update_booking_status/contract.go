package update_booking_status

import (
	"context"

	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

type BookingService interface {
	UpdateBookingStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
