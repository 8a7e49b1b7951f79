package get_bookings

import (
	"context"

	"github.com/m04kA/SMC-GymConsole/internal/listing"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

type BookingService interface {
	ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*listing.Envelope[models.BookingResponse], error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
