package book_slot

import (
	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

// Request модель запроса на бронирование. Form.SlotID == nil - бронирование без слота
type Request struct {
	Form calendar.BookingForm
}

// Response созданное бронирование и слот после бронирования
type Response struct {
	Booking models.BookingResponse `json:"booking"`
	Slot    *models.SlotResponse   `json:"slot,omitempty"`
}
