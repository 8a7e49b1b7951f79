package calendar

import (
	"errors"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
	"github.com/m04kA/SMC-GymConsole/pkg/types"
)

var (
	ErrSlotClosed       = errors.New("calendar: slot is closed")
	ErrSlotNotAvailable = errors.New("calendar: not enough free places in slot")
	ErrDateMismatch     = errors.New("calendar: booking date differs from slot date")
)

// NewSlot собирает слот из формы. Вместимость, длительность и цена
// берутся из defaults, если не заданы в форме
func NewSlot(form SlotForm, id string, defaults *domain.ScheduleConfig) (domain.Slot, error) {
	form.normalize()
	if err := validation.Struct(form); err != nil {
		return domain.Slot{}, err
	}
	if defaults == nil {
		defaults = domain.DefaultScheduleConfig()
	}

	start, err := types.NewTimeStringFromString(form.Time)
	if err != nil {
		return domain.Slot{}, validation.FieldErrors{{Field: "time", Message: "неверный формат, ожидается 15:04"}}
	}

	slot := domain.Slot{
		ID:              id,
		Date:            domain.CalendarDate(form.Date),
		Time:            start,
		DurationMinutes: form.DurationMinutes,
		Title:           form.Title,
		Instructor:      form.Instructor,
		BranchID:        form.BranchID,
		Capacity:        form.Capacity,
		Price:           defaults.DefaultPrice,
	}
	if slot.DurationMinutes == 0 {
		slot.DurationMinutes = defaults.SlotDurationMinutes
	}
	if slot.Capacity == 0 {
		slot.Capacity = defaults.DefaultCapacity
	}
	if form.Price != nil {
		slot.Price = *form.Price
	}

	return slot, nil
}

// NewBooking собирает бронирование без привязки к слоту
func NewBooking(form BookingForm, id string) (domain.Booking, error) {
	form.normalize()
	if err := validation.Struct(form); err != nil {
		return domain.Booking{}, err
	}

	booking := bookingFromForm(form, id)
	if form.Price != nil {
		booking.Price = *form.Price
	}
	return booking, nil
}

// ApplyBooking бронирует места в слоте. Возвращает новое бронирование и
// слот с увеличенным Booked; исходный слот не меняется
func ApplyBooking(slot domain.Slot, form BookingForm, id string) (domain.Booking, domain.Slot, error) {
	form.normalize()
	if err := validation.Struct(form); err != nil {
		return domain.Booking{}, slot, err
	}

	if slot.Closed {
		return domain.Booking{}, slot, ErrSlotClosed
	}
	if domain.CalendarDate(form.Date) != slot.Date {
		return domain.Booking{}, slot, ErrDateMismatch
	}
	if slot.Booked+form.Participants > slot.Capacity {
		return domain.Booking{}, slot, ErrSlotNotAvailable
	}

	booking := bookingFromForm(form, id)
	slotID := slot.ID
	booking.SlotID = &slotID
	if booking.Instructor == "" {
		booking.Instructor = slot.Instructor
	}
	booking.Price = slot.Price * float64(form.Participants)
	if form.Price != nil {
		booking.Price = *form.Price
	}

	slot.Booked += form.Participants
	return booking, slot, nil
}

func bookingFromForm(form BookingForm, id string) domain.Booking {
	return domain.Booking{
		ID:           id,
		Date:         domain.CalendarDate(form.Date),
		MemberName:   form.MemberName,
		Instructor:   form.Instructor,
		TimeSlot:     form.TimeSlot,
		Participants: form.Participants,
		Status:       domain.BookingStatus(form.Status),
		SlotID:       form.SlotID,
		Notes:        form.Notes,
	}
}

// NewAttendanceMark собирает отметку посещаемости; уход не раньше прихода
func NewAttendanceMark(form AttendanceForm, id string) (domain.AttendanceMark, error) {
	form.normalize()
	if err := validation.Struct(form); err != nil {
		return domain.AttendanceMark{}, err
	}

	mark := domain.AttendanceMark{
		ID:         id,
		EmployeeID: form.EmployeeID,
		Date:       domain.CalendarDate(form.Date),
		CheckIn:    types.TimeString(form.CheckIn),
		CheckOut:   types.TimeString(form.CheckOut),
		Status:     domain.AttendanceStatus(form.Status),
	}

	if !mark.CheckIn.IsZero() && !mark.CheckOut.IsZero() && mark.CheckOut.IsBefore(mark.CheckIn) {
		return domain.AttendanceMark{}, validation.FieldErrors{{Field: "checkOut", Message: "время ухода раньше времени прихода"}}
	}
	return mark, nil
}
