package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a reservation of participants for a date and time.
// SlotID is a weak reference: lookup only, deleting the slot keeps the booking
type Booking struct {
	ID           string
	Date         CalendarDate
	MemberName   string
	Instructor   string
	TimeSlot     string
	Participants int
	Price        float64
	Status       BookingStatus
	SlotID       *string
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Booking) ItemID() string         { return b.ID }
func (b Booking) ItemDate() CalendarDate { return b.Date }
func (b Booking) Kind() ItemKind         { return KindBooking }

// IsActive returns true if the booking still holds its slot places
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanTransitionTo returns true if status may be changed to next
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// LinkedTo returns true if the booking references the slot
func (b *Booking) LinkedTo(slotID string) bool {
	return b.SlotID != nil && *b.SlotID == slotID
}

// ParseBookingStatus validates a raw status value
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusConfirmed, StatusPending, StatusCancelled, StatusCompleted:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	From   CalendarDate   // Начало периода (включительно), пустая - без ограничения
	To     CalendarDate   // Конец периода (включительно), пустая - без ограничения
	SlotID *string        // Только бронирования слота
	Status *BookingStatus // Фильтр по статусу
}
