package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymConsole/pkg/types"
)

// SlotStatus статус слота
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotFull      SlotStatus = "full"
	SlotClosed    SlotStatus = "closed"
)

// Slot временное окно для бронирования с ограниченной вместимостью.
// Booked не хранится: это сумма участников активных бронирований слота
type Slot struct {
	ID              string
	Date            CalendarDate
	Time            types.TimeString
	DurationMinutes int
	Title           string
	Instructor      string
	BranchID        *string
	Capacity        int
	Booked          int
	Price           float64
	Closed          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Slot) ItemID() string         { return s.ID }
func (s Slot) ItemDate() CalendarDate { return s.Date }
func (s Slot) Kind() ItemKind         { return KindSlot }

// Status вычисляет статус: closed, если слот закрыт, full при Booked >= Capacity
func (s Slot) Status() SlotStatus {
	if s.Closed {
		return SlotClosed
	}
	if s.Booked >= s.Capacity {
		return SlotFull
	}
	return SlotAvailable
}

// AvailableSpots количество свободных мест (не меньше 0)
func (s Slot) AvailableSpots() int {
	if s.Booked >= s.Capacity {
		return 0
	}
	return s.Capacity - s.Booked
}

// OccupancyRate заполненность в процентах (0-100)
func (s Slot) OccupancyRate() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Booked) / float64(s.Capacity) * 100
}

// DurationLabel подпись длительности для карточки слота
func (s Slot) DurationLabel() string {
	if s.DurationMinutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%d мин", s.DurationMinutes)
}

// CapacityLabel подпись вида "booked/capacity"
func (s Slot) CapacityLabel() string {
	return fmt.Sprintf("%d/%d", s.Booked, s.Capacity)
}
