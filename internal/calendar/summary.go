package calendar

import (
	"fmt"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

// DaySummary сводка по дню для клетки календаря
type DaySummary struct {
	Count         int     `json:"count"`
	TotalAmount   float64 `json:"totalAmount"`
	CapacityLabel string  `json:"capacityLabel,omitempty"`

	booked   int
	capacity int
	slots    int
}

// SummarizeDay считает элементы дня.
// Бронирования добавляют price (кроме отменённых), слоты price*booked и
// подпись booked/capacity, отметки посещаемости только учитываются в count.
// Бронирование слота из того же дня уже вошло в сумму слота
func SummarizeDay[T domain.ScheduledItem](items []T) DaySummary {
	slotIDs := make(map[string]struct{})
	for _, item := range items {
		if slot, ok := any(item).(domain.Slot); ok {
			slotIDs[slot.ID] = struct{}{}
		}
	}

	var s DaySummary
	for _, item := range items {
		s.Count++
		switch v := any(item).(type) {
		case domain.Booking:
			if v.SlotID != nil {
				if _, counted := slotIDs[*v.SlotID]; counted {
					continue
				}
			}
			if v.IsActive() {
				s.TotalAmount += v.Price
			}
		case domain.Slot:
			s.TotalAmount += v.Price * float64(v.Booked)
			s.booked += v.Booked
			s.capacity += v.Capacity
			s.slots++
		}
	}
	if s.slots > 0 {
		s.CapacityLabel = fmt.Sprintf("%d/%d", s.booked, s.capacity)
	}
	return s
}

// Dot компактный индикатор дня для узких экранов
type Dot string

const (
	DotNone   Dot = "none"
	DotLow    Dot = "low"
	DotMedium Dot = "medium"
	DotHigh   Dot = "high"
)

// Dot по заполненности слотов, а без слотов по количеству элементов
func (s DaySummary) Dot() Dot {
	if s.Count == 0 {
		return DotNone
	}

	if s.capacity > 0 {
		ratio := float64(s.booked) / float64(s.capacity)
		switch {
		case ratio >= 1:
			return DotHigh
		case ratio >= 0.5:
			return DotMedium
		default:
			return DotLow
		}
	}

	switch {
	case s.Count >= 4:
		return DotHigh
	case s.Count >= 2:
		return DotMedium
	default:
		return DotLow
	}
}
