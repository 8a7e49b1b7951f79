package models

import (
	"github.com/m04kA/SMC-GymConsole/internal/calendar"
)

// MoneyFormatter форматирование сумм для подписей календаря
type MoneyFormatter interface {
	Currency(amount float64) string
}

// MonthRef ссылка на соседний месяц для кнопок навигации
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 0 = январь
}

// DayResponse клетка календаря. У пустых клеток day == 0
type DayResponse struct {
	Day            int     `json:"day"`
	Date           string  `json:"date,omitempty"`
	Count          int     `json:"count"`
	TotalAmount    float64 `json:"totalAmount"`
	FormattedTotal string  `json:"formattedTotal,omitempty"`
	CapacityLabel  string  `json:"capacityLabel,omitempty"`
	Dot            string  `json:"dot"`
	Selected       bool    `json:"selected"`
}

// AgendaResponse элементы выбранного дня
type AgendaResponse struct {
	Date           string               `json:"date"`
	Slots          []SlotResponse       `json:"slots"`
	Bookings       []BookingResponse    `json:"bookings"`
	Attendance     []AttendanceResponse `json:"attendance"`
	Summary        calendar.DaySummary  `json:"summary"`
	FormattedTotal string               `json:"formattedTotal"`
}

// MonthViewResponse месяц календаря
type MonthViewResponse struct {
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Label    string          `json:"label"`
	Prev     MonthRef        `json:"prev"`
	Next     MonthRef        `json:"next"`
	Weekdays []string        `json:"weekdays"`
	Weeks    [][]DayResponse `json:"weeks"`
	Selected *AgendaResponse `json:"selected,omitempty"`
}

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FromMonthView конвертирует view-model месяца в DTO
func FromMonthView(view calendar.MonthView, money MoneyFormatter) MonthViewResponse {
	prev := view.Month.Shift(calendar.Prev)
	next := view.Month.Shift(calendar.Next)

	resp := MonthViewResponse{
		Year:     view.Month.Year,
		Month:    view.Month.Month,
		Label:    view.Month.Label(),
		Prev:     MonthRef{Year: prev.Year, Month: prev.Month},
		Next:     MonthRef{Year: next.Year, Month: next.Month},
		Weekdays: weekdays,
		Weeks:    make([][]DayResponse, 0, len(view.Weeks)),
	}

	for _, week := range view.Weeks {
		days := make([]DayResponse, 0, len(week))
		for _, cell := range week {
			day := DayResponse{Day: cell.Day, Dot: string(cell.Dot)}
			if !cell.Blank() {
				day.Date = cell.Date.String()
				day.Count = cell.Summary.Count
				day.TotalAmount = cell.Summary.TotalAmount
				day.CapacityLabel = cell.Summary.CapacityLabel
				day.Selected = cell.Selected
				if cell.Summary.TotalAmount > 0 {
					day.FormattedTotal = money.Currency(cell.Summary.TotalAmount)
				}
			}
			days = append(days, day)
		}
		resp.Weeks = append(resp.Weeks, days)
	}

	if view.Selected != nil {
		agenda := FromAgenda(*view.Selected, money)
		resp.Selected = &agenda
	}
	return resp
}

// FromAgenda конвертирует агенду дня в DTO
func FromAgenda(a calendar.Agenda, money MoneyFormatter) AgendaResponse {
	return AgendaResponse{
		Date:           a.Date.String(),
		Slots:          FromDomainSlots(a.Slots),
		Bookings:       FromDomainBookings(a.Bookings),
		Attendance:     FromDomainAttendanceList(a.Attendance),
		Summary:        a.Summary,
		FormattedTotal: money.Currency(a.Summary.TotalAmount),
	}
}
