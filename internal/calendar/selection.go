package calendar

import "github.com/m04kA/SMC-GymConsole/internal/domain"

// Selection выбранная дата календаря (не больше одной).
// Повторный выбор той же даты её не снимает
type Selection struct {
	date domain.CalendarDate
}

// NewSelection выбор с начальной датой (пустая строка = ничего не выбрано)
func NewSelection(date domain.CalendarDate) Selection {
	return Selection{date: date}
}

// Select выбирает дату, заменяя предыдущую
func (s *Selection) Select(date domain.CalendarDate) {
	s.date = date
}

// Clear снимает выбор
func (s *Selection) Clear() {
	s.date = ""
}

// Selected выбранная дата
func (s Selection) Selected() (domain.CalendarDate, bool) {
	return s.date, !s.date.IsZero()
}

// IsSelected true, если выбрана именно эта дата
func (s Selection) IsSelected(date domain.CalendarDate) bool {
	return !s.date.IsZero() && s.date == date
}
