package get_calendar

import (
	"fmt"

	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

// resolveMonth определяет месяц и выбранную дату запроса.
// Выбранная дата вне месяца не подсвечивается, но агенда по ней строится
func resolveMonth(req *Request, clock TimeProvider) (calendar.Month, calendar.Selection, error) {
	month := calendar.CurrentMonth(clock.Now())

	if (req.Year == nil) != (req.Month == nil) {
		return calendar.Month{}, calendar.Selection{}, fmt.Errorf("%w: year and month must be set together", ErrInvalidInput)
	}
	if req.Year != nil {
		month = calendar.Month{Year: *req.Year, Month: *req.Month}
		if !month.Valid() || month.Year < 1 {
			return calendar.Month{}, calendar.Selection{}, fmt.Errorf("%w: month must be in 0..11", ErrInvalidInput)
		}
	}

	if req.Direction != "" {
		dir, err := calendar.ParseDirection(req.Direction)
		if err != nil {
			return calendar.Month{}, calendar.Selection{}, fmt.Errorf("%w: direction must be prev or next", ErrInvalidInput)
		}
		month = month.Shift(dir)
	}

	selected := domain.CalendarDate(req.SelectedDate)
	if !selected.IsZero() {
		if err := selected.Validate(); err != nil {
			return calendar.Month{}, calendar.Selection{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return month, calendar.NewSelection(selected), nil
}
