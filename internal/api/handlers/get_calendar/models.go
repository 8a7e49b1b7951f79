package get_calendar

import (
	"net/url"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
	getCalendar "github.com/m04kA/SMC-GymConsole/internal/usecase/get_calendar"
)

// ToUseCaseRequest query параметры year, month (0 = январь), direction, date, branchId
func ToUseCaseRequest(view getCalendar.View, values url.Values) (*getCalendar.Request, error) {
	year, err := handlers.OptionalInt(values, "year")
	if err != nil {
		return nil, err
	}
	month, err := handlers.OptionalInt(values, "month")
	if err != nil {
		return nil, err
	}

	return &getCalendar.Request{
		View:         view,
		Year:         year,
		Month:        month,
		Direction:    values.Get("direction"),
		SelectedDate: values.Get("date"),
		BranchID:     handlers.OptionalString(values, "branchId"),
	}, nil
}
