package get_bookings

import (
	"net/url"

	"github.com/m04kA/SMC-GymConsole/internal/api/handlers"
	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров.
// Статус принимается как status или filters[status]
func ToServiceRequest(values url.Values) (*models.ListBookingsRequest, error) {
	q, err := handlers.ParseListQuery(values)
	if err != nil {
		return nil, err
	}

	status := values.Get("status")
	if status == "" {
		status = q.Filters["status"]
	}

	return &models.ListBookingsRequest{
		From:    domain.CalendarDate(values.Get("from")),
		To:      domain.CalendarDate(values.Get("to")),
		Search:  q.Search,
		Status:  status,
		Page:    q.Page,
		PerPage: q.PerPage,
	}, nil
}
