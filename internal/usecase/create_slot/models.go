package create_slot

import "github.com/m04kA/SMC-GymConsole/internal/calendar"

// Request модель запроса на создание слота
type Request struct {
	Form calendar.SlotForm
}
