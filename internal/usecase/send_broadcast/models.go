package send_broadcast

import "github.com/m04kA/SMC-GymConsole/internal/domain"

// Request модель запроса на отправку рассылки
type Request struct {
	BroadcastID string
}

// Response отправленная рассылка
type Response struct {
	Broadcast  domain.Broadcast `json:"broadcast"`
	DeliveryID string           `json:"deliveryId"`
	Recipients int              `json:"recipients"`
}
