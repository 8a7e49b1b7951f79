package notifier

// Message рассылка для шлюза
type Message struct {
	BroadcastID string `json:"broadcast_id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Audience    string `json:"audience"` // all, active, expired
	Channel     string `json:"channel"`  // sms, email, push
}

// Delivery ответ шлюза о принятой рассылке
type Delivery struct {
	DeliveryID string `json:"delivery_id"`
	Recipients int    `json:"recipients"`
}

// ErrorResponse модель ошибки шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
