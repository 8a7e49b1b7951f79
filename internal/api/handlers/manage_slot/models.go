package manage_slot

// CloseSlotRequest открыть или закрыть слот для бронирования
type CloseSlotRequest struct {
	Closed *bool `json:"closed"`
}
