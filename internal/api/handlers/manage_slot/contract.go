package manage_slot

import "context"

type SlotService interface {
	SetSlotClosed(ctx context.Context, id string, closed bool) error
	DeleteSlot(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
