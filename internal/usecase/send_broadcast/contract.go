package send_broadcast

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/internal/integrations/notifier"
)

// BroadcastRepository репозиторий рассылок
type BroadcastRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Broadcast, error)
	Update(ctx context.Context, item *domain.Broadcast) error
}

// NotifierClient шлюз рассылок
type NotifierClient interface {
	Send(ctx context.Context, msg notifier.Message) (*notifier.Delivery, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
