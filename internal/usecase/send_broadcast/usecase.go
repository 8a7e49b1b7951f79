package send_broadcast

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/internal/infra/storage/resource"
	"github.com/m04kA/SMC-GymConsole/internal/integrations/notifier"
)

// UseCase отправка черновика рассылки через шлюз
type UseCase struct {
	broadcastRepo BroadcastRepository
	notifier      NotifierClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(broadcastRepo BroadcastRepository, notifier NotifierClient, logger Logger) *UseCase {
	return &UseCase{
		broadcastRepo: broadcastRepo,
		notifier:      notifier,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute отправляет рассылку. При отказе шлюза рассылка сохраняется со статусом failed
// и может быть отправлена повторно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SendBroadcast: id=%s", req.BroadcastID)

	broadcast, err := uc.broadcastRepo.GetByID(ctx, req.BroadcastID)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			uc.logger.Warn("SendBroadcast: broadcast id=%s not found", req.BroadcastID)
			return nil, ErrBroadcastNotFound
		}
		uc.logger.Error("SendBroadcast: failed to get broadcast id=%s: %v", req.BroadcastID, err)
		return nil, fmt.Errorf("%w: SendBroadcast - repository error: %v", ErrInternal, err)
	}

	if broadcast.Status == domain.BroadcastSent {
		uc.logger.Warn("SendBroadcast: broadcast id=%s already sent at %v", broadcast.ID, broadcast.SentAt)
		return nil, ErrAlreadySent
	}

	delivery, sendErr := uc.notifier.Send(ctx, notifier.Message{
		BroadcastID: broadcast.ID,
		Title:       broadcast.Title,
		Message:     broadcast.Message,
		Audience:    broadcast.Audience,
		Channel:     broadcast.Channel,
	})

	if sendErr != nil {
		broadcast.Status = domain.BroadcastFailed
		broadcast.SentAt = nil
	} else {
		sentAt := uc.timeProvider.Now().UTC()
		broadcast.Status = domain.BroadcastSent
		broadcast.SentAt = &sentAt
	}

	if err := uc.broadcastRepo.Update(ctx, broadcast); err != nil {
		uc.logger.Error("SendBroadcast: failed to store status=%s for broadcast id=%s: %v", broadcast.Status, broadcast.ID, err)
		return nil, fmt.Errorf("%w: SendBroadcast - repository error: %v", ErrInternal, err)
	}

	if sendErr != nil {
		uc.logger.Error("SendBroadcast: delivery failed for broadcast id=%s: %v", broadcast.ID, sendErr)
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, sendErr)
	}

	uc.logger.Info("SendBroadcast: broadcast id=%s sent, recipients=%d", broadcast.ID, delivery.Recipients)
	return &Response{
		Broadcast:  *broadcast,
		DeliveryID: delivery.DeliveryID,
		Recipients: delivery.Recipients,
	}, nil
}
