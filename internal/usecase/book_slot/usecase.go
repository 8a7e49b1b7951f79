package book_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	"github.com/m04kA/SMC-GymConsole/internal/domain"
	bookingRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/slot"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
	"github.com/m04kA/SMC-GymConsole/pkg/pgerrors"
	"github.com/m04kA/SMC-GymConsole/pkg/ptr"
)

const operation = "book_slot"

// UseCase use case для бронирования мест в слоте
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	metrics     Metrics
	newID       func() string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		metrics:     metrics,
		newID:       uuid.NewString,
		logger:      logger,
	}
}

// Execute выполняет use case бронирования.
// Бронирование в слот выполняется в сериализуемой транзакции: чтение занятости,
// проверка вместимости и вставка бронирования не пересекаются с параллельными
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	form := req.Form
	slotID := strings.TrimSpace(ptr.Value(form.SlotID))
	if slotID == "" {
		form.SlotID = nil
		return uc.createUnlinked(ctx, form)
	}
	uc.logger.Info("BookSlot: slot=%s, member=%q, date=%s, participants=%d",
		slotID, form.MemberName, form.Date, form.Participants)

	var booking domain.Booking
	var slot domain.Slot

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Слот с текущей занятостью, строка блокируется до конца транзакции
		current, err := uc.slotRepo.GetByID(txCtx, slotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("BookSlot: slot id=%s not found", slotID)
				return ErrSlotNotFound
			}
			return err
		}

		// 2. Проверка вместимости и сборка бронирования
		booking, slot, err = calendar.ApplyBooking(*current, form, uc.newID())
		if err != nil {
			uc.logger.Warn("BookSlot: slot id=%s rejected booking: %v", slotID, err)
			return translateCalendarError(err)
		}

		// 3. Обновляем слот, чтобы параллельное бронирование получило конфликт сериализации
		if err := uc.slotRepo.Touch(txCtx, slotID); err != nil {
			return err
		}

		// 4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &booking)
		if err != nil {
			return err
		}
		booking = *created

		return nil
	})

	if err != nil {
		return nil, uc.fail(slotID, err)
	}

	uc.metrics.IncScheduleOperation(operation, "ok")
	uc.logger.Info("BookSlot: booking id=%s created, slot id=%s is %s (%s)",
		booking.ID, slot.ID, slot.Status(), slot.CapacityLabel())

	slotResp := models.FromDomainSlot(slot)
	return &Response{
		Booking: models.FromDomainBooking(booking),
		Slot:    &slotResp,
	}, nil
}

// createUnlinked бронирование без слота (запись на время вне расписания)
func (uc *UseCase) createUnlinked(ctx context.Context, form calendar.BookingForm) (*Response, error) {
	uc.logger.Info("BookSlot: booking without slot, member=%q, date=%s, time=%s",
		form.MemberName, form.Date, form.TimeSlot)

	booking, err := calendar.NewBooking(form, uc.newID())
	if err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		uc.metrics.IncScheduleOperation(operation, "rejected")
		return nil, err
	}

	created, err := uc.bookingRepo.Create(ctx, &booking)
	if err != nil {
		uc.logger.Error("BookSlot: failed to create booking: %v", err)
		uc.metrics.IncScheduleOperation(operation, "error")
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.metrics.IncScheduleOperation(operation, "ok")
	uc.logger.Info("BookSlot: booking id=%s created", created.ID)
	return &Response{Booking: models.FromDomainBooking(*created)}, nil
}

// fail переводит ошибку транзакции в ошибку use case и считает результат
func (uc *UseCase) fail(slotID string, err error) error {
	switch {
	case isConcurrentUpdate(err):
		uc.logger.Warn("BookSlot: concurrent booking of slot id=%s: %v", slotID, err)
		uc.metrics.IncScheduleOperation(operation, "conflict")
		return ErrConcurrentUpdate
	case errors.Is(err, ErrSlotNotFound),
		errors.Is(err, ErrSlotClosed),
		errors.Is(err, ErrSlotNotAvailable),
		errors.Is(err, ErrDateMismatch),
		errors.Is(err, validation.ErrInvalidInput):
		uc.metrics.IncScheduleOperation(operation, "rejected")
		return err
	default:
		uc.logger.Error("BookSlot: failed to book slot id=%s: %v", slotID, err)
		uc.metrics.IncScheduleOperation(operation, "error")
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func translateCalendarError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrSlotClosed):
		return ErrSlotClosed
	case errors.Is(err, calendar.ErrSlotNotAvailable):
		return ErrSlotNotAvailable
	case errors.Is(err, calendar.ErrDateMismatch):
		return ErrDateMismatch
	default:
		return err
	}
}

// isConcurrentUpdate конфликт сериализации при чтении, записи или фиксации транзакции
func isConcurrentUpdate(err error) bool {
	return errors.Is(err, slotRepo.ErrConcurrentUpdate) ||
		errors.Is(err, bookingRepo.ErrConcurrentUpdate) ||
		pgerrors.IsSerializationFailure(err)
}
