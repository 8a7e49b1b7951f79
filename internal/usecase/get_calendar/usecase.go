package get_calendar

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	"github.com/m04kA/SMC-GymConsole/internal/domain"
	slotRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/slot"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

// UseCase месяц календаря слотов или бронирований с агендой выбранного дня
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	money        MoneyFormatter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	money MoneyFormatter,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		money:        money,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute собирает месяц календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.MonthViewResponse, error) {
	month, selection, err := resolveMonth(req, uc.timeProvider)
	if err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	from, to := month.Range()
	uc.logger.Info("GetCalendar: view=%s, month=%s, from=%s, to=%s", req.View, month.Label(), from, to)

	var (
		slots    []domain.Slot
		bookings []domain.Booking
	)

	switch req.View {
	case ViewSlots, "":
		items, err := uc.slotRepo.List(ctx, slotRepo.Filter{From: from, To: to, BranchID: req.BranchID})
		if err != nil {
			uc.logger.Error("GetCalendar: failed to list slots: %v", err)
			return nil, fmt.Errorf("%w: GetCalendar - slot repository error: %v", ErrInternal, err)
		}
		slots = models.Deref(items)
	case ViewBookings:
		items, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{From: from, To: to})
		if err != nil {
			uc.logger.Error("GetCalendar: failed to list bookings: %v", err)
			return nil, fmt.Errorf("%w: GetCalendar - booking repository error: %v", ErrInternal, err)
		}
		bookings = models.Deref(items)
	default:
		uc.logger.Warn("GetCalendar: unknown view=%s", req.View)
		return nil, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, req.View)
	}

	board := calendar.NewBoard(slots, bookings, nil)
	resp := models.FromMonthView(board.MonthView(month, selection), uc.money)

	uc.logger.Info("GetCalendar: built month=%s, slots=%d, bookings=%d", month.Label(), len(slots), len(bookings))
	return &resp, nil
}
