package get_revenue

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

// UseCase дневная выручка: бронирования, квитанции и гостевые визиты минус расходы
type UseCase struct {
	bookingRepo  BookingRepository
	receiptRepo  DatedRepository[domain.Receipt]
	dayPassRepo  DatedRepository[domain.DayPass]
	expenseRepo  DatedRepository[domain.Expense]
	txManager    TransactionManager
	money        MoneyFormatter
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	receiptRepo DatedRepository[domain.Receipt],
	dayPassRepo DatedRepository[domain.DayPass],
	expenseRepo DatedRepository[domain.Expense],
	txManager TransactionManager,
	money MoneyFormatter,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		receiptRepo:  receiptRepo,
		dayPassRepo:  dayPassRepo,
		expenseRepo:  expenseRepo,
		txManager:    txManager,
		money:        money,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute считает ряд выручки за период.
// Бронирования не привязаны к филиалу и при фильтре по филиалу не учитываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	from, to, err := uc.resolveRange(req)
	if err != nil {
		uc.logger.Warn("GetRevenue: validation failed: %v", err)
		return nil, err
	}
	uc.logger.Info("GetRevenue: from=%s, to=%s, branch=%s", from, to, req.BranchID)

	var (
		entries []calendar.RevenueEntry
		sources Sources
	)
	// все четыре таблицы читаются из одного снимка
	err = uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		entries, sources, err = uc.collect(ctx, from, to, req.BranchID)
		return err
	})
	if err != nil {
		return nil, err
	}

	days, err := calendar.RevenueByDate(entries, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	totals := calendar.Totals(days)

	uc.logger.Info("GetRevenue: days=%d, income=%.2f, expense=%.2f", len(days), totals.Income, totals.Expense)

	return &Response{
		From:   from.String(),
		To:     to.String(),
		Days:   days,
		Totals: totals,
		Formatted: FormattedTotals{
			Income:  uc.money.Currency(totals.Income),
			Expense: uc.money.Currency(totals.Expense),
			Net:     uc.money.Currency(totals.Net),
		},
		Sources: sources,
	}, nil
}

func (uc *UseCase) collect(ctx context.Context, from, to domain.CalendarDate, branchID string) ([]calendar.RevenueEntry, Sources, error) {
	var (
		entries []calendar.RevenueEntry
		sources Sources
	)

	if branchID == "" {
		items, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{From: from, To: to})
		if err != nil {
			uc.logger.Error("GetRevenue: failed to list bookings: %v", err)
			return nil, Sources{}, fmt.Errorf("%w: GetRevenue - booking repository error: %v", ErrInternal, err)
		}
		bookingEntries := calendar.BookingEntries(models.Deref(items))
		sources.Bookings = sum(bookingEntries)
		entries = append(entries, bookingEntries...)
	}

	receipts, err := uc.receiptRepo.ListBetween(ctx, from, to, branchID)
	if err != nil {
		uc.logger.Error("GetRevenue: failed to list receipts: %v", err)
		return nil, Sources{}, fmt.Errorf("%w: GetRevenue - receipt repository error: %v", ErrInternal, err)
	}
	for _, r := range receipts {
		entries = append(entries, calendar.RevenueEntry{Date: r.Date, Amount: r.Amount, Kind: calendar.Income})
		sources.Receipts += r.Amount
	}

	passes, err := uc.dayPassRepo.ListBetween(ctx, from, to, branchID)
	if err != nil {
		uc.logger.Error("GetRevenue: failed to list day passes: %v", err)
		return nil, Sources{}, fmt.Errorf("%w: GetRevenue - day pass repository error: %v", ErrInternal, err)
	}
	for _, p := range passes {
		entries = append(entries, calendar.RevenueEntry{Date: p.Date, Amount: p.Price, Kind: calendar.Income})
		sources.DayPasses += p.Price
	}

	expenses, err := uc.expenseRepo.ListBetween(ctx, from, to, branchID)
	if err != nil {
		uc.logger.Error("GetRevenue: failed to list expenses: %v", err)
		return nil, Sources{}, fmt.Errorf("%w: GetRevenue - expense repository error: %v", ErrInternal, err)
	}
	for _, e := range expenses {
		entries = append(entries, calendar.RevenueEntry{Date: e.Date, Amount: e.Amount, Kind: calendar.Expense})
		sources.Expenses += e.Amount
	}

	return entries, sources, nil
}

func (uc *UseCase) resolveRange(req *Request) (domain.CalendarDate, domain.CalendarDate, error) {
	from, to := domain.CalendarDate(req.From), domain.CalendarDate(req.To)
	if from.IsZero() && to.IsZero() {
		from, to = calendar.CurrentMonth(uc.timeProvider.Now()).Range()
		return from, to, nil
	}
	if from.IsZero() || to.IsZero() {
		return "", "", fmt.Errorf("%w: from and to must be set together", ErrInvalidInput)
	}

	start, err := from.Time()
	if err != nil {
		return "", "", fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
	}
	end, err := to.Time()
	if err != nil {
		return "", "", fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
	}
	if end.Before(start) {
		return "", "", fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}
	if end.Sub(start).Hours()/24 >= maxRangeDays {
		return "", "", fmt.Errorf("%w: period is longer than %d days", ErrInvalidInput, maxRangeDays)
	}
	return from, to, nil
}

func sum(entries []calendar.RevenueEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Amount
	}
	return total
}
