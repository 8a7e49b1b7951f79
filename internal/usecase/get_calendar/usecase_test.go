package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	slotRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/slot"
	"github.com/m04kA/SMC-GymConsole/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type plainMoney struct{}

func (plainMoney) Currency(amount float64) string { return fmt.Sprintf("$%.2f", amount) }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeSlots struct {
	items      []*domain.Slot
	lastFilter slotRepo.Filter
	err        error
}

func (f *fakeSlots) List(_ context.Context, filter slotRepo.Filter) ([]*domain.Slot, error) {
	f.lastFilter = filter
	return f.items, f.err
}

type fakeBookings struct {
	items      []*domain.Booking
	lastFilter domain.BookingsFilter
}

func (f *fakeBookings) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.items, nil
}

func newTestUseCase(slots *fakeSlots, bookings *fakeBookings) *UseCase {
	uc := NewUseCase(slots, bookings, plainMoney{}, nopLogger{})
	uc.timeProvider = fixedClock{now: time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_DefaultsToCurrentMonth(t *testing.T) {
	slots := &fakeSlots{items: []*domain.Slot{
		{ID: "s1", Date: "2026-02-12", Time: "09:00", Capacity: 5, Booked: 2, Price: 10},
		{ID: "s2", Date: "2026-02-12", Time: "07:00", Capacity: 5, Booked: 5, Price: 10},
	}}
	uc := newTestUseCase(slots, &fakeBookings{})

	resp, err := uc.Execute(context.Background(), &Request{View: ViewSlots, SelectedDate: "2026-02-12"})
	require.NoError(t, err)

	assert.Equal(t, 2026, resp.Year)
	assert.Equal(t, 1, resp.Month)
	assert.Equal(t, "February 2026", resp.Label)
	assert.Equal(t, domain.CalendarDate("2026-02-01"), slots.lastFilter.From)
	assert.Equal(t, domain.CalendarDate("2026-02-28"), slots.lastFilter.To)

	// 1 февраля 2026 воскресенье, ровно четыре недели
	require.Len(t, resp.Weeks, 4)
	day := resp.Weeks[1][4]
	assert.Equal(t, 12, day.Day)
	assert.Equal(t, 2, day.Count)
	assert.Equal(t, "7/10", day.CapacityLabel)
	assert.Equal(t, "$70.00", day.FormattedTotal)
	assert.True(t, day.Selected)

	require.NotNil(t, resp.Selected)
	require.Len(t, resp.Selected.Slots, 2)
	assert.Equal(t, "s2", resp.Selected.Slots[0].ID)
	assert.Equal(t, "full", resp.Selected.Slots[0].Status)
}

func TestExecute_NavigatesAcrossYear(t *testing.T) {
	slots := &fakeSlots{}
	uc := newTestUseCase(slots, &fakeBookings{})

	resp, err := uc.Execute(context.Background(), &Request{Year: ptr.Ptr(2026), Month: ptr.Ptr(11), Direction: "next"})
	require.NoError(t, err)
	assert.Equal(t, 2027, resp.Year)
	assert.Equal(t, 0, resp.Month)
	assert.Equal(t, 2026, resp.Prev.Year)
	assert.Equal(t, 11, resp.Prev.Month)
	assert.Equal(t, domain.CalendarDate("2027-01-31"), slots.lastFilter.To)
	assert.Nil(t, resp.Selected)
}

func TestExecute_BookingsView(t *testing.T) {
	bookings := &fakeBookings{items: []*domain.Booking{
		{ID: "b1", Date: "2026-02-03", Price: 20, Status: domain.StatusConfirmed},
		{ID: "b2", Date: "2026-02-03", Price: 15, Status: domain.StatusCancelled},
	}}
	slots := &fakeSlots{}
	uc := newTestUseCase(slots, bookings)

	resp, err := uc.Execute(context.Background(), &Request{View: ViewBookings, SelectedDate: "2026-02-03"})
	require.NoError(t, err)

	assert.Equal(t, domain.CalendarDate("2026-02-01"), bookings.lastFilter.From)
	assert.Empty(t, slots.lastFilter.From)
	require.NotNil(t, resp.Selected)
	assert.Len(t, resp.Selected.Bookings, 2)
	assert.Equal(t, 20.0, resp.Selected.Summary.TotalAmount)
	assert.Empty(t, resp.Selected.Slots)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeSlots{}, &fakeBookings{})
	ctx := context.Background()

	cases := []*Request{
		{Year: ptr.Ptr(2026)},
		{Year: ptr.Ptr(2026), Month: ptr.Ptr(12)},
		{Direction: "sideways"},
		{SelectedDate: "12.02.2026"},
		{View: "agenda"},
	}
	for _, req := range cases {
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeSlots{err: errors.New("connection refused")}, &fakeBookings{})

	_, err := uc.Execute(context.Background(), &Request{View: ViewSlots})
	assert.ErrorIs(t, err, ErrInternal)
}
