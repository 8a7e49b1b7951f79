package book_slot

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	"github.com/m04kA/SMC-GymConsole/internal/domain"
	slotRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/slot"
	"github.com/m04kA/SMC-GymConsole/internal/validation"
	"github.com/m04kA/SMC-GymConsole/pkg/ptr"
	"github.com/m04kA/SMC-GymConsole/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingMetrics map[string]int

func (m countingMetrics) IncScheduleOperation(operation, result string) {
	m[operation+":"+result]++
}

// store общий для фейковых репозиториев: занятость слота считается по бронированиям
type store struct {
	slots    map[string]domain.Slot
	bookings []domain.Booking
	touched  int
	touchErr error
}

func (s *store) booked(slotID string) int {
	total := 0
	for _, b := range s.bookings {
		if b.LinkedTo(slotID) && b.IsActive() {
			total += b.Participants
		}
	}
	return total
}

type fakeSlots struct{ *store }

func (f fakeSlots) GetByID(_ context.Context, id string) (*domain.Slot, error) {
	slot, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	slot.Booked = f.booked(id)
	return &slot, nil
}

func (f fakeSlots) Touch(_ context.Context, id string) error {
	if f.touchErr != nil {
		return f.touchErr
	}
	f.touched++
	return nil
}

type fakeBookings struct{ *store }

func (f fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.bookings = append(f.bookings, *b)
	return b, nil
}

type inlineTx struct{ calls int }

func (tx *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

func newTestUseCase(slots ...domain.Slot) (*UseCase, *store, *inlineTx, countingMetrics) {
	st := &store{slots: make(map[string]domain.Slot)}
	for _, s := range slots {
		st.slots[s.ID] = s
	}
	tx := &inlineTx{}
	metrics := countingMetrics{}
	uc := NewUseCase(fakeBookings{st}, fakeSlots{st}, tx, metrics, nopLogger{})

	n := 0
	uc.newID = func() string {
		n++
		return fmt.Sprintf("booking-%d", n)
	}
	return uc, st, tx, metrics
}

func yoga(capacity int) domain.Slot {
	return domain.Slot{
		ID:              "slot-1",
		Date:            "2026-02-12",
		Time:            types.TimeString("10:00"),
		DurationMinutes: 60,
		Title:           "Yoga",
		Instructor:      "Maria",
		Capacity:        capacity,
		Price:           15,
	}
}

func form(participants int) calendar.BookingForm {
	return calendar.BookingForm{
		MemberName:   "Anna Petrova",
		Date:         "2026-02-12",
		TimeSlot:     "10:00",
		Participants: participants,
		SlotID:       ptr.Ptr("slot-1"),
	}
}

func TestExecute_FillsSlotToCapacity(t *testing.T) {
	uc, st, tx, metrics := newTestUseCase(yoga(5))
	st.bookings = append(st.bookings, domain.Booking{ID: "old", SlotID: ptr.Ptr("slot-1"), Participants: 2, Status: domain.StatusConfirmed})

	resp, err := uc.Execute(context.Background(), &Request{Form: form(3)})
	require.NoError(t, err)

	require.NotNil(t, resp.Slot)
	assert.Equal(t, 5, resp.Slot.Booked)
	assert.Equal(t, string(domain.SlotFull), resp.Slot.Status)
	assert.Equal(t, "booking-1", resp.Booking.ID)
	assert.Equal(t, ptr.Ptr("slot-1"), resp.Booking.SlotID)
	assert.Equal(t, "Maria", resp.Booking.Instructor)
	assert.Equal(t, 45.0, resp.Booking.Price)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, st.touched)
	assert.Equal(t, 1, metrics["book_slot:ok"])
}

func TestExecute_RejectsOverbooking(t *testing.T) {
	uc, st, _, metrics := newTestUseCase(yoga(5))
	st.bookings = append(st.bookings, domain.Booking{ID: "old", SlotID: ptr.Ptr("slot-1"), Participants: 4, Status: domain.StatusConfirmed})

	_, err := uc.Execute(context.Background(), &Request{Form: form(2)})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Len(t, st.bookings, 1)
	assert.Zero(t, st.touched)
	assert.Equal(t, 1, metrics["book_slot:rejected"])
}

func TestExecute_CancelledBookingsReleasePlaces(t *testing.T) {
	uc, st, _, _ := newTestUseCase(yoga(5))
	st.bookings = append(st.bookings, domain.Booking{ID: "old", SlotID: ptr.Ptr("slot-1"), Participants: 5, Status: domain.StatusCancelled})

	resp, err := uc.Execute(context.Background(), &Request{Form: form(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Slot.Booked)
}

func TestExecute_SlotRejections(t *testing.T) {
	closed := yoga(5)
	closed.Closed = true

	tests := []struct {
		name string
		slot domain.Slot
		form calendar.BookingForm
		want error
	}{
		{name: "closed slot", slot: closed, form: form(1), want: ErrSlotClosed},
		{name: "date mismatch", slot: yoga(5), form: func() calendar.BookingForm {
			f := form(1)
			f.Date = "2026-02-13"
			return f
		}(), want: ErrDateMismatch},
		{name: "unknown slot", slot: yoga(5), form: func() calendar.BookingForm {
			f := form(1)
			f.SlotID = ptr.Ptr("slot-404")
			return f
		}(), want: ErrSlotNotFound},
		{name: "missing member", slot: yoga(5), form: func() calendar.BookingForm {
			f := form(1)
			f.MemberName = " "
			return f
		}(), want: validation.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, st, _, _ := newTestUseCase(tt.slot)

			_, err := uc.Execute(context.Background(), &Request{Form: tt.form})
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, st.bookings)
		})
	}
}

func TestExecute_SerializationFailureIsConflict(t *testing.T) {
	uc, st, _, metrics := newTestUseCase(yoga(5))
	st.touchErr = fmt.Errorf("%w: Touch: %v", slotRepo.ErrConcurrentUpdate, &pq.Error{Code: "40001"})

	_, err := uc.Execute(context.Background(), &Request{Form: form(1)})
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.Equal(t, 1, metrics["book_slot:conflict"])
}

func TestExecute_CommitSerializationFailureIsConflict(t *testing.T) {
	uc, _, _, _ := newTestUseCase(yoga(5))
	uc.txManager = failingCommit{err: fmt.Errorf("txmanager: failed to commit transaction: %w", &pq.Error{Code: "40001"})}

	_, err := uc.Execute(context.Background(), &Request{Form: form(1)})
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
}

type failingCommit struct{ err error }

func (f failingCommit) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return f.err
}

func TestExecute_RepositoryErrorIsInternal(t *testing.T) {
	uc, st, _, _ := newTestUseCase(yoga(5))
	st.touchErr = errors.New("connection reset")

	_, err := uc.Execute(context.Background(), &Request{Form: form(1)})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_BookingWithoutSlot(t *testing.T) {
	uc, st, tx, _ := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{Form: calendar.BookingForm{
		MemberName: "Ivan",
		Date:       "2026-02-14",
		TimeSlot:   "18:30",
		Price:      ptr.Ptr(25.0),
	}})
	require.NoError(t, err)

	assert.Nil(t, resp.Slot)
	assert.Nil(t, resp.Booking.SlotID)
	assert.Equal(t, 1, resp.Booking.Participants)
	assert.Equal(t, "confirmed", resp.Booking.Status)
	assert.Equal(t, 25.0, resp.Booking.Price)
	assert.Len(t, st.bookings, 1)
	assert.Zero(t, tx.calls)
}

func TestExecute_BlankSlotIDBooksWithoutSlot(t *testing.T) {
	for _, slotID := range []string{"", "   "} {
		uc, st, tx, _ := newTestUseCase()

		resp, err := uc.Execute(context.Background(), &Request{Form: calendar.BookingForm{
			MemberName: "Ivan",
			Date:       "2026-02-14",
			TimeSlot:   "18:30",
			SlotID:     ptr.Ptr(slotID),
		}})
		require.NoError(t, err)

		assert.Nil(t, resp.Booking.SlotID)
		require.Len(t, st.bookings, 1)
		assert.Nil(t, st.bookings[0].SlotID, "slot_id is stored as NULL")
		assert.Zero(t, tx.calls)
	}
}
