package calendar

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/pkg/ptr"
)

func sequence(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newBoard(t *testing.T) *Board {
	t.Helper()
	slots := []domain.Slot{
		{ID: "s1", Date: "2026-02-12", Time: "18:00", Capacity: 5, Booked: 2, Price: 10},
		{ID: "s2", Date: "2026-02-12", Time: "09:00", Capacity: 2, Price: 20},
		{ID: "s3", Date: "2026-02-13", Time: "10:00", Capacity: 8},
	}
	return NewBoard(slots, nil, nil, WithIDGenerator(sequence("id")))
}

func TestBoard_SlotsByDate(t *testing.T) {
	b := newBoard(t)
	groups := b.SlotsByDate()
	assert.Len(t, groups["2026-02-12"], 2)
	assert.Len(t, groups["2026-02-13"], 1)
}

func TestBoard_MemoizesUntilChange(t *testing.T) {
	b := newBoard(t)

	first := b.SlotsByDate()
	again := b.SlotsByDate()
	assert.Equal(t, fmt.Sprintf("%p", first), fmt.Sprintf("%p", again))

	_, err := b.CreateSlot(SlotForm{Date: "2026-02-14", Time: "07:00"})
	require.NoError(t, err)

	after := b.SlotsByDate()
	assert.NotEqual(t, fmt.Sprintf("%p", first), fmt.Sprintf("%p", after))
	assert.Len(t, after["2026-02-14"], 1)
}

func TestBoard_BookSlot(t *testing.T) {
	b := newBoard(t)

	booking, err := b.BookSlot("s1", bookingForm(3))
	require.NoError(t, err)
	assert.Equal(t, "id-1", booking.ID)

	slot, ok := b.Slot("s1")
	require.True(t, ok)
	assert.Equal(t, 5, slot.Booked)
	assert.Equal(t, domain.SlotFull, slot.Status())
	assert.Len(t, b.BookingsByDate()["2026-02-12"], 1)

	_, err = b.BookSlot("s1", bookingForm(1))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = b.BookSlot("missing", bookingForm(1))
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestBoard_DeleteBookingReleasesSlot(t *testing.T) {
	b := newBoard(t)
	booking, err := b.BookSlot("s2", bookingForm(2))
	require.NoError(t, err)

	slot, _ := b.Slot("s2")
	require.Equal(t, domain.SlotFull, slot.Status())

	require.NoError(t, b.DeleteItem(domain.KindBooking, booking.ID))

	slot, _ = b.Slot("s2")
	assert.Equal(t, 0, slot.Booked)
	assert.Equal(t, domain.SlotAvailable, slot.Status())
	assert.Empty(t, b.BookingsByDate()["2026-02-12"])
}

func TestBoard_CancelReleasesSlot(t *testing.T) {
	b := newBoard(t)
	booking, err := b.BookSlot("s2", bookingForm(2))
	require.NoError(t, err)

	updated, err := b.SetBookingStatus(booking.ID, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, updated.Status)

	slot, _ := b.Slot("s2")
	assert.Equal(t, 0, slot.Booked)

	_, err = b.SetBookingStatus(booking.ID, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// повторное удаление отменённой брони не трогает счётчик
	require.NoError(t, b.DeleteItem(domain.KindBooking, booking.ID))
	slot, _ = b.Slot("s2")
	assert.Equal(t, 0, slot.Booked)
}

func TestBoard_DeleteSlotKeepsBookings(t *testing.T) {
	b := newBoard(t)
	_, err := b.BookSlot("s1", bookingForm(1))
	require.NoError(t, err)

	require.NoError(t, b.DeleteItem(domain.KindSlot, "s1"))

	_, ok := b.Slot("s1")
	assert.False(t, ok)
	assert.Len(t, b.Bookings(), 1)
	assert.ErrorIs(t, b.DeleteItem(domain.KindSlot, "s1"), ErrItemNotFound)
}

func TestBoard_AddBooking(t *testing.T) {
	b := newBoard(t)

	free, err := b.AddBooking(BookingForm{MemberName: "Ivan", Date: "2026-02-20", TimeSlot: "12:00", Price: ptr.Ptr(25.0)})
	require.NoError(t, err)
	assert.Nil(t, free.SlotID)
	assert.Equal(t, 25.0, free.Price)

	form := bookingForm(1)
	form.SlotID = ptr.Ptr("s3")
	form.Date = "2026-02-13"
	linked, err := b.AddBooking(form)
	require.NoError(t, err)
	assert.True(t, linked.LinkedTo("s3"))
}

func TestBoard_MarkAttendance(t *testing.T) {
	b := NewBoard(nil, nil, nil, WithIDGenerator(sequence("m")))

	_, err := b.MarkAttendance(AttendanceForm{EmployeeID: "e1", Date: "2026-02-12", Status: "present"})
	require.NoError(t, err)

	_, err = b.MarkAttendance(AttendanceForm{EmployeeID: "e1", Date: "2026-02-12", Status: "late"})
	assert.ErrorIs(t, err, ErrDuplicateAttendance)

	_, err = b.MarkAttendance(AttendanceForm{EmployeeID: "e2", Date: "2026-02-12", Status: "late"})
	require.NoError(t, err)

	assert.Len(t, b.AttendanceByDate()["2026-02-12"], 2)
	require.NoError(t, b.DeleteItem(domain.KindAttendance, "m-1"))
	assert.Len(t, b.AttendanceByDate()["2026-02-12"], 1)
}

func TestBoard_Agenda(t *testing.T) {
	b := newBoard(t)

	agenda := b.Agenda("2026-02-12")
	require.Len(t, agenda.Slots, 2)
	assert.Equal(t, "s2", agenda.Slots[0].ID, "slots sorted by start time")
	assert.Equal(t, "2/7", agenda.Summary.CapacityLabel)

	empty := b.Agenda("2026-03-01")
	assert.NotNil(t, empty.Slots)
	assert.Empty(t, empty.Slots)
	assert.Equal(t, 0, empty.Summary.Count)
}

func TestBoard_AgendaCountsSlotBookingOnce(t *testing.T) {
	slots := []domain.Slot{{ID: "s1", Date: "2026-02-12", Time: "18:00", Capacity: 5, Price: 10}}
	b := NewBoard(slots, nil, nil, WithIDGenerator(sequence("b")))

	_, err := b.BookSlot("s1", bookingForm(3))
	require.NoError(t, err)

	// свободная бронь того же дня добавляет свою цену
	_, err = b.AddBooking(BookingForm{MemberName: "Ivan", Date: "2026-02-12", TimeSlot: "12:00", Price: ptr.Ptr(25.0)})
	require.NoError(t, err)

	summary := b.Agenda("2026-02-12").Summary
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 55.0, summary.TotalAmount)
	assert.Equal(t, "3/5", summary.CapacityLabel)
}

func TestBoard_MonthView(t *testing.T) {
	b := newBoard(t)

	view := b.MonthView(Month{Year: 2026, Month: 1}, NewSelection("2026-02-13"))

	require.Len(t, view.Weeks, 4)
	// 12 февраля 2026 четверг второй недели
	cell := view.Weeks[1][4]
	assert.Equal(t, 12, cell.Day)
	assert.Equal(t, 2, cell.Summary.Count)
	assert.False(t, cell.Selected)
	assert.True(t, view.Weeks[1][5].Selected)

	require.NotNil(t, view.Selected)
	assert.Equal(t, domain.CalendarDate("2026-02-13"), view.Selected.Date)

	noSel := b.MonthView(Month{Year: 2026, Month: 1}, Selection{})
	assert.Nil(t, noSel.Selected)
}
