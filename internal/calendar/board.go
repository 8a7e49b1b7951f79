package calendar

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

var (
	ErrSlotNotFound        = errors.New("calendar: slot not found")
	ErrItemNotFound        = errors.New("calendar: item not found")
	ErrInvalidTransition   = errors.New("calendar: invalid booking status transition")
	ErrDuplicateAttendance = errors.New("calendar: attendance already marked for this date")
)

// Board модель календаря страницы деталей: плоские списки слотов, бронирований
// и отметок посещаемости плюс группировки по датам.
// Группировки пересчитываются только после изменения списков.
// Board не потокобезопасен, создаётся на один запрос
type Board struct {
	slots      []domain.Slot
	bookings   []domain.Booking
	attendance []domain.AttendanceMark

	defaults *domain.ScheduleConfig
	newID    func() string

	version      uint64
	cacheVersion uint64
	cached       bool

	slotsByDate      map[domain.CalendarDate][]domain.Slot
	bookingsByDate   map[domain.CalendarDate][]domain.Booking
	attendanceByDate map[domain.CalendarDate][]domain.AttendanceMark
}

// BoardOption опция Board
type BoardOption func(*Board)

// WithDefaults значения по умолчанию для новых слотов
func WithDefaults(cfg *domain.ScheduleConfig) BoardOption {
	return func(b *Board) { b.defaults = cfg }
}

// WithIDGenerator генератор идентификаторов (по умолчанию uuid)
func WithIDGenerator(fn func() string) BoardOption {
	return func(b *Board) { b.newID = fn }
}

// NewBoard создает модель над копиями переданных списков
func NewBoard(slots []domain.Slot, bookings []domain.Booking, attendance []domain.AttendanceMark, opts ...BoardOption) *Board {
	b := &Board{
		slots:      append([]domain.Slot(nil), slots...),
		bookings:   append([]domain.Booking(nil), bookings...),
		attendance: append([]domain.AttendanceMark(nil), attendance...),
		defaults:   domain.DefaultScheduleConfig(),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Board) changed() {
	b.version++
}

func (b *Board) refresh() {
	if b.cached && b.cacheVersion == b.version {
		return
	}
	b.slotsByDate = GroupByDate(b.slots)
	b.bookingsByDate = GroupByDate(b.bookings)
	b.attendanceByDate = GroupByDate(b.attendance)
	b.cacheVersion = b.version
	b.cached = true
}

// Slots все слоты
func (b *Board) Slots() []domain.Slot { return b.slots }

// Bookings все бронирования
func (b *Board) Bookings() []domain.Booking { return b.bookings }

// Attendance все отметки
func (b *Board) Attendance() []domain.AttendanceMark { return b.attendance }

// SlotsByDate слоты по датам
func (b *Board) SlotsByDate() map[domain.CalendarDate][]domain.Slot {
	b.refresh()
	return b.slotsByDate
}

// BookingsByDate бронирования по датам
func (b *Board) BookingsByDate() map[domain.CalendarDate][]domain.Booking {
	b.refresh()
	return b.bookingsByDate
}

// AttendanceByDate отметки посещаемости по датам
func (b *Board) AttendanceByDate() map[domain.CalendarDate][]domain.AttendanceMark {
	b.refresh()
	return b.attendanceByDate
}

// Slot поиск слота по id
func (b *Board) Slot(id string) (domain.Slot, bool) {
	i := b.slotIndex(id)
	if i < 0 {
		return domain.Slot{}, false
	}
	return b.slots[i], true
}

func (b *Board) slotIndex(id string) int {
	for i := range b.slots {
		if b.slots[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) bookingIndex(id string) int {
	for i := range b.bookings {
		if b.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

// CreateSlot добавляет слот из формы
func (b *Board) CreateSlot(form SlotForm) (domain.Slot, error) {
	slot, err := NewSlot(form, b.newID(), b.defaults)
	if err != nil {
		return domain.Slot{}, err
	}
	b.slots = append(b.slots, slot)
	b.changed()
	return slot, nil
}

// BookSlot бронирует места в слоте slotID
func (b *Board) BookSlot(slotID string, form BookingForm) (domain.Booking, error) {
	i := b.slotIndex(slotID)
	if i < 0 {
		return domain.Booking{}, ErrSlotNotFound
	}

	booking, slot, err := ApplyBooking(b.slots[i], form, b.newID())
	if err != nil {
		return domain.Booking{}, err
	}

	b.slots[i] = slot
	b.bookings = append(b.bookings, booking)
	b.changed()
	return booking, nil
}

// AddBooking добавляет бронирование; с заполненным slotId работает как BookSlot
func (b *Board) AddBooking(form BookingForm) (domain.Booking, error) {
	if form.SlotID != nil && *form.SlotID != "" {
		return b.BookSlot(*form.SlotID, form)
	}

	booking, err := NewBooking(form, b.newID())
	if err != nil {
		return domain.Booking{}, err
	}
	b.bookings = append(b.bookings, booking)
	b.changed()
	return booking, nil
}

// SetBookingStatus меняет статус бронирования; отмена освобождает места в слоте
func (b *Board) SetBookingStatus(id string, status domain.BookingStatus) (domain.Booking, error) {
	i := b.bookingIndex(id)
	if i < 0 {
		return domain.Booking{}, ErrItemNotFound
	}

	booking := b.bookings[i]
	if !booking.CanTransitionTo(status) {
		return domain.Booking{}, ErrInvalidTransition
	}
	if status == domain.StatusCancelled {
		b.release(booking)
	}

	booking.Status = status
	b.bookings[i] = booking
	b.changed()
	return booking, nil
}

// MarkAttendance добавляет отметку, одна отметка на сотрудника в день
func (b *Board) MarkAttendance(form AttendanceForm) (domain.AttendanceMark, error) {
	mark, err := NewAttendanceMark(form, b.newID())
	if err != nil {
		return domain.AttendanceMark{}, err
	}
	for _, existing := range b.attendance {
		if existing.EmployeeID == mark.EmployeeID && existing.Date == mark.Date {
			return domain.AttendanceMark{}, ErrDuplicateAttendance
		}
	}
	b.attendance = append(b.attendance, mark)
	b.changed()
	return mark, nil
}

// DeleteItem удаляет элемент без каскада: бронирования удалённого слота остаются.
// Удаление активного бронирования освобождает места в слоте
func (b *Board) DeleteItem(kind domain.ItemKind, id string) error {
	switch kind {
	case domain.KindSlot:
		i := b.slotIndex(id)
		if i < 0 {
			return ErrItemNotFound
		}
		b.slots = append(b.slots[:i:i], b.slots[i+1:]...)
	case domain.KindBooking:
		i := b.bookingIndex(id)
		if i < 0 {
			return ErrItemNotFound
		}
		b.release(b.bookings[i])
		b.bookings = append(b.bookings[:i:i], b.bookings[i+1:]...)
	case domain.KindAttendance:
		i := -1
		for j := range b.attendance {
			if b.attendance[j].ID == id {
				i = j
				break
			}
		}
		if i < 0 {
			return ErrItemNotFound
		}
		b.attendance = append(b.attendance[:i:i], b.attendance[i+1:]...)
	default:
		return ErrItemNotFound
	}
	b.changed()
	return nil
}

func (b *Board) release(booking domain.Booking) {
	if !booking.IsActive() || booking.SlotID == nil {
		return
	}
	i := b.slotIndex(*booking.SlotID)
	if i < 0 {
		return
	}
	b.slots[i].Booked -= booking.Participants
	if b.slots[i].Booked < 0 {
		b.slots[i].Booked = 0
	}
}

// Agenda элементы выбранного дня
type Agenda struct {
	Date       domain.CalendarDate
	Slots      []domain.Slot
	Bookings   []domain.Booking
	Attendance []domain.AttendanceMark
	Summary    DaySummary
}

// Agenda элементы дня; слоты отсортированы по времени начала.
// День без элементов возвращает пустые списки
func (b *Board) Agenda(date domain.CalendarDate) Agenda {
	b.refresh()

	slots := append([]domain.Slot{}, b.slotsByDate[date]...)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Time.IsBefore(slots[j].Time) })

	return Agenda{
		Date:       date,
		Slots:      slots,
		Bookings:   append([]domain.Booking{}, b.bookingsByDate[date]...),
		Attendance: append([]domain.AttendanceMark{}, b.attendanceByDate[date]...),
		Summary:    b.daySummary(date),
	}
}

func (b *Board) daySummary(date domain.CalendarDate) DaySummary {
	items := make([]domain.ScheduledItem, 0, len(b.slotsByDate[date])+len(b.bookingsByDate[date])+len(b.attendanceByDate[date]))
	for _, s := range b.slotsByDate[date] {
		items = append(items, s)
	}
	for _, bk := range b.bookingsByDate[date] {
		items = append(items, bk)
	}
	for _, a := range b.attendanceByDate[date] {
		items = append(items, a)
	}
	return SummarizeDay(items)
}

// DayCell клетка месяца со сводкой
type DayCell struct {
	Cell
	Summary  DaySummary
	Dot      Dot
	Selected bool
}

// MonthView месяц календаря с выбранным днём
type MonthView struct {
	Month    Month
	Weeks    [][]DayCell
	Selected *Agenda
}

// MonthView сетка месяца со сводками по дням и агендой выбранной даты
func (b *Board) MonthView(month Month, selection Selection) MonthView {
	b.refresh()

	grid := Grid(month.Year, month.Month)
	weeks := make([][]DayCell, len(grid))
	for w, week := range grid {
		weeks[w] = make([]DayCell, len(week))
		for d, cell := range week {
			dc := DayCell{Cell: cell, Dot: DotNone}
			if !cell.Blank() {
				dc.Summary = b.daySummary(cell.Date)
				dc.Dot = dc.Summary.Dot()
				dc.Selected = selection.IsSelected(cell.Date)
			}
			weeks[w][d] = dc
		}
	}

	view := MonthView{Month: month, Weeks: weeks}
	if date, ok := selection.Selected(); ok {
		agenda := b.Agenda(date)
		view.Selected = &agenda
	}
	return view
}
