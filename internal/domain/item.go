package domain

// ItemKind вид элемента расписания
type ItemKind string

const (
	KindSlot       ItemKind = "slot"
	KindBooking    ItemKind = "booking"
	KindAttendance ItemKind = "attendance"
)

// ScheduledItem элемент календаря: слот, бронирование или отметка посещаемости.
// Все элементы привязаны к дате, которая не меняется после создания
type ScheduledItem interface {
	ItemID() string
	ItemDate() CalendarDate
	Kind() ItemKind
}
