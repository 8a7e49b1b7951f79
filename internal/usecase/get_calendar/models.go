package get_calendar

// View что показывает календарь
type View string

const (
	ViewSlots    View = "slots"
	ViewBookings View = "bookings"
)

// Request модель запроса месяца календаря
type Request struct {
	View         View
	Year         *int    // Без года и месяца берётся текущий месяц
	Month        *int    // 0 = январь
	Direction    string  // prev/next относительно Year/Month
	SelectedDate string  // Дата, для которой нужна агенда
	BranchID     *string // Только слоты филиала
}
