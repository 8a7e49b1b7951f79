package calendar

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

var ErrInvalidDirection = errors.New("calendar: invalid direction")

const daysInWeek = 7

// Month месяц календаря, Month с нуля (0 = январь)
type Month struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// CurrentMonth месяц, содержащий now
func CurrentMonth(now time.Time) Month {
	return Month{Year: now.Year(), Month: int(now.Month()) - 1}
}

// MonthOf месяц, которому принадлежит дата
func MonthOf(d domain.CalendarDate) (Month, error) {
	t, err := d.Time()
	if err != nil {
		return Month{}, err
	}
	return CurrentMonth(t), nil
}

// Valid true, если Month в диапазоне 0..11
func (m Month) Valid() bool {
	return m.Month >= 0 && m.Month <= 11
}

// Date дата дня месяца
func (m Month) Date(day int) domain.CalendarDate {
	return domain.NewCalendarDate(m.Year, m.Month, day)
}

// Range первый и последний день месяца
func (m Month) Range() (domain.CalendarDate, domain.CalendarDate) {
	return m.Date(1), m.Date(DaysInMonth(m.Year, m.Month))
}

// Contains true, если дата относится к месяцу
func (m Month) Contains(d domain.CalendarDate) bool {
	from, to := m.Range()
	return d.InRange(from, to)
}

// Label подпись месяца: "February 2026"
func (m Month) Label() string {
	return time.Date(m.Year, time.Month(m.Month+1), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// DaysInMonth количество дней в месяце по григорианскому календарю
func DaysInMonth(year, month int) int {
	// нулевой день следующего месяца = последний день текущего
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOf день недели первого числа, 0 = воскресенье
func FirstWeekdayOf(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Direction направление перехода по месяцам
type Direction string

const (
	Prev Direction = "prev"
	Next Direction = "next"
)

// ParseDirection разбирает prev/next
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(s)) {
	case Prev:
		return Prev, nil
	case Next:
		return Next, nil
	default:
		return "", ErrInvalidDirection
	}
}

// Navigate переход на соседний месяц с переносом года, без ограничений
func Navigate(dir Direction, year, month int) (int, int) {
	switch dir {
	case Prev:
		if month == 0 {
			return year - 1, 11
		}
		return year, month - 1
	case Next:
		if month == 11 {
			return year + 1, 0
		}
		return year, month + 1
	default:
		return year, month
	}
}

// Shift Navigate для Month
func (m Month) Shift(dir Direction) Month {
	y, mo := Navigate(dir, m.Year, m.Month)
	return Month{Year: y, Month: mo}
}

// Cell клетка сетки месяца; Day == 0 у пустых клеток
type Cell struct {
	Day  int
	Date domain.CalendarDate
}

// Blank true для пустой клетки
func (c Cell) Blank() bool {
	return c.Day == 0
}

// Grid сетка месяца по неделям (7 колонок, неделя с воскресенья).
// Первая неделя начинается с FirstWeekdayOf пустых клеток, последняя дополняется пустыми
func Grid(year, month int) [][]Cell {
	m := Month{Year: year, Month: month}
	lead := FirstWeekdayOf(year, month)
	days := DaysInMonth(year, month)

	total := lead + days
	if rem := total % daysInWeek; rem != 0 {
		total += daysInWeek - rem
	}

	weeks := make([][]Cell, 0, total/daysInWeek)
	week := make([]Cell, 0, daysInWeek)
	for i := 0; i < total; i++ {
		day := i - lead + 1
		cell := Cell{}
		if day >= 1 && day <= days {
			cell = Cell{Day: day, Date: m.Date(day)}
		}
		week = append(week, cell)
		if len(week) == daysInWeek {
			weeks = append(weeks, week)
			week = make([]Cell, 0, daysInWeek)
		}
	}
	return weeks
}
