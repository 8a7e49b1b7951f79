package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// CalendarDate дата в формате YYYY-MM-DD без времени и часового пояса.
// Сравнение и группировка выполняются по строке как есть
type CalendarDate string

// NewCalendarDate создает дату из года, месяца (0-based) и дня
func NewCalendarDate(year, month, day int) CalendarDate {
	return CalendarDate(fmt.Sprintf("%04d-%02d-%02d", year, month+1, day))
}

// CalendarDateOf возвращает дату time.Time в её собственной локации
func CalendarDateOf(t time.Time) CalendarDate {
	return CalendarDate(t.Format(DateFormat))
}

// String возвращает дату строкой
func (d CalendarDate) String() string {
	return string(d)
}

// IsZero true, если дата не задана
func (d CalendarDate) IsZero() bool {
	return d == ""
}

// Time парсит дату (UTC полночь)
func (d CalendarDate) Time() (time.Time, error) {
	return time.Parse(DateFormat, string(d))
}

// Validate проверяет формат YYYY-MM-DD
func (d CalendarDate) Validate() error {
	if _, err := d.Time(); err != nil {
		return fmt.Errorf("invalid calendar date %q", string(d))
	}
	return nil
}

// InRange true, если from <= d <= to (пустая граница не ограничивает).
// Для формата YYYY-MM-DD строковое сравнение совпадает с календарным
func (d CalendarDate) InRange(from, to CalendarDate) bool {
	if !from.IsZero() && d < from {
		return false
	}
	if !to.IsZero() && d > to {
		return false
	}
	return true
}

// Scan реализует sql.Scanner (DATE из Postgres приходит как time.Time)
func (d *CalendarDate) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = CalendarDate(v.Format(DateFormat))
	case []byte:
		*d = CalendarDate(trimDate(string(v)))
	case string:
		*d = CalendarDate(trimDate(v))
	default:
		return fmt.Errorf("unsupported calendar date type %T", src)
	}
	return nil
}

func trimDate(s string) string {
	if len(s) > len(DateFormat) {
		return s[:len(DateFormat)]
	}
	return s
}

// Value реализует driver.Valuer, пустая дата пишется как NULL
func (d CalendarDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return string(d), nil
}
