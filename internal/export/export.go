package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/m04kA/SMC-GymConsole/internal/format"
	"github.com/m04kA/SMC-GymConsole/internal/listing"
)

var (
	ErrUnsupportedFormat = errors.New("export: unsupported format")
	ErrNoColumns         = errors.New("export: no columns")
	ErrWrite             = errors.New("export: write failed")
)

// Format формат выгрузки
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat разбирает query параметр format; пустое значение означает csv
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ContentType MIME тип файла
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName имя файла выгрузки: members-2026-02-12.csv
func FileName(resource string, f Format, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", resource, now.Format("2006-01-02"), f)
}

// ColumnRenderer превращает значение колонки в текст ячейки.
// row передаётся для колонок, зависящих от других полей записи
type ColumnRenderer[T any] interface {
	Format(value any, row T) string
}

// RenderFunc адаптер функции к ColumnRenderer
type RenderFunc[T any] func(value any, row T) string

func (f RenderFunc[T]) Format(value any, row T) string {
	return f(value, row)
}

// Column колонка выгрузки
type Column[T any] struct {
	Header   string
	Field    string // JSON имя поля; может быть пустым, если Renderer считает значение сам
	Renderer ColumnRenderer[T]
}

// Cell значение ячейки для строки
func (c Column[T]) Cell(row T) string {
	var value any
	if c.Field != "" {
		value, _ = listing.Lookup(row, c.Field)
	}
	if c.Renderer != nil {
		return c.Renderer.Format(value, row)
	}
	return listing.Stringify(value)
}

// CurrencyRenderer форматирует числовое поле как денежную сумму
func CurrencyRenderer[T any](f *format.Formatter) ColumnRenderer[T] {
	return RenderFunc[T](func(value any, _ T) string {
		switch v := value.(type) {
		case float64:
			return f.Currency(v)
		case int:
			return f.Currency(float64(v))
		default:
			return listing.Stringify(value)
		}
	})
}

// Write пишет выгрузку в выбранном формате
func Write[T any](w io.Writer, f Format, sheet string, columns []Column[T], rows []T) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, columns, rows)
	case FormatXLSX:
		return WriteXLSX(w, sheet, columns, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func headers[T any](columns []Column[T]) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Header
	}
	return out
}

func record[T any](columns []Column[T], row T) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Cell(row)
	}
	return out
}
