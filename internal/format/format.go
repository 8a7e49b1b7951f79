package format

import (
	"errors"
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	ErrInvalidLocale   = errors.New("format: invalid locale")
	ErrInvalidCurrency = errors.New("format: invalid currency code")
)

// Formatter форматирует суммы и числа для выгрузок и подписей календаря
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// New создает форматтер для локали (en, ru, ...) и ISO кода валюты
func New(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLocale, locale)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCurrency, currencyCode)
	}
	return &Formatter{printer: message.NewPrinter(tag), unit: unit}, nil
}

// Currency сумма с двумя знаками и кодом валюты: "USD 1,234.50"
func (f *Formatter) Currency(amount float64) string {
	return f.printer.Sprintf("%s %v", f.unit.String(), number.Decimal(amount, number.Scale(2)))
}

// Amount сумма с двумя знаками без валюты
func (f *Formatter) Amount(amount float64) string {
	return f.printer.Sprint(number.Decimal(amount, number.Scale(2)))
}

// Count целое число с разделителями разрядов
func (f *Formatter) Count(n int) string {
	return f.printer.Sprint(number.Decimal(n))
}

// Percent доля (0.42 -> "42%")
func (f *Formatter) Percent(ratio float64) string {
	return f.printer.Sprint(number.Percent(ratio))
}
