package get_revenue

import "github.com/m04kA/SMC-GymConsole/internal/calendar"

// maxRangeDays ограничение длины периода
const maxRangeDays = 366

// Request модель запроса выручки. Пустые даты = текущий месяц
type Request struct {
	From     string
	To       string
	BranchID string
}

// Sources доход и расход по источникам
type Sources struct {
	Bookings  float64 `json:"bookings"`
	Receipts  float64 `json:"receipts"`
	DayPasses float64 `json:"dayPasses"`
	Expenses  float64 `json:"expenses"`
}

// FormattedTotals итоги периода в валюте
type FormattedTotals struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// Response дневной ряд выручки за период
type Response struct {
	From      string                  `json:"from"`
	To        string                  `json:"to"`
	Days      []calendar.DailyRevenue `json:"days"`
	Totals    calendar.RevenueTotals  `json:"totals"`
	Formatted FormattedTotals         `json:"formatted"`
	Sources   Sources                 `json:"sources"`
}
