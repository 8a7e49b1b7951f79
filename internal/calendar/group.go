package calendar

import "github.com/m04kA/SMC-GymConsole/internal/domain"

// GroupByDate раскладывает элементы по датам за один проход.
// Ключ берётся как есть, порядок внутри группы совпадает с порядком во входе
func GroupByDate[T domain.ScheduledItem](items []T) map[domain.CalendarDate][]T {
	groups := make(map[domain.CalendarDate][]T)
	for _, item := range items {
		date := item.ItemDate()
		groups[date] = append(groups[date], item)
	}
	return groups
}
