package listing

import (
	"strings"
)

const defaultPerPage = 10

// filterAll значение фильтра "все" (no-op)
const filterAll = "all"

// Query параметры поиска и фильтрации таблицы
type Query struct {
	Search       string            // подстрока, без учёта регистра
	SearchFields []string          // JSON имена полей для поиска
	Filters      map[string]string // поле -> точное значение; "all" и "" игнорируются
}

// Matches проверяет, проходит ли элемент поиск и все фильтры
func Matches[T any](item T, q Query) bool {
	for field, want := range q.Filters {
		if want == "" || want == filterAll {
			continue
		}
		value, ok := Lookup(item, field)
		if !ok || Stringify(value) != want {
			return false
		}
	}

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	if needle == "" {
		return true
	}
	for _, field := range q.SearchFields {
		value, ok := Lookup(item, field)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(Stringify(value)), needle) {
			return true
		}
	}
	return false
}

// Filter возвращает новый срез элементов, удовлетворяющих запросу.
// Порядок элементов сохраняется, входной срез не меняется
func Filter[T any](items []T, q Query) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, q) {
			result = append(result, item)
		}
	}
	return result
}

// Page описывает одну страницу элементов.
type Page[T any] struct {
	Items    []T // элементы на текущей странице
	Page     int // номер страницы (с 1)
	PageSize int // количество элементов на странице
	HasNext  bool
	HasPrev  bool
	Total    int // общее количество элементов
}

// Paginate возвращает срез items для указанной страницы и метаданные.
// page нумеруется с 1. Страница за последней пустая, это не ошибка
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	total := len(items)

	if pageSize <= 0 {
		pageSize = defaultPerPage
	}
	if page <= 0 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}

	end := start + pageSize
	if end > total {
		end = total
	}

	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	return Page[T]{
		Items:    pageItems,
		Page:     page,
		PageSize: pageSize,
		HasNext:  end < total,
		HasPrev:  page > 1,
		Total:    total,
	}
}

// Apply фильтрует и режет на страницы за один вызов
func Apply[T any](items []T, q Query, page, pageSize int) Page[T] {
	return Paginate(Filter(items, q), page, pageSize)
}
