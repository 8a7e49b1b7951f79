package listing

// State состояние таблицы на странице: текущая страница, строка поиска, фильтры.
// Любое изменение поиска или фильтра возвращает таблицу на первую страницу
type State struct {
	CurrentPage int
	Search      string
	Filters     map[string]string
}

// NewState создает состояние первой страницы без фильтров
func NewState() *State {
	return &State{CurrentPage: 1, Filters: make(map[string]string)}
}

// SetQuery меняет строку поиска
func (s *State) SetQuery(search string) {
	if s.Search == search {
		return
	}
	s.Search = search
	s.CurrentPage = 1
}

// SetFilter меняет значение фильтра
func (s *State) SetFilter(field, value string) {
	if s.Filters == nil {
		s.Filters = make(map[string]string)
	}
	if current, ok := s.Filters[field]; ok && current == value {
		return
	}
	s.Filters[field] = value
	s.CurrentPage = 1
}

// SetPage переходит на страницу (ограничение сверху делает вызывающий код)
func (s *State) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.CurrentPage = page
}

// Query собирает параметры поиска для Filter
func (s *State) Query(searchFields []string) Query {
	filters := make(map[string]string, len(s.Filters))
	for k, v := range s.Filters {
		filters[k] = v
	}
	return Query{Search: s.Search, SearchFields: searchFields, Filters: filters}
}
