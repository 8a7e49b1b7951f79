package listing

// Envelope ответ списочных эндпоинтов
type Envelope[T any] struct {
	Data                   []T `json:"data"`
	DataCount              int `json:"dataCount"`
	DataPerPage            int `json:"dataPerPage"`
	CurrentPaginationIndex int `json:"currentPaginationIndex"`
	Analytics              any `json:"analytics,omitempty"`
}

// NewEnvelope собирает ответ из страницы; DataCount это размер отфильтрованного списка
func NewEnvelope[T any](page Page[T], analytics any) Envelope[T] {
	data := page.Items
	if data == nil {
		data = []T{}
	}
	return Envelope[T]{
		Data:                   data,
		DataCount:              page.Total,
		DataPerPage:            page.PageSize,
		CurrentPaginationIndex: page.Page,
		Analytics:              analytics,
	}
}
