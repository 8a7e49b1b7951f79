package resources

// ListRequest параметры страницы таблицы
type ListRequest struct {
	Page    int
	PerPage int
	Search  string
	Filters map[string]string
}

// ExportRequest параметры выгрузки: те же поиск и фильтры, что у таблицы, без пагинации
type ExportRequest struct {
	Format  string
	Search  string
	Filters map[string]string
}

// StatusCounts количество записей по статусам
type StatusCounts map[string]int

// AmountAnalytics сумма и количество денежных записей
type AmountAnalytics struct {
	Count          int     `json:"count"`
	TotalAmount    float64 `json:"totalAmount"`
	FormattedTotal string  `json:"formattedTotal"`
}

// EquipmentAnalytics единицы инвентаря по статусам
type EquipmentAnalytics struct {
	Units      map[string]int `json:"units"`
	TotalValue float64        `json:"totalValue"`
}

// PayrollAnalytics фонд оплаты труда сотрудников
type PayrollAnalytics struct {
	ByStatus    StatusCounts `json:"byStatus"`
	TotalSalary float64      `json:"totalSalary"`
}
