package resources

import (
	"strings"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
	"github.com/m04kA/SMC-GymConsole/internal/export"
	"github.com/m04kA/SMC-GymConsole/internal/format"
)

// Spec описание таблицы для сервиса: поиск, фильтры, колонки выгрузки и аналитика
type Spec[T any] struct {
	Name         string
	SearchFields []string // JSON имена полей
	FilterFields []string
	Columns      []export.Column[T]
	Analytics    func(items []T) any
	Normalize    func(item *T) // вызывается перед валидацией
}

// MemberSpec клиенты
func MemberSpec() Spec[domain.Member] {
	return Spec[domain.Member]{
		Name:         "members",
		SearchFields: []string{"name", "phone", "email", "planName"},
		FilterFields: []string{"status", "gender", "branchId", "planName"},
		Columns: []export.Column[domain.Member]{
			{Header: "Name", Field: "name"},
			{Header: "Phone", Field: "phone"},
			{Header: "Email", Field: "email"},
			{Header: "Plan", Field: "planName"},
			{Header: "Status", Field: "status"},
			{Header: "Joined", Field: "joinDate"},
			{Header: "Expires", Field: "expiryDate"},
		},
		Analytics: func(items []domain.Member) any {
			return countBy(items, func(m domain.Member) string { return m.Status })
		},
		Normalize: func(m *domain.Member) {
			m.Name = strings.TrimSpace(m.Name)
			m.Phone = strings.TrimSpace(m.Phone)
			m.Email = strings.ToLower(strings.TrimSpace(m.Email))
		},
	}
}

// EmployeeSpec сотрудники
func EmployeeSpec(f *format.Formatter) Spec[domain.Employee] {
	return Spec[domain.Employee]{
		Name:         "employees",
		SearchFields: []string{"name", "phone", "email", "role"},
		FilterFields: []string{"role", "status", "branchId"},
		Columns: []export.Column[domain.Employee]{
			{Header: "Name", Field: "name"},
			{Header: "Role", Field: "role"},
			{Header: "Phone", Field: "phone"},
			{Header: "Email", Field: "email"},
			{Header: "Salary", Field: "salary", Renderer: export.CurrencyRenderer[domain.Employee](f)},
			{Header: "Status", Field: "status"},
			{Header: "Joined", Field: "joinDate"},
		},
		Analytics: func(items []domain.Employee) any {
			analytics := PayrollAnalytics{ByStatus: countBy(items, func(e domain.Employee) string { return e.Status })}
			for _, e := range items {
				if e.Status == "active" {
					analytics.TotalSalary += e.Salary
				}
			}
			return analytics
		},
		Normalize: func(e *domain.Employee) {
			e.Name = strings.TrimSpace(e.Name)
			e.Email = strings.ToLower(strings.TrimSpace(e.Email))
		},
	}
}

// BranchSpec филиалы
func BranchSpec() Spec[domain.Branch] {
	return Spec[domain.Branch]{
		Name:         "branches",
		SearchFields: []string{"name", "address", "city", "managerName"},
		FilterFields: []string{"status", "city"},
		Columns: []export.Column[domain.Branch]{
			{Header: "Name", Field: "name"},
			{Header: "Address", Field: "address"},
			{Header: "City", Field: "city"},
			{Header: "Phone", Field: "phone"},
			{Header: "Manager", Field: "managerName"},
			{Header: "Status", Field: "status"},
		},
		Analytics: func(items []domain.Branch) any {
			return countBy(items, func(b domain.Branch) string { return b.Status })
		},
	}
}

// DeviceSpec устройства контроля доступа
func DeviceSpec() Spec[domain.Device] {
	return Spec[domain.Device]{
		Name:         "devices",
		SearchFields: []string{"name", "serialNumber", "ipAddress"},
		FilterFields: []string{"type", "status", "branchId"},
		Columns: []export.Column[domain.Device]{
			{Header: "Name", Field: "name"},
			{Header: "Serial number", Field: "serialNumber"},
			{Header: "Type", Field: "type"},
			{Header: "IP address", Field: "ipAddress"},
			{Header: "Status", Field: "status"},
		},
		Analytics: func(items []domain.Device) any {
			return countBy(items, func(d domain.Device) string { return d.Status })
		},
		Normalize: func(d *domain.Device) {
			d.SerialNumber = strings.ToUpper(strings.TrimSpace(d.SerialNumber))
		},
	}
}

// DayPassSpec гостевые визиты
func DayPassSpec(f *format.Formatter) Spec[domain.DayPass] {
	return Spec[domain.DayPass]{
		Name:         "day-passes",
		SearchFields: []string{"guestName", "phone"},
		FilterFields: []string{"status", "paymentMethod", "branchId", "date"},
		Columns: []export.Column[domain.DayPass]{
			{Header: "Guest", Field: "guestName"},
			{Header: "Phone", Field: "phone"},
			{Header: "Date", Field: "date"},
			{Header: "Price", Field: "price", Renderer: export.CurrencyRenderer[domain.DayPass](f)},
			{Header: "Payment", Field: "paymentMethod"},
			{Header: "Status", Field: "status"},
		},
		Analytics: func(items []domain.DayPass) any {
			return amountAnalytics(f, items, func(p domain.DayPass) float64 { return p.Price })
		},
	}
}

// ExpenseSpec расходы
func ExpenseSpec(f *format.Formatter) Spec[domain.Expense] {
	return Spec[domain.Expense]{
		Name:         "expenses",
		SearchFields: []string{"title", "category", "notes"},
		FilterFields: []string{"category", "paymentMethod", "branchId"},
		Columns: []export.Column[domain.Expense]{
			{Header: "Title", Field: "title"},
			{Header: "Category", Field: "category"},
			{Header: "Amount", Field: "amount", Renderer: export.CurrencyRenderer[domain.Expense](f)},
			{Header: "Date", Field: "date"},
			{Header: "Payment", Field: "paymentMethod"},
			{Header: "Notes", Field: "notes"},
		},
		Analytics: func(items []domain.Expense) any {
			return amountAnalytics(f, items, func(e domain.Expense) float64 { return e.Amount })
		},
	}
}

// ReceiptSpec квитанции
func ReceiptSpec(f *format.Formatter) Spec[domain.Receipt] {
	return Spec[domain.Receipt]{
		Name:         "receipts",
		SearchFields: []string{"number", "memberName", "description"},
		FilterFields: []string{"paymentMethod", "branchId"},
		Columns: []export.Column[domain.Receipt]{
			{Header: "Number", Field: "number"},
			{Header: "Member", Field: "memberName"},
			{Header: "Amount", Field: "amount", Renderer: export.CurrencyRenderer[domain.Receipt](f)},
			{Header: "Payment", Field: "paymentMethod"},
			{Header: "Date", Field: "date"},
			{Header: "Description", Field: "description"},
		},
		Analytics: func(items []domain.Receipt) any {
			return amountAnalytics(f, items, func(r domain.Receipt) float64 { return r.Amount })
		},
		Normalize: func(r *domain.Receipt) {
			r.Number = strings.TrimSpace(r.Number)
		},
	}
}

// BroadcastSpec рассылки. Новая рассылка всегда черновик
func BroadcastSpec() Spec[domain.Broadcast] {
	return Spec[domain.Broadcast]{
		Name:         "broadcasts",
		SearchFields: []string{"title", "message"},
		FilterFields: []string{"status", "channel", "audience"},
		Columns: []export.Column[domain.Broadcast]{
			{Header: "Title", Field: "title"},
			{Header: "Audience", Field: "audience"},
			{Header: "Channel", Field: "channel"},
			{Header: "Status", Field: "status"},
			{Header: "Sent at", Field: "sentAt"},
		},
		Analytics: func(items []domain.Broadcast) any {
			return countBy(items, func(b domain.Broadcast) string { return b.Status })
		},
		Normalize: func(b *domain.Broadcast) {
			if b.Status == "" {
				b.Status = domain.BroadcastDraft
			}
		},
	}
}

// EquipmentSpec инвентарь
func EquipmentSpec(f *format.Formatter) Spec[domain.Equipment] {
	return Spec[domain.Equipment]{
		Name:         "equipment",
		SearchFields: []string{"name", "category"},
		FilterFields: []string{"category", "status", "branchId"},
		Columns: []export.Column[domain.Equipment]{
			{Header: "Name", Field: "name"},
			{Header: "Category", Field: "category"},
			{Header: "Quantity", Field: "quantity"},
			{Header: "Purchased", Field: "purchaseDate"},
			{Header: "Price", Field: "price", Renderer: export.CurrencyRenderer[domain.Equipment](f)},
			{Header: "Status", Field: "status"},
		},
		Analytics: func(items []domain.Equipment) any {
			analytics := EquipmentAnalytics{Units: make(map[string]int)}
			for _, e := range items {
				analytics.Units[e.Status] += e.Quantity
				analytics.TotalValue += e.Price * float64(e.Quantity)
			}
			return analytics
		},
	}
}

func countBy[T any](items []T, key func(T) string) StatusCounts {
	counts := make(StatusCounts)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

func amountAnalytics[T any](f *format.Formatter, items []T, amount func(T) float64) AmountAnalytics {
	var analytics AmountAnalytics
	for _, item := range items {
		analytics.Count++
		analytics.TotalAmount += amount(item)
	}
	analytics.FormattedTotal = f.Currency(analytics.TotalAmount)
	return analytics
}
