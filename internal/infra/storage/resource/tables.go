package resource

import "github.com/m04kA/SMC-GymConsole/internal/domain"

// Описания справочных таблиц. Порядок Columns, Values и Targets должен совпадать

var Members = Table[domain.Member]{
	Name:       "members",
	Columns:    []string{"name", "phone", "email", "gender", "branch_id", "plan_name", "status", "join_date", "expiry_date"},
	DateColumn: "join_date",
	Values: func(m *domain.Member) []interface{} {
		return []interface{}{m.Name, m.Phone, m.Email, m.Gender, m.BranchID, m.PlanName, m.Status, m.JoinDate, m.ExpiryDate}
	},
	Targets: func(m *domain.Member) []interface{} {
		return []interface{}{&m.Name, &m.Phone, &m.Email, &m.Gender, &m.BranchID, &m.PlanName, &m.Status, &m.JoinDate, &m.ExpiryDate}
	},
}

var Employees = Table[domain.Employee]{
	Name:       "employees",
	Columns:    []string{"name", "role", "phone", "email", "branch_id", "salary", "status", "join_date"},
	DateColumn: "join_date",
	Values: func(e *domain.Employee) []interface{} {
		return []interface{}{e.Name, e.Role, e.Phone, e.Email, e.BranchID, e.Salary, e.Status, e.JoinDate}
	},
	Targets: func(e *domain.Employee) []interface{} {
		return []interface{}{&e.Name, &e.Role, &e.Phone, &e.Email, &e.BranchID, &e.Salary, &e.Status, &e.JoinDate}
	},
}

var Branches = Table[domain.Branch]{
	Name:    "branches",
	Columns: []string{"name", "address", "city", "phone", "manager_name", "status"},
	Values: func(b *domain.Branch) []interface{} {
		return []interface{}{b.Name, b.Address, b.City, b.Phone, b.ManagerName, b.Status}
	},
	Targets: func(b *domain.Branch) []interface{} {
		return []interface{}{&b.Name, &b.Address, &b.City, &b.Phone, &b.ManagerName, &b.Status}
	},
}

var Devices = Table[domain.Device]{
	Name:    "devices",
	Columns: []string{"name", "serial_number", "type", "branch_id", "ip_address", "status"},
	Values: func(d *domain.Device) []interface{} {
		return []interface{}{d.Name, d.SerialNumber, d.Type, d.BranchID, d.IPAddress, d.Status}
	},
	Targets: func(d *domain.Device) []interface{} {
		return []interface{}{&d.Name, &d.SerialNumber, &d.Type, &d.BranchID, &d.IPAddress, &d.Status}
	},
}

var DayPasses = Table[domain.DayPass]{
	Name:       "day_passes",
	Columns:    []string{"guest_name", "phone", "branch_id", "pass_date", "price", "payment_method", "status"},
	DateColumn: "pass_date",
	Values: func(p *domain.DayPass) []interface{} {
		return []interface{}{p.GuestName, p.Phone, p.BranchID, p.Date, p.Price, p.PaymentMethod, p.Status}
	},
	Targets: func(p *domain.DayPass) []interface{} {
		return []interface{}{&p.GuestName, &p.Phone, &p.BranchID, &p.Date, &p.Price, &p.PaymentMethod, &p.Status}
	},
}

var Expenses = Table[domain.Expense]{
	Name:       "expenses",
	Columns:    []string{"title", "category", "amount", "branch_id", "expense_date", "payment_method", "notes"},
	DateColumn: "expense_date",
	Values: func(e *domain.Expense) []interface{} {
		return []interface{}{e.Title, e.Category, e.Amount, e.BranchID, e.Date, e.PaymentMethod, e.Notes}
	},
	Targets: func(e *domain.Expense) []interface{} {
		return []interface{}{&e.Title, &e.Category, &e.Amount, &e.BranchID, &e.Date, &e.PaymentMethod, &e.Notes}
	},
}

var Receipts = Table[domain.Receipt]{
	Name:       "receipts",
	Columns:    []string{"number", "member_name", "amount", "payment_method", "branch_id", "receipt_date", "description"},
	DateColumn: "receipt_date",
	Values: func(r *domain.Receipt) []interface{} {
		return []interface{}{r.Number, r.MemberName, r.Amount, r.PaymentMethod, r.BranchID, r.Date, r.Description}
	},
	Targets: func(r *domain.Receipt) []interface{} {
		return []interface{}{&r.Number, &r.MemberName, &r.Amount, &r.PaymentMethod, &r.BranchID, &r.Date, &r.Description}
	},
}

var Broadcasts = Table[domain.Broadcast]{
	Name:    "broadcasts",
	Columns: []string{"title", "message", "audience", "channel", "status", "sent_at"},
	Values: func(b *domain.Broadcast) []interface{} {
		return []interface{}{b.Title, b.Message, b.Audience, b.Channel, b.Status, b.SentAt}
	},
	Targets: func(b *domain.Broadcast) []interface{} {
		return []interface{}{&b.Title, &b.Message, &b.Audience, &b.Channel, &b.Status, &b.SentAt}
	},
}

var EquipmentTable = Table[domain.Equipment]{
	Name:       "equipment",
	Columns:    []string{"name", "category", "branch_id", "quantity", "purchase_date", "price", "status"},
	DateColumn: "purchase_date",
	Values: func(e *domain.Equipment) []interface{} {
		return []interface{}{e.Name, e.Category, e.BranchID, e.Quantity, e.PurchaseDate, e.Price, e.Status}
	},
	Targets: func(e *domain.Equipment) []interface{} {
		return []interface{}{&e.Name, &e.Category, &e.BranchID, &e.Quantity, &e.PurchaseDate, &e.Price, &e.Status}
	},
}
