package domain

import "time"

// Record общие поля записей справочных таблиц
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Resource запись справочной таблицы (клиенты, сотрудники, филиалы, ...)
type Resource interface {
	GetID() string
	SetID(id string)
	SetTimestamps(createdAt, updatedAt time.Time)
}

// GetID возвращает идентификатор записи
func (r *Record) GetID() string { return r.ID }

// SetID задаёт идентификатор записи
func (r *Record) SetID(id string) { r.ID = id }

// SetTimestamps проставляет время создания и обновления из БД
func (r *Record) SetTimestamps(createdAt, updatedAt time.Time) {
	r.CreatedAt = createdAt
	r.UpdatedAt = updatedAt
}

// Member клиент клуба
type Member struct {
	Record
	Name       string       `json:"name" validate:"required,max=120"`
	Phone      string       `json:"phone" validate:"required,max=32"`
	Email      string       `json:"email" validate:"omitempty,email"`
	Gender     string       `json:"gender" validate:"omitempty,oneof=male female other"`
	BranchID   string       `json:"branchId"`
	PlanName   string       `json:"planName"`
	Status     string       `json:"status" validate:"required,oneof=active expired frozen"`
	JoinDate   CalendarDate `json:"joinDate" validate:"required,datetime=2006-01-02"`
	ExpiryDate CalendarDate `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
}

// Employee сотрудник клуба
type Employee struct {
	Record
	Name     string       `json:"name" validate:"required,max=120"`
	Role     string       `json:"role" validate:"required,oneof=trainer receptionist manager cleaner"`
	Phone    string       `json:"phone" validate:"required,max=32"`
	Email    string       `json:"email" validate:"omitempty,email"`
	BranchID string       `json:"branchId"`
	Salary   float64      `json:"salary" validate:"gte=0"`
	Status   string       `json:"status" validate:"required,oneof=active inactive"`
	JoinDate CalendarDate `json:"joinDate" validate:"required,datetime=2006-01-02"`
}

// Branch филиал
type Branch struct {
	Record
	Name        string `json:"name" validate:"required,max=120"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	ManagerName string `json:"managerName"`
	Status      string `json:"status" validate:"required,oneof=active inactive"`
}

// Device устройство контроля доступа
type Device struct {
	Record
	Name         string `json:"name" validate:"required"`
	SerialNumber string `json:"serialNumber" validate:"required"`
	Type         string `json:"type" validate:"required,oneof=biometric turnstile card_reader"`
	BranchID     string `json:"branchId"`
	IPAddress    string `json:"ipAddress" validate:"omitempty,ip"`
	Status       string `json:"status" validate:"required,oneof=online offline"`
}

// DayPass разовый гостевой визит
type DayPass struct {
	Record
	GuestName     string       `json:"guestName" validate:"required"`
	Phone         string       `json:"phone"`
	BranchID      string       `json:"branchId"`
	Date          CalendarDate `json:"date" validate:"required,datetime=2006-01-02"`
	Price         float64      `json:"price" validate:"gte=0"`
	PaymentMethod string       `json:"paymentMethod" validate:"omitempty,oneof=cash card transfer"`
	Status        string       `json:"status" validate:"required,oneof=active used expired"`
}

// Expense расход клуба
type Expense struct {
	Record
	Title         string       `json:"title" validate:"required"`
	Category      string       `json:"category" validate:"required"`
	Amount        float64      `json:"amount" validate:"gt=0"`
	BranchID      string       `json:"branchId"`
	Date          CalendarDate `json:"date" validate:"required,datetime=2006-01-02"`
	PaymentMethod string       `json:"paymentMethod" validate:"omitempty,oneof=cash card transfer"`
	Notes         string       `json:"notes" validate:"max=500"`
}

// Receipt квитанция об оплате
type Receipt struct {
	Record
	Number        string       `json:"number" validate:"required"`
	MemberName    string       `json:"memberName" validate:"required"`
	Amount        float64      `json:"amount" validate:"gt=0"`
	PaymentMethod string       `json:"paymentMethod" validate:"required,oneof=cash card transfer"`
	BranchID      string       `json:"branchId"`
	Date          CalendarDate `json:"date" validate:"required,datetime=2006-01-02"`
	Description   string       `json:"description"`
}

// Broadcast статусы рассылки
const (
	BroadcastDraft  = "draft"
	BroadcastSent   = "sent"
	BroadcastFailed = "failed"
)

// Broadcast рассылка клиентам
type Broadcast struct {
	Record
	Title    string     `json:"title" validate:"required,max=120"`
	Message  string     `json:"message" validate:"required,max=1000"`
	Audience string     `json:"audience" validate:"required,oneof=all active expired"`
	Channel  string     `json:"channel" validate:"required,oneof=sms email push"`
	Status   string     `json:"status" validate:"omitempty,oneof=draft sent failed"`
	SentAt   *time.Time `json:"sentAt,omitempty"`
}

// Equipment инвентарь
type Equipment struct {
	Record
	Name         string       `json:"name" validate:"required"`
	Category     string       `json:"category" validate:"required"`
	BranchID     string       `json:"branchId"`
	Quantity     int          `json:"quantity" validate:"gte=0"`
	PurchaseDate CalendarDate `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	Price        float64      `json:"price" validate:"gte=0"`
	Status       string       `json:"status" validate:"required,oneof=working maintenance retired"`
}
