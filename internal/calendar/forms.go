package calendar

import (
	"strings"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

// SlotForm форма создания слота
type SlotForm struct {
	Date            string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string   `json:"time" validate:"required,datetime=15:04"`
	DurationMinutes int      `json:"durationMinutes" validate:"omitempty,min=5,max=480"`
	Title           string   `json:"title" validate:"max=120"`
	Instructor      string   `json:"instructor" validate:"max=120"`
	BranchID        *string  `json:"branchId,omitempty" validate:"omitempty,uuid"`
	Capacity        int      `json:"capacity" validate:"omitempty,min=1,max=500"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

func (f *SlotForm) normalize() {
	f.Date = strings.TrimSpace(f.Date)
	f.Time = strings.TrimSpace(f.Time)
	f.Title = strings.TrimSpace(f.Title)
	f.Instructor = strings.TrimSpace(f.Instructor)
}

// BookingForm форма бронирования (в слот или без слота)
type BookingForm struct {
	MemberName   string   `json:"memberName" validate:"required,max=120"`
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot     string   `json:"timeSlot" validate:"required,max=32"`
	Instructor   string   `json:"instructor" validate:"max=120"`
	Participants int      `json:"participants" validate:"omitempty,min=1,max=500"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status       string   `json:"status" validate:"omitempty,oneof=confirmed pending"`
	SlotID       *string  `json:"slotId,omitempty"`
	Notes        *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}

func (f *BookingForm) normalize() {
	f.MemberName = strings.TrimSpace(f.MemberName)
	f.Date = strings.TrimSpace(f.Date)
	f.TimeSlot = strings.TrimSpace(f.TimeSlot)
	f.Instructor = strings.TrimSpace(f.Instructor)
	if f.Participants == 0 {
		f.Participants = domain.DefaultParticipants
	}
	if f.Status == "" {
		f.Status = string(domain.StatusConfirmed)
	}
	// пустой slotId означает бронирование без слота
	if f.SlotID != nil {
		id := strings.TrimSpace(*f.SlotID)
		if id == "" {
			f.SlotID = nil
		} else {
			f.SlotID = &id
		}
	}
}

// AttendanceForm форма отметки посещаемости сотрудника
type AttendanceForm struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	CheckIn    string `json:"checkIn" validate:"omitempty,datetime=15:04"`
	CheckOut   string `json:"checkOut" validate:"omitempty,datetime=15:04"`
	Status     string `json:"status" validate:"required,oneof=present absent late half-day"`
}

func (f *AttendanceForm) normalize() {
	f.EmployeeID = strings.TrimSpace(f.EmployeeID)
	f.Date = strings.TrimSpace(f.Date)
	f.CheckIn = strings.TrimSpace(f.CheckIn)
	f.CheckOut = strings.TrimSpace(f.CheckOut)
}
