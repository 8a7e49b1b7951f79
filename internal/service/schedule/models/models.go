package models

import (
	"time"

	"github.com/m04kA/SMC-GymConsole/internal/domain"
)

// Response модели

// SlotResponse слот расписания
type SlotResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"` // "2026-02-12"
	Time            string  `json:"time"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	DurationLabel   string  `json:"durationLabel"`
	Title           string  `json:"title"`
	Instructor      string  `json:"instructor"`
	BranchID        *string `json:"branchId,omitempty"`
	Capacity        int     `json:"capacity"`
	Booked          int     `json:"booked"`
	AvailableSpots  int     `json:"availableSpots"`
	Price           float64 `json:"price"`
	Status          string  `json:"status"`
}

// BookingResponse бронирование
type BookingResponse struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	MemberName   string    `json:"memberName"`
	Instructor   string    `json:"instructor"`
	TimeSlot     string    `json:"timeSlot"`
	Participants int       `json:"participants"`
	Price        float64   `json:"price"`
	Status       string    `json:"status"`
	SlotID       *string   `json:"slotId,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AttendanceResponse отметка посещаемости
type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	CheckIn    string `json:"checkIn,omitempty"`
	CheckOut   string `json:"checkOut,omitempty"`
	Status     string `json:"status"`
}

// BookingAnalytics сводка по отфильтрованным бронированиям
type BookingAnalytics struct {
	TotalAmount  float64        `json:"totalAmount"`
	Participants int            `json:"participants"`
	ByStatus     map[string]int `json:"byStatus"`
}

// Request модели

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListBookingsRequest запрос списка бронирований за период
type ListBookingsRequest struct {
	From    domain.CalendarDate
	To      domain.CalendarDate
	Search  string
	Status  string // "all" или пусто - без фильтра
	Page    int
	PerPage int
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s domain.Slot) SlotResponse {
	return SlotResponse{
		ID:              s.ID,
		Date:            s.Date.String(),
		Time:            s.Time.String(),
		DurationMinutes: s.DurationMinutes,
		DurationLabel:   s.DurationLabel(),
		Title:           s.Title,
		Instructor:      s.Instructor,
		BranchID:        s.BranchID,
		Capacity:        s.Capacity,
		Booked:          s.Booked,
		AvailableSpots:  s.AvailableSpots(),
		Price:           s.Price,
		Status:          string(s.Status()),
	}
}

// FromDomainSlots конвертирует список слотов
func FromDomainSlots(slots []domain.Slot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, FromDomainSlot(s))
	}
	return out
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		Date:         b.Date.String(),
		MemberName:   b.MemberName,
		Instructor:   b.Instructor,
		TimeSlot:     b.TimeSlot,
		Participants: b.Participants,
		Price:        b.Price,
		Status:       string(b.Status),
		SlotID:       b.SlotID,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
	}
}

// FromDomainBookings конвертирует список бронирований
func FromDomainBookings(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return out
}

// FromDomainAttendance конвертирует domain модель в DTO
func FromDomainAttendance(a domain.AttendanceMark) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.String(),
		CheckIn:    a.CheckIn.String(),
		CheckOut:   a.CheckOut.String(),
		Status:     string(a.Status),
	}
}

// FromDomainAttendanceList конвертирует список отметок
func FromDomainAttendanceList(marks []domain.AttendanceMark) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(marks))
	for _, a := range marks {
		out = append(out, FromDomainAttendance(a))
	}
	return out
}

// Deref разыменовывает список указателей из репозитория
func Deref[T any](items []*T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, *item)
		}
	}
	return out
}
