package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GymConsole/internal/calendar"
	"github.com/m04kA/SMC-GymConsole/internal/domain"
	attendanceRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/attendance"
	bookingRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-GymConsole/internal/infra/storage/slot"
	"github.com/m04kA/SMC-GymConsole/internal/listing"
	"github.com/m04kA/SMC-GymConsole/internal/service/schedule/models"
)

// bookingSearchFields поля таблицы бронирований, по которым идёт поиск
var bookingSearchFields = []string{"memberName", "instructor", "timeSlot"}

// Service операции расписания, не требующие транзакции
type Service struct {
	bookingRepo    BookingRepository
	slotRepo       SlotRepository
	attendanceRepo AttendanceRepository
	metrics        Metrics
	newID          func() string
	logger         Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	attendanceRepo AttendanceRepository,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		slotRepo:       slotRepo,
		attendanceRepo: attendanceRepo,
		metrics:        metrics,
		newID:          uuid.NewString,
		logger:         logger,
	}
}

// GetBooking получает бронирование по ID
func (s *Service) GetBooking(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetBooking: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetBooking: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetBooking - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBooking(*booking)
	return &resp, nil
}

// ListBookings список бронирований за период с поиском, фильтром по статусу и пагинацией
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*listing.Envelope[models.BookingResponse], error) {
	s.logger.Info("ListBookings: fetching bookings from=%s to=%s, search=%q, status=%s",
		req.From, req.To, req.Search, req.Status)

	if err := validateRange(req.From, req.To); err != nil {
		s.logger.Warn("ListBookings: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{From: req.From, To: req.To})
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	query := listing.Query{
		Search:       req.Search,
		SearchFields: bookingSearchFields,
		Filters:      map[string]string{"status": req.Status},
	}
	filtered := listing.Filter(models.FromDomainBookings(models.Deref(bookings)), query)
	page := listing.Paginate(filtered, req.Page, req.PerPage)

	envelope := listing.NewEnvelope(page, bookingAnalytics(filtered))
	s.logger.Info("ListBookings: %d of %d bookings match", len(filtered), len(bookings))
	return &envelope, nil
}

func bookingAnalytics(bookings []models.BookingResponse) models.BookingAnalytics {
	analytics := models.BookingAnalytics{ByStatus: make(map[string]int)}
	for _, b := range bookings {
		analytics.ByStatus[b.Status]++
		if b.Status == string(domain.StatusCancelled) {
			continue
		}
		analytics.TotalAmount += b.Price
		analytics.Participants += b.Participants
	}
	return analytics
}

// UpdateBookingStatus меняет статус бронирования.
// Отмена освобождает места в слоте: занятость считается по активным бронированиям
func (s *Service) UpdateBookingStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateBookingStatus: booking id=%s, status=%s", id, req.Status)

	status, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateBookingStatus: invalid status=%s", req.Status)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateBookingStatus: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateBookingStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateBookingStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(status) {
		s.logger.Warn("UpdateBookingStatus: booking id=%s cannot move from %s to %s", id, booking.Status, status)
		s.metrics.IncScheduleOperation("update_booking_status", "rejected")
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, booking.Status, status); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrStatusChanged):
			s.logger.Warn("UpdateBookingStatus: booking id=%s changed status concurrently, was %s", id, booking.Status)
			s.metrics.IncScheduleOperation("update_booking_status", "conflict")
			return nil, ErrStatusChanged
		}
		s.logger.Error("UpdateBookingStatus: failed to update booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateBookingStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = status
	s.metrics.IncScheduleOperation("update_booking_status", "ok")
	s.logger.Info("UpdateBookingStatus: booking id=%s is now %s", id, status)

	resp := models.FromDomainBooking(*booking)
	return &resp, nil
}

// DeleteBooking удаляет бронирование, места в слоте освобождаются
func (s *Service) DeleteBooking(ctx context.Context, id string) error {
	s.logger.Info("DeleteBooking: deleting booking id=%s", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("DeleteBooking: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("DeleteBooking: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteBooking - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncScheduleOperation("delete_booking", "ok")
	return nil
}

// SetSlotClosed закрывает слот для бронирования или открывает снова
func (s *Service) SetSlotClosed(ctx context.Context, id string, closed bool) error {
	s.logger.Info("SetSlotClosed: slot id=%s, closed=%t", id, closed)

	if err := s.slotRepo.SetClosed(ctx, id, closed); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("SetSlotClosed: slot id=%s not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("SetSlotClosed: repository error for slot id=%s: %v", id, err)
		return fmt.Errorf("%w: SetSlotClosed - repository error: %v", ErrInternal, err)
	}

	return nil
}

// DeleteSlot удаляет слот. Бронирования слота остаются и сохраняют slotId
func (s *Service) DeleteSlot(ctx context.Context, id string) error {
	s.logger.Info("DeleteSlot: deleting slot id=%s", id)

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("DeleteSlot: slot id=%s not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteSlot: repository error for slot id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteSlot - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncScheduleOperation("delete_slot", "ok")
	return nil
}

// MarkAttendance создает отметку посещаемости сотрудника, одна на дату
func (s *Service) MarkAttendance(ctx context.Context, employeeID string, form calendar.AttendanceForm) (*models.AttendanceResponse, error) {
	form.EmployeeID = employeeID
	s.logger.Info("MarkAttendance: employee id=%s, date=%s, status=%s", employeeID, form.Date, form.Status)

	mark, err := calendar.NewAttendanceMark(form, s.newID())
	if err != nil {
		s.logger.Warn("MarkAttendance: validation failed: %v", err)
		s.metrics.IncScheduleOperation("mark_attendance", "rejected")
		return nil, err
	}

	created, err := s.attendanceRepo.Create(ctx, &mark)
	if err != nil {
		switch {
		case errors.Is(err, attendanceRepo.ErrAlreadyMarked):
			s.logger.Warn("MarkAttendance: employee id=%s already marked on %s", employeeID, mark.Date)
			s.metrics.IncScheduleOperation("mark_attendance", "rejected")
			return nil, ErrAlreadyMarked
		case errors.Is(err, attendanceRepo.ErrEmployeeNotFound):
			s.logger.Warn("MarkAttendance: employee id=%s not found", employeeID)
			return nil, ErrEmployeeNotFound
		default:
			s.logger.Error("MarkAttendance: repository error: %v", err)
			s.metrics.IncScheduleOperation("mark_attendance", "error")
			return nil, fmt.Errorf("%w: MarkAttendance - repository error: %v", ErrInternal, err)
		}
	}

	s.metrics.IncScheduleOperation("mark_attendance", "ok")
	resp := models.FromDomainAttendance(*created)
	return &resp, nil
}

// DeleteAttendance удаляет отметку посещаемости
func (s *Service) DeleteAttendance(ctx context.Context, id string) error {
	s.logger.Info("DeleteAttendance: deleting mark id=%s", id)

	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, attendanceRepo.ErrMarkNotFound) {
			s.logger.Warn("DeleteAttendance: mark id=%s not found", id)
			return ErrMarkNotFound
		}
		s.logger.Error("DeleteAttendance: repository error for mark id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteAttendance - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateRange(from, to domain.CalendarDate) error {
	if !from.IsZero() && from.Validate() != nil {
		return fmt.Errorf("%w: from=%q", ErrInvalidInput, from)
	}
	if !to.IsZero() && to.Validate() != nil {
		return fmt.Errorf("%w: to=%q", ErrInvalidInput, to)
	}
	if !from.IsZero() && !to.IsZero() && from > to {
		return fmt.Errorf("%w: from is after to", ErrInvalidInput)
	}
	return nil
}
