package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
	bookingRepo "github.com/lenslot/LS-BookingService/internal/infra/storage/booking"
	"github.com/lenslot/LS-BookingService/internal/service/bookings/models"
)

// Человекочитаемый формат даты в текстах уведомлений
const noticeDateFormat = "January 2, 2006"

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	publisher        Publisher
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	publisher Publisher,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// GetByID получает бронирование по ID
// Доступно только участникам бронирования: клиенту или фотографу
func (s *Service) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%s", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !s.isParticipant(booking, userID) {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований клиента
// Опционально фильтрует по статусу. Пользователь видит только свои бронирования
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	if req.RequesterID != req.UserID {
		s.logger.Warn("GetUserBookings: access denied for requester=%s to user=%s bookings", req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetPhotographerBookings получает бронирования фотографа с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых
// Доступно только самому фотографу
//
// Примеры использования:
// - Все активные бронирования: указать только PhotographerID
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтверждённые: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetPhotographerBookings(ctx context.Context, req *models.GetPhotographerBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetPhotographerBookings: fetching bookings for photographer=%s", req.PhotographerID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	if req.RequesterID != req.PhotographerID {
		s.logger.Warn("GetPhotographerBookings: access denied for requester=%s to photographer=%s bookings",
			req.RequesterID, req.PhotographerID)
		return nil, ErrAccessDenied
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetPhotographerBookings: invalid filter for photographer=%s: %v", req.PhotographerID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByPhotographerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetPhotographerBookings: repository error for photographer=%s: %v", req.PhotographerID, err)
		return nil, fmt.Errorf("%w: GetPhotographerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPhotographerBookings: successfully fetched %d bookings for photographer=%s",
		len(bookings), req.PhotographerID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только фотографу. Допустимые переходы:
// pending -> confirmed, confirmed -> completed (после начала сессии).
// Отмена выполняется отдельной операцией Cancel
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%s",
		bookingID, req.Status, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Статус меняет только фотограф
	if booking.PhotographerID != req.UserID {
		s.logger.Warn("UpdateStatus: access denied for user=%s to booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.checkTransition(booking, newStatus); err != nil {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for booking id=%d: %v",
			booking.Status, newStatus, bookingID, err)
		return err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)

	// Уведомляем клиента. Ошибка доставки не откатывает смену статуса
	s.notifyStatusChange(ctx, booking, newStatus)

	return nil
}

// Cancel отменяет бронирование
// Отменить может любой из участников: клиент или фотограф
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%s", bookingID, req.UserID)

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !s.isParticipant(booking, req.UserID) {
		s.logger.Warn("Cancel: access denied for user=%s to booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	// Отменить можно только pending или confirmed бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)

	// Уведомляем вторую сторону об отмене
	s.notifyCancelled(ctx, booking, req.UserID)

	return nil
}

// Вспомогательные методы

// isParticipant проверяет, что пользователь является участником бронирования
func (s *Service) isParticipant(booking *domain.Booking, userID uuid.UUID) bool {
	return booking.ClientID == userID || booking.PhotographerID == userID
}

// checkTransition проверяет допустимость перехода статуса
func (s *Service) checkTransition(booking *domain.Booking, newStatus domain.BookingStatus) error {
	switch newStatus {
	case domain.StatusConfirmed:
		if !booking.CanBeConfirmed() {
			return ErrInvalidTransition
		}
		return nil
	case domain.StatusCompleted:
		if !booking.CanBeCompleted() {
			return ErrInvalidTransition
		}
		// Завершить можно только после начала сессии
		if s.timeProvider.Now().Before(sessionStart(booking)) {
			return ErrSessionNotStarted
		}
		return nil
	default:
		return ErrInvalidTransition
	}
}

// sessionStart момент начала сессии бронирования
func sessionStart(booking *domain.Booking) time.Time {
	midnight := time.Date(
		booking.BookingDate.Year(), booking.BookingDate.Month(), booking.BookingDate.Day(),
		0, 0, 0, 0, booking.BookingDate.Location(),
	)

	minutes, err := booking.StartTime.Minutes()
	if err != nil {
		return midnight
	}

	return midnight.Add(time.Duration(minutes) * time.Minute)
}

// notifyStatusChange уведомляет клиента о смене статуса бронирования
func (s *Service) notifyStatusChange(ctx context.Context, booking *domain.Booking, newStatus domain.BookingStatus) {
	var n domain.Notification

	switch newStatus {
	case domain.StatusConfirmed:
		n = domain.Notification{
			UserID: booking.ClientID,
			Type:   domain.NotificationBookingConfirmed,
			Title:  "Booking Confirmed",
			Message: fmt.Sprintf("Your booking for %s at %s has been confirmed.",
				booking.BookingDate.Format(noticeDateFormat), booking.StartTime),
		}
	case domain.StatusCompleted:
		n = domain.Notification{
			UserID: booking.ClientID,
			Type:   domain.NotificationBookingCompleted,
			Title:  "Booking Completed",
			Message: fmt.Sprintf("Your booking for %s at %s has been marked as completed.",
				booking.BookingDate.Format(noticeDateFormat), booking.StartTime),
		}
	default:
		return
	}

	s.deliver(ctx, n)
}

// notifyCancelled уведомляет вторую сторону бронирования об отмене
func (s *Service) notifyCancelled(ctx context.Context, booking *domain.Booking, cancelledBy uuid.UUID) {
	recipient := booking.ClientID
	if cancelledBy == booking.ClientID {
		recipient = booking.PhotographerID
	}

	s.deliver(ctx, domain.Notification{
		UserID: recipient,
		Type:   domain.NotificationBookingCancelled,
		Title:  "Booking Cancelled",
		Message: fmt.Sprintf("The booking for %s at %s has been cancelled.",
			booking.BookingDate.Format(noticeDateFormat), booking.StartTime),
	})
}

func (s *Service) deliver(ctx context.Context, n domain.Notification) {
	saved, err := s.notificationRepo.Create(ctx, &n)
	if err != nil {
		s.logger.Warn("deliver: failed to save notification: userID=%s, type=%s, error=%v",
			n.UserID, n.Type, err)
		return
	}

	s.publisher.Publish(saved.UserID, *saved)
}
