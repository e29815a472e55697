package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
	notificationRepo "github.com/lenslot/LS-BookingService/internal/infra/storage/notification"
	"github.com/lenslot/LS-BookingService/internal/service/notifications/models"
)

// Service сервис для работы с уведомлениями
type Service struct {
	notificationRepo NotificationRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List получает уведомления пользователя, новые первыми
// При unreadOnly возвращает только непрочитанные
func (s *Service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool) (*models.NotificationListResponse, error) {
	s.logger.Info("List: fetching notifications for user=%s, unreadOnly=%t", userID, unreadOnly)

	notifications, err := s.notificationRepo.GetByUserID(ctx, userID, unreadOnly)
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d notifications for user=%s", len(notifications), userID)
	return models.FromDomainNotificationList(notifications), nil
}

// MarkRead помечает уведомление прочитанным
// Доступно только владельцу уведомления
func (s *Service) MarkRead(ctx context.Context, id int64, userID uuid.UUID) error {
	s.logger.Info("MarkRead: marking notification id=%d read by user=%s", id, userID)

	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkRead: successfully marked notification id=%d read", id)
	return nil
}

// MarkAllRead помечает все уведомления пользователя прочитанными
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	s.logger.Info("MarkAllRead: marking all notifications read for user=%s", userID)

	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		s.logger.Error("MarkAllRead: repository error for user=%s: %v", userID, err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkAllRead: successfully marked all notifications read for user=%s", userID)
	return nil
}

// Delete удаляет уведомление
// Доступно только владельцу уведомления
func (s *Service) Delete(ctx context.Context, id int64, userID uuid.UUID) error {
	s.logger.Info("Delete: deleting notification id=%d by user=%s", id, userID)

	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	if err := s.notificationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		s.logger.Error("Delete: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted notification id=%d", id)
	return nil
}

// getOwned получает уведомление и проверяет владельца
func (s *Service) getOwned(ctx context.Context, id int64, userID uuid.UUID) (*domain.Notification, error) {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("getOwned: notification id=%d not found", id)
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("getOwned: repository error for notification id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getOwned - repository error: %v", ErrInternal, err)
	}

	if n.UserID != userID {
		s.logger.Warn("getOwned: access denied for user=%s to notification id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return n, nil
}
