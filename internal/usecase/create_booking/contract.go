package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
	"github.com/lenslot/LS-BookingService/internal/integrations/profileservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByPhotographerWithFilter(ctx context.Context, filter domain.PhotographerBookingsFilter) ([]*domain.Booking, error)
}

// AvailabilityRepository интерфейс репозитория availability
type AvailabilityRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Availability, error)
}

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// ProfileServiceClient интерфейс клиента профильного сервиса
type ProfileServiceClient interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*profileservice.Profile, error)
	GetProfileWithGracefulDegradation(ctx context.Context, userID uuid.UUID) (*profileservice.Profile, error)
}

// Publisher интерфейс публикации уведомлений во внутренний хаб
type Publisher interface {
	Publish(userID uuid.UUID, n domain.Notification)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
