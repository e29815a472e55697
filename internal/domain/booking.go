package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a photo session booking in the system
type Booking struct {
	ID             int64
	PhotographerID uuid.UUID
	ClientID       uuid.UUID
	BookingDate    time.Time
	StartTime      types.ClockTime
	Location       string
	ShootType      string // Тип съёмки (wedding, portrait, event, ...)
	Notes          *string
	Status         BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot.
// Cancelled bookings never count toward the daily cap or buffer checks.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking is awaiting the photographer's decision
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCompleted returns true if the booking may be marked completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// IsTerminal returns true if no further status transitions are allowed
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// PhotographerBookingsFilter фильтр для получения бронирований фотографа
type PhotographerBookingsFilter struct {
	PhotographerID  uuid.UUID      // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
