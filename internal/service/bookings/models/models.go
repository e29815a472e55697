package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований клиента
type GetUserBookingsRequest struct {
	UserID      uuid.UUID `json:"userId"`
	RequesterID uuid.UUID `json:"-"`
	Status      *string   `json:"status,omitempty"`
}

// GetPhotographerBookingsRequest запрос на получение бронирований фотографа
type GetPhotographerBookingsRequest struct {
	PhotographerID  uuid.UUID  `json:"photographerId"`
	RequesterID     uuid.UUID  `json:"-"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetPhotographerBookingsRequest) ToDomainFilter() (domain.PhotographerBookingsFilter, error) {
	filter := domain.PhotographerBookingsFilter{
		PhotographerID:  r.PhotographerID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID uuid.UUID `json:"-"`
	Status string    `json:"status"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             uuid.UUID `json:"-"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64     `json:"id"`
	PhotographerID uuid.UUID `json:"photographerId"`
	ClientID       uuid.UUID `json:"clientId"`
	BookingDate    string    `json:"bookingDate"` // "2025-10-15"
	StartTime      string    `json:"startTime"`   // "2:00 PM"
	Location       string    `json:"location"`
	ShootType      string    `json:"shootType"`
	Notes          *string   `json:"notes,omitempty"`
	Status         string    `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		PhotographerID:     b.PhotographerID,
		ClientID:           b.ClientID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          string(b.StartTime),
		Location:           b.Location,
		ShootType:          b.ShootType,
		Notes:              b.Notes,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
