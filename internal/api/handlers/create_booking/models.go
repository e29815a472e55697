package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
	createBooking "github.com/lenslot/LS-BookingService/internal/usecase/create_booking"
	"github.com/lenslot/LS-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PhotographerID uuid.UUID `json:"photographerId"`
	Date           string    `json:"date"`      // "2025-10-15"
	StartTime      string    `json:"startTime"` // "2:00 PM"
	Location       string    `json:"location"`
	ShootType      string    `json:"shootType"`
	Notes          *string   `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64     `json:"id"`
	PhotographerID uuid.UUID `json:"photographerId"`
	ClientID       uuid.UUID `json:"clientId"`
	Date           string    `json:"date"`
	StartTime      string    `json:"startTime"`
	Location       string    `json:"location"`
	ShootType      string    `json:"shootType"`
	Notes          *string   `json:"notes,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      string    `json:"createdAt"`
	UpdatedAt      string    `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID uuid.UUID) (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.ParseClockTime(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		PhotographerID: r.PhotographerID,
		ClientID:       clientID,
		Date:           date,
		StartTime:      startTime,
		Location:       r.Location,
		ShootType:      r.ShootType,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		PhotographerID: resp.PhotographerID,
		ClientID:       resp.ClientID,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      string(resp.StartTime),
		Location:       resp.Location,
		ShootType:      resp.ShootType,
		Notes:          resp.Notes,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
