package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
)

// Request модели

// SettingsDTO настройки бронирования фотографа
type SettingsDTO struct {
	AdvanceNoticeHours int `json:"advanceNoticeHours"`
	MaxBookingsPerDay  int `json:"maxBookingsPerDay"`
	BufferMinutes      int `json:"bufferMinutes"`
}

// UpdateAvailabilityRequest запрос на сохранение доступности фотографа.
// Запись заменяется целиком: недельный шаблон, список дат и настройки
type UpdateAvailabilityRequest struct {
	PhotographerID uuid.UUID             `json:"-"`
	RequesterID    uuid.UUID             `json:"-"`
	WorkingHours   domain.WeeklySchedule `json:"workingHours"`
	AvailableDates []string              `json:"availableDates"`
	Settings       SettingsDTO           `json:"settings"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateAvailabilityRequest) ToDomain() *domain.Availability {
	return &domain.Availability{
		UserID:         r.PhotographerID,
		WorkingHours:   r.WorkingHours,
		AvailableDates: r.AvailableDates,
		Settings: domain.BookingSettings{
			AdvanceNoticeHours: r.Settings.AdvanceNoticeHours,
			MaxBookingsPerDay:  r.Settings.MaxBookingsPerDay,
			BufferMinutes:      r.Settings.BufferMinutes,
		},
	}
}

// Response модели

// AvailabilityResponse ответ с доступностью фотографа
type AvailabilityResponse struct {
	UserID         uuid.UUID             `json:"userId"`
	WorkingHours   domain.WeeklySchedule `json:"workingHours"`
	AvailableDates []string              `json:"availableDates"`
	Settings       SettingsDTO           `json:"settings"`
	UpdatedAt      *time.Time            `json:"updatedAt,omitempty"`
}

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(a *domain.Availability) *AvailabilityResponse {
	if a == nil {
		return nil
	}

	resp := &AvailabilityResponse{
		UserID:         a.UserID,
		WorkingHours:   a.WorkingHours,
		AvailableDates: a.AvailableDates,
		Settings: SettingsDTO{
			AdvanceNoticeHours: a.Settings.AdvanceNoticeHours,
			MaxBookingsPerDay:  a.Settings.MaxBookingsPerDay,
			BufferMinutes:      a.Settings.BufferMinutes,
		},
	}

	if resp.AvailableDates == nil {
		resp.AvailableDates = []string{}
	}

	if !a.UpdatedAt.IsZero() {
		updatedAt := a.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
