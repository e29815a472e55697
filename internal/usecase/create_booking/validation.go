package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
	"github.com/lenslot/LS-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PhotographerID == uuid.Nil {
		return fmt.Errorf("%w: photographerID is required", ErrInvalidInput)
	}

	if req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.PhotographerID == req.ClientID {
		return fmt.Errorf("%w: photographer cannot book themselves", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Location == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if len(req.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location exceeds %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	if req.ShootType == "" {
		return fmt.Errorf("%w: shootType is required", ErrInvalidInput)
	}
	if len(req.ShootType) > domain.MaxShootTypeLength {
		return fmt.Errorf("%w: shootType exceeds %d characters", ErrInvalidInput, domain.MaxShootTypeLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateAdvanceNotice проверяет, что до начала сессии не меньше
// advanceNoticeHours часов. Ровно advanceNoticeHours — допустимо.
func validateAdvanceNotice(date time.Time, startTime types.ClockTime, now time.Time, advanceNoticeHours int) error {
	minutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	sessionAt := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		Add(time.Duration(minutes) * time.Minute)

	earliest := now.Add(time.Duration(advanceNoticeHours) * time.Hour)

	if sessionAt.Before(earliest) {
		return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, advanceNoticeHours)
	}

	return nil
}

// countActiveForDay подсчитывает активные бронирования дня.
// Отменённые не занимают слот и в лимит не входят.
func countActiveForDay(bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if b.IsActive() {
			count++
		}
	}
	return count
}

// findBufferConflict ищет активное бронирование, начинающееся ближе
// bufferMinutes к запрошенному времени (в любую сторону).
// Сравнение строгое: ровно bufferMinutes между началами — не конфликт.
func findBufferConflict(startTime types.ClockTime, bufferMinutes int, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		diff, err := types.MinutesBetween(b.StartTime, startTime)
		if err != nil {
			// Если не можем сравнить времена, пропускаем бронирование
			continue
		}

		if diff < bufferMinutes {
			return b
		}
	}

	return nil
}
