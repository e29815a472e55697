package get_available_slots

import (
	"strconv"
	"strings"
	"time"

	"github.com/lenslot/LS-BookingService/internal/domain"
	"github.com/lenslot/LS-BookingService/pkg/types"
)

// generateSlots генерирует все получасовые слоты дня по расписанию.
//
// Генерация работает с точностью до часа: минутная часть start/end
// отбрасывается. Так делает существующий фронтенд, и серверные слоты
// обязаны совпадать с теми, что он отрисовывает, поэтому поведение
// сохранено намеренно, а не исправлено.
//
// День без флага available, с отсутствующими или некорректными временами,
// с start >= end (включая "ночные" интервалы) дает пустой список —
// неполное расписание трактуется как недоступный день, не как ошибка.
func generateSlots(day domain.DaySchedule) []domain.Slot {
	if !day.Available {
		return []domain.Slot{}
	}

	startHour, err := scheduleHour(day.Start)
	if err != nil {
		return []domain.Slot{}
	}

	endHour, err := scheduleHour(day.End)
	if err != nil {
		return []domain.Slot{}
	}

	slots := make([]domain.Slot, 0)

	for m := startHour * 60; m < endHour*60; m += domain.SlotStepMinutes {
		slots = append(slots, domain.Slot{
			StartTime: types.ClockTimeFromMinutes(m),
			EndTime:   types.ClockTimeFromMinutes(m + domain.SlotStepMinutes),
		})
	}

	return slots
}

// scheduleHour извлекает часовую компоненту из времени расписания "HH:MM"
func scheduleHour(s string) (int, error) {
	hourPart, _, _ := strings.Cut(s, ":")

	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return 0, err
	}
	if hour < 0 || hour > 23 {
		return 0, strconv.ErrRange
	}

	return hour, nil
}

// annotateSlots размечает слоты занятостью по существующим бронированиям.
// Если дневной лимит уже выбран, ни один слот не бронируем; иначе слот
// недоступен, когда активное бронирование начинается ближе bufferMinutes
// к началу слота (в любую сторону, строгое неравенство).
func annotateSlots(slots []domain.Slot, bookings []*domain.Booking, settings domain.BookingSettings) []Slot {
	activeCount := 0
	for _, b := range bookings {
		if b.IsActive() {
			activeCount++
		}
	}
	dayFull := activeCount >= settings.MaxBookingsPerDay

	result := make([]Slot, len(slots))
	for i, slot := range slots {
		bookable := !dayFull && !hasBufferConflict(slot.StartTime, settings.BufferMinutes, bookings)
		result[i] = Slot{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Bookable:  bookable,
		}
	}

	return result
}

// hasBufferConflict проверяет, начинается ли активное бронирование ближе
// bufferMinutes к startTime. Бронирования с нечитаемым временем пропускаются.
func hasBufferConflict(startTime types.ClockTime, bufferMinutes int, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		diff, err := types.MinutesBetween(b.StartTime, startTime)
		if err != nil {
			continue
		}

		if diff < bufferMinutes {
			return true
		}
	}

	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
