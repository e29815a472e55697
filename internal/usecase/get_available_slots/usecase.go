package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/lenslot/LS-BookingService/internal/domain"
	availabilityRepo "github.com/lenslot/LS-BookingService/internal/infra/storage/availability"
)

// UseCase use case для получения доступных слотов фотографа на дату
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов.
// Недоступная дата (нет в списке, прошлое, выходной, нет записи availability)
// дает пустой список слотов, а не ошибку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: photographer=%s, date=%s",
		req.PhotographerID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	emptyResponse := &Response{
		PhotographerID: req.PhotographerID,
		Date:           req.Date,
		Slots:          []Slot{},
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Прошедшие даты не бронируются
	if isDateInPast(req.Date, now) {
		return emptyResponse, nil
	}

	// 4. Получаем запись availability фотографа
	availability, err := uc.availabilityRepo.GetByUserID(ctx, req.PhotographerID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			// Фотограф не настроил доступность — слотов нет
			uc.logger.Info("GetAvailableSlots: no availability configured for photographer=%s", req.PhotographerID)
			return emptyResponse, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get availability: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 5. Дата должна быть явно открыта фотографом
	if !availability.IsDateBookable(req.Date) {
		return emptyResponse, nil
	}

	// 6. Генерируем слоты по расписанию на день недели
	daySlots := generateSlots(availability.WorkingHours.ForWeekday(req.Date.Weekday()))
	if len(daySlots) == 0 {
		return emptyResponse, nil
	}

	// 7. Получаем бронирования на эту дату
	filter := domain.PhotographerBookingsFilter{
		PhotographerID:  req.PhotographerID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetByPhotographerWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Размечаем занятость с учетом лимита дня и буфера
	slots := annotateSlots(daySlots, bookings, availability.Settings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for photographer=%s, date=%s",
		len(slots), req.PhotographerID, req.Date.Format(domain.DateFormat))

	return &Response{
		PhotographerID: req.PhotographerID,
		Date:           req.Date,
		Slots:          slots,
	}, nil
}
