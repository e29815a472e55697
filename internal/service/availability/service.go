package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
	availabilityRepo "github.com/lenslot/LS-BookingService/internal/infra/storage/availability"
	"github.com/lenslot/LS-BookingService/internal/service/availability/models"
)

// Service сервис для работы с доступностью фотографов
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Get получает доступность фотографа
// Если фотограф ещё ничего не сохранял, возвращает шаблон по умолчанию
// с пустым списком открытых дат
func (s *Service) Get(ctx context.Context, photographerID uuid.UUID) (*models.AvailabilityResponse, error) {
	s.logger.Info("Get: fetching availability for photographer=%s", photographerID)

	availability, err := s.availabilityRepo.GetByUserID(ctx, photographerID)
	if err != nil {
		if !errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Error("Get: repository error for photographer=%s: %v", photographerID, err)
			return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
		}

		availability = &domain.Availability{
			UserID:         photographerID,
			WorkingHours:   domain.DefaultWeeklySchedule(),
			AvailableDates: []string{},
			Settings:       domain.DefaultBookingSettings(),
		}
	}

	s.logger.Info("Get: successfully fetched availability for photographer=%s, dates=%d",
		photographerID, len(availability.AvailableDates))
	return models.FromDomainAvailability(availability), nil
}

// Update сохраняет доступность фотографа (замена всей записи)
// Доступно только самому фотографу
func (s *Service) Update(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Update: saving availability for photographer=%s, dates=%d",
		req.PhotographerID, len(req.AvailableDates))

	if req.RequesterID != req.PhotographerID {
		s.logger.Warn("Update: access denied for requester=%s to photographer=%s availability",
			req.RequesterID, req.PhotographerID)
		return nil, ErrAccessDenied
	}

	availability := req.ToDomain()

	if err := s.validate(availability); err != nil {
		s.logger.Warn("Update: validation failed for photographer=%s: %v", req.PhotographerID, err)
		return nil, err
	}

	saved, err := s.availabilityRepo.Upsert(ctx, availability)
	if err != nil {
		s.logger.Error("Update: repository error for photographer=%s: %v", req.PhotographerID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully saved availability for photographer=%s", req.PhotographerID)
	return models.FromDomainAvailability(saved), nil
}

// Валидация

func (s *Service) validate(a *domain.Availability) error {
	if err := validateSchedule(a.WorkingHours); err != nil {
		return err
	}

	if err := validateSettings(a.Settings); err != nil {
		return err
	}

	return validateDates(a.AvailableDates, a.WorkingHours)
}

// validateSchedule проверяет каждый день недельного шаблона: для доступного
// дня часы обязаны парситься и начало должно предшествовать концу
func validateSchedule(schedule domain.WeeklySchedule) error {
	days := map[string]domain.DaySchedule{
		"monday":    schedule.Monday,
		"tuesday":   schedule.Tuesday,
		"wednesday": schedule.Wednesday,
		"thursday":  schedule.Thursday,
		"friday":    schedule.Friday,
		"saturday":  schedule.Saturday,
		"sunday":    schedule.Sunday,
	}

	for name, day := range days {
		if !day.Available {
			continue
		}

		start, err := time.Parse(domain.ScheduleTimeFormat, day.Start)
		if err != nil {
			return fmt.Errorf("%w: %s has invalid start %q", ErrInvalidSchedule, name, day.Start)
		}

		end, err := time.Parse(domain.ScheduleTimeFormat, day.End)
		if err != nil {
			return fmt.Errorf("%w: %s has invalid end %q", ErrInvalidSchedule, name, day.End)
		}

		if !start.Before(end) {
			return fmt.Errorf("%w: %s start must be before end", ErrInvalidSchedule, name)
		}
	}

	return nil
}

func validateSettings(settings domain.BookingSettings) error {
	if settings.AdvanceNoticeHours < 0 || settings.AdvanceNoticeHours > domain.MaxAdvanceNoticeHours {
		return fmt.Errorf("%w: advanceNoticeHours must be between 0 and %d",
			ErrInvalidSettings, domain.MaxAdvanceNoticeHours)
	}

	if settings.MaxBookingsPerDay < 1 || settings.MaxBookingsPerDay > domain.MaxMaxBookingsPerDay {
		return fmt.Errorf("%w: maxBookingsPerDay must be between 1 and %d",
			ErrInvalidSettings, domain.MaxMaxBookingsPerDay)
	}

	if settings.BufferMinutes < 0 || settings.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes must be between 0 and %d",
			ErrInvalidSettings, domain.MaxBufferMinutes)
	}

	return nil
}

// validateDates проверяет формат дат, отсутствие дубликатов и что каждая
// открытая дата попадает на доступный по расписанию день недели
func validateDates(dates []string, schedule domain.WeeklySchedule) error {
	seen := make(map[string]struct{}, len(dates))

	for _, d := range dates {
		parsed, err := time.Parse(domain.DateFormat, d)
		if err != nil {
			return fmt.Errorf("%w: %q is not a valid date", ErrInvalidDate, d)
		}

		if _, ok := seen[d]; ok {
			return fmt.Errorf("%w: %q appears more than once", ErrInvalidDate, d)
		}
		seen[d] = struct{}{}

		if !schedule.ForWeekday(parsed.Weekday()).Available {
			return fmt.Errorf("%w: %s", ErrDateOutsideSchedule, d)
		}
	}

	return nil
}
