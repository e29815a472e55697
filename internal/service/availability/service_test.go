package availability

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenslot/LS-BookingService/internal/domain"
	availabilityRepo "github.com/lenslot/LS-BookingService/internal/infra/storage/availability"
	"github.com/lenslot/LS-BookingService/internal/service/availability/models"
)

type fakeAvailabilityRepo struct {
	stored *domain.Availability
	getErr error
}

func (f *fakeAvailabilityRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*domain.Availability, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeAvailabilityRepo) Upsert(_ context.Context, a *domain.Availability) (*domain.Availability, error) {
	f.stored = a
	return a, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpdateRequest(photographerID uuid.UUID) *models.UpdateAvailabilityRequest {
	return &models.UpdateAvailabilityRequest{
		PhotographerID: photographerID,
		RequesterID:    photographerID,
		WorkingHours:   domain.DefaultWeeklySchedule(),
		AvailableDates: []string{"2025-06-16", "2025-06-17"}, // Monday, Tuesday
		Settings: models.SettingsDTO{
			AdvanceNoticeHours: 48,
			MaxBookingsPerDay:  2,
			BufferMinutes:      60,
		},
	}
}

func TestGetReturnsDefaultsWhenMissing(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{getErr: availabilityRepo.ErrAvailabilityNotFound}, nopLogger{})

	resp, err := svc.Get(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Empty(t, resp.AvailableDates)
	assert.Equal(t, 48, resp.Settings.AdvanceNoticeHours)
	assert.Equal(t, 2, resp.Settings.MaxBookingsPerDay)
	assert.Equal(t, 60, resp.Settings.BufferMinutes)
	assert.True(t, resp.WorkingHours.Monday.Available)
	assert.False(t, resp.WorkingHours.Sunday.Available)
	assert.Nil(t, resp.UpdatedAt)
}

func TestUpdateStoresAvailability(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, nopLogger{})
	photographerID := uuid.New()

	resp, err := svc.Update(context.Background(), validUpdateRequest(photographerID))
	require.NoError(t, err)

	assert.Equal(t, photographerID, resp.UserID)
	assert.Equal(t, []string{"2025-06-16", "2025-06-17"}, resp.AvailableDates)
	require.NotNil(t, repo.stored)
	assert.Equal(t, photographerID, repo.stored.UserID)
}

func TestUpdateAccessDenied(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, nopLogger{})

	req := validUpdateRequest(uuid.New())
	req.RequesterID = uuid.New()

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateScheduleValidation(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, nopLogger{})
	photographerID := uuid.New()

	// start >= end на доступном дне
	req := validUpdateRequest(photographerID)
	req.WorkingHours.Monday = domain.DaySchedule{Start: "17:00", End: "09:00", Available: true}
	req.AvailableDates = nil
	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	// Нечитаемое время
	req = validUpdateRequest(photographerID)
	req.WorkingHours.Tuesday = domain.DaySchedule{Start: "morning", End: "17:00", Available: true}
	req.AvailableDates = nil
	_, err = svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	// Недоступный день с мусорными часами допустим — часы не проверяются
	req = validUpdateRequest(photographerID)
	req.WorkingHours.Sunday = domain.DaySchedule{Start: "", End: "", Available: false}
	req.AvailableDates = nil
	_, err = svc.Update(context.Background(), req)
	assert.NoError(t, err)
}

func TestUpdateSettingsValidation(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, nopLogger{})
	photographerID := uuid.New()

	tests := []struct {
		name   string
		mutate func(*models.SettingsDTO)
	}{
		{name: "negative advance notice", mutate: func(s *models.SettingsDTO) { s.AdvanceNoticeHours = -1 }},
		{name: "advance notice above cap", mutate: func(s *models.SettingsDTO) { s.AdvanceNoticeHours = domain.MaxAdvanceNoticeHours + 1 }},
		{name: "zero daily limit", mutate: func(s *models.SettingsDTO) { s.MaxBookingsPerDay = 0 }},
		{name: "negative buffer", mutate: func(s *models.SettingsDTO) { s.BufferMinutes = -5 }},
		{name: "buffer above cap", mutate: func(s *models.SettingsDTO) { s.BufferMinutes = domain.MaxBufferMinutes + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdateRequest(photographerID)
			tt.mutate(&req.Settings)
			_, err := svc.Update(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestUpdateDatesValidation(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, nopLogger{})
	photographerID := uuid.New()

	// Некорректный формат
	req := validUpdateRequest(photographerID)
	req.AvailableDates = []string{"16-06-2025"}
	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Дубликат
	req = validUpdateRequest(photographerID)
	req.AvailableDates = []string{"2025-06-16", "2025-06-16"}
	_, err = svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	// Дата на недоступный по расписанию день (воскресенье)
	req = validUpdateRequest(photographerID)
	req.AvailableDates = []string{"2025-06-15"}
	_, err = svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateOutsideSchedule)
}
