package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenslot/LS-BookingService/internal/domain"
	availabilityRepo "github.com/lenslot/LS-BookingService/internal/infra/storage/availability"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByPhotographerWithFilter(_ context.Context, _ domain.PhotographerBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeAvailabilityRepo struct {
	availability *domain.Availability
	err          error
}

func (f *fakeAvailabilityRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*domain.Availability, error) {
	return f.availability, f.err
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func allDaySchedule() domain.WeeklySchedule {
	day := domain.DaySchedule{Start: "09:00", End: "17:00", Available: true}
	return domain.WeeklySchedule{
		Monday: day, Tuesday: day, Wednesday: day, Thursday: day,
		Friday: day, Saturday: day, Sunday: day,
	}
}

func TestExecuteReturnsSlotsForOpenDate(t *testing.T) {
	photographerID := uuid.New()
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC) // Monday

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeAvailabilityRepo{availability: &domain.Availability{
			UserID:         photographerID,
			WorkingHours:   allDaySchedule(),
			AvailableDates: []string{"2025-06-16"},
			Settings:       domain.DefaultBookingSettings(),
		}},
		&fixedTime{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{PhotographerID: photographerID, Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, "9:00 AM", resp.Slots[0].StartTime.String())
	for _, slot := range resp.Slots {
		assert.True(t, slot.Bookable)
	}
}

func TestExecuteDateNotInSet(t *testing.T) {
	photographerID := uuid.New()

	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeAvailabilityRepo{availability: &domain.Availability{
			UserID:         photographerID,
			WorkingHours:   allDaySchedule(),
			AvailableDates: []string{"2025-06-17"},
			Settings:       domain.DefaultBookingSettings(),
		}},
		&fixedTime{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PhotographerID: photographerID,
		Date:           time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecuteNoAvailabilityConfigured(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeAvailabilityRepo{err: availabilityRepo.ErrAvailabilityNotFound},
		&fixedTime{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PhotographerID: uuid.New(),
		Date:           time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecutePastDate(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeAvailabilityRepo{availability: &domain.Availability{
			WorkingHours:   allDaySchedule(),
			AvailableDates: []string{"2025-06-10"},
			Settings:       domain.DefaultBookingSettings(),
		}},
		&fixedTime{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		PhotographerID: uuid.New(),
		Date:           time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecuteAnnotatesBookedSlots(t *testing.T) {
	photographerID := uuid.New()
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{
			{PhotographerID: photographerID, StartTime: "2:00 PM", Status: domain.StatusConfirmed},
		}},
		&fakeAvailabilityRepo{availability: &domain.Availability{
			UserID:         photographerID,
			WorkingHours:   allDaySchedule(),
			AvailableDates: []string{"2025-06-16"},
			Settings:       domain.BookingSettings{AdvanceNoticeHours: 48, MaxBookingsPerDay: 5, BufferMinutes: 60},
		}},
		&fixedTime{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{PhotographerID: photographerID, Date: date})
	require.NoError(t, err)

	byStart := make(map[string]bool, len(resp.Slots))
	for _, s := range resp.Slots {
		byStart[s.StartTime.String()] = s.Bookable
	}

	assert.False(t, byStart["2:00 PM"])
	assert.False(t, byStart["2:30 PM"])
	assert.True(t, byStart["3:00 PM"])
	assert.True(t, byStart["9:00 AM"])
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, &fixedTime{now: time.Now()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
