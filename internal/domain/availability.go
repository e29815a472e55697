package domain

import (
	"time"

	"github.com/google/uuid"
)

// DaySchedule working hours for a single weekday.
// Start and End are stored as 24-hour "HH:MM" strings inside the
// working_hours JSON document, exactly as the dashboard saves them.
type DaySchedule struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// WeeklySchedule recurring weekly working-hours template of a photographer
type WeeklySchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForWeekday returns the day entry for the given weekday
func (s WeeklySchedule) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	default:
		return DaySchedule{Available: false}
	}
}

// DefaultWeeklySchedule returns the schedule shown to a photographer who
// has not saved working hours yet: weekdays 09:00-17:00, Saturday
// 10:00-15:00, Sunday off
func DefaultWeeklySchedule() WeeklySchedule {
	weekday := DaySchedule{Start: "09:00", End: "17:00", Available: true}
	weekend := DaySchedule{Start: "10:00", End: "15:00", Available: true}

	return WeeklySchedule{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  weekend,
		Sunday:    DaySchedule{Start: "10:00", End: "15:00", Available: false},
	}
}

// BookingSettings booking constraints configured by the photographer
type BookingSettings struct {
	AdvanceNoticeHours int // Минимальное время до сессии в часах
	MaxBookingsPerDay  int // Максимум бронирований в день
	BufferMinutes      int // Минимальный интервал между бронированиями
}

// DefaultBookingSettings returns the settings applied before a photographer
// has configured anything
func DefaultBookingSettings() BookingSettings {
	return BookingSettings{
		AdvanceNoticeHours: DefaultAdvanceNoticeHours,
		MaxBookingsPerDay:  DefaultMaxBookingsPerDay,
		BufferMinutes:      DefaultBufferMinutes,
	}
}

// Availability the full availability record of a photographer:
// weekly template, explicit opt-in dates and booking settings.
// Persisted as a single row per photographer (replace-on-save).
type Availability struct {
	UserID         uuid.UUID
	WorkingHours   WeeklySchedule
	AvailableDates []string // ISO даты YYYY-MM-DD, без дубликатов
	Settings       BookingSettings
	UpdatedAt      time.Time
}

// IsDateBookable returns true iff the date, normalized to YYYY-MM-DD using
// its own calendar day, is a member of the available-date set.
// An empty set makes every date unbookable.
func (a *Availability) IsDateBookable(date time.Time) bool {
	normalized := date.Format(DateFormat)
	for _, d := range a.AvailableDates {
		if d == normalized {
			return true
		}
	}
	return false
}
