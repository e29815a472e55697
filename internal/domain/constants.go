package domain

// Default booking settings, matching what the dashboard pre-fills
// for a photographer who has not saved availability yet
const (
	DefaultAdvanceNoticeHours = 48
	DefaultMaxBookingsPerDay  = 2
	DefaultBufferMinutes      = 60
)

// Business validation constants
const (
	MinAdvanceNoticeHours = 0
	MaxAdvanceNoticeHours = 720 // 30 days
	MinMaxBookingsPerDay  = 1
	MaxMaxBookingsPerDay  = 24
	MinBufferMinutes      = 0
	MaxBufferMinutes      = 480 // 8 hours

	MaxLocationLength           = 200
	MaxShootTypeLength          = 100
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// SlotStepMinutes шаг генерации слотов
const SlotStepMinutes = 30

// Time format constants
const (
	DateFormat         = "2006-01-02" // YYYY-MM-DD
	ScheduleTimeFormat = "15:04"      // HH:MM, как в working_hours
)

// InactiveStatuses статусы, не занимающие слот
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses статусы, занимающие слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
