package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenslot/LS-BookingService/internal/domain"
	"github.com/lenslot/LS-BookingService/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		PhotographerID: uuid.New(),
		ClientID:       uuid.New(),
		Date:           time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		StartTime:      "2:00 PM",
		Location:       "Central Park",
		ShootType:      "portrait",
	}
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing photographer", mutate: func(r *Request) { r.PhotographerID = uuid.Nil }},
		{name: "missing client", mutate: func(r *Request) { r.ClientID = uuid.Nil }},
		{name: "self booking", mutate: func(r *Request) { r.ClientID = r.PhotographerID }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "missing start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "bad start time", mutate: func(r *Request) { r.StartTime = "14:00" }},
		{name: "missing location", mutate: func(r *Request) { r.Location = "" }},
		{name: "location too long", mutate: func(r *Request) { r.Location = strings.Repeat("x", domain.MaxLocationLength+1) }},
		{name: "missing shoot type", mutate: func(r *Request) { r.ShootType = "" }},
		{name: "notes too long", mutate: func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}

func TestValidateAdvanceNotice(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// Jan 2 10:00 AM — всего 34 часа: отклоняется при 48-часовом пороге
	err := validateAdvanceNotice(
		time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), "10:00 AM", now, 48)
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// Jan 5 — с запасом
	err = validateAdvanceNotice(
		time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "10:00 AM", now, 48)
	assert.NoError(t, err)

	// Ровно 48 часов — граница допустима
	err = validateAdvanceNotice(
		time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), "12:00 AM", now, 48)
	assert.NoError(t, err)

	// Нулевой порог: любая будущая сессия проходит
	err = validateAdvanceNotice(
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "12:30 AM", now, 0)
	assert.NoError(t, err)
}

func TestCountActiveForDay(t *testing.T) {
	bookings := []*domain.Booking{
		{Status: domain.StatusPending},
		{Status: domain.StatusConfirmed},
		{Status: domain.StatusCompleted},
		{Status: domain.StatusCancelled},
	}

	// Отмененные не занимают слот
	assert.Equal(t, 3, countActiveForDay(bookings))
	assert.Equal(t, 0, countActiveForDay(nil))
}

func TestFindBufferConflict(t *testing.T) {
	existing := []*domain.Booking{
		{ID: 1, StartTime: "2:00 PM", Status: domain.StatusConfirmed},
	}

	// Ближе часа — конфликт
	conflict := findBufferConflict("2:30 PM", 60, existing)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(1), conflict.ID)

	conflict = findBufferConflict("1:30 PM", 60, existing)
	require.NotNil(t, conflict)

	// Ровно буфер — не конфликт
	assert.Nil(t, findBufferConflict("3:00 PM", 60, existing))
	assert.Nil(t, findBufferConflict("1:00 PM", 60, existing))

	// Отмененные игнорируются
	cancelled := []*domain.Booking{
		{StartTime: "2:00 PM", Status: domain.StatusCancelled},
	}
	assert.Nil(t, findBufferConflict("2:00 PM", 60, cancelled))

	// Нечитаемое время пропускается
	unparseable := []*domain.Booking{
		{StartTime: "garbage", Status: domain.StatusConfirmed},
	}
	assert.Nil(t, findBufferConflict("2:00 PM", 60, unparseable))
}
