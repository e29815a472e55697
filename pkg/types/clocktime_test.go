package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "morning", input: "9:00 AM"},
		{name: "afternoon", input: "2:30 PM"},
		{name: "midnight", input: "12:00 AM"},
		{name: "noon", input: "12:00 PM"},
		{name: "24-hour format rejected", input: "14:30", wantErr: true},
		{name: "missing meridiem", input: "9:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not a time", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestClockTimeMinutes(t *testing.T) {
	tests := []struct {
		input ClockTime
		want  int
	}{
		{input: "12:00 AM", want: 0},
		{input: "9:00 AM", want: 540},
		{input: "12:00 PM", want: 720},
		{input: "2:30 PM", want: 870},
		{input: "11:59 PM", want: 1439},
	}

	for _, tt := range tests {
		got, err := tt.input.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "minutes for %s", tt.input)
	}

	_, err := ClockTime("25:00").Minutes()
	assert.ErrorIs(t, err, ErrInvalidClockTime)
}

func TestClockTimeFromMinutes(t *testing.T) {
	assert.Equal(t, ClockTime("12:00 AM"), ClockTimeFromMinutes(0))
	assert.Equal(t, ClockTime("9:00 AM"), ClockTimeFromMinutes(540))
	assert.Equal(t, ClockTime("12:30 PM"), ClockTimeFromMinutes(750))
	assert.Equal(t, ClockTime("11:30 PM"), ClockTimeFromMinutes(1410))

	// Переполнение суток заворачивается
	assert.Equal(t, ClockTime("12:30 AM"), ClockTimeFromMinutes(24*60+30))
}

func TestClockTimeAddMinutes(t *testing.T) {
	start := ClockTime("9:00 AM")

	end, err := start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, ClockTime("9:30 AM"), end)

	end, err = start.AddMinutes(240)
	require.NoError(t, err)
	assert.Equal(t, ClockTime("1:00 PM"), end)

	// Через полночь
	end, err = ClockTime("11:45 PM").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, ClockTime("12:15 AM"), end)
}

func TestClockTimeComparisons(t *testing.T) {
	assert.True(t, ClockTime("9:00 AM").IsBefore("2:00 PM"))
	assert.False(t, ClockTime("2:00 PM").IsBefore("9:00 AM"))
	assert.False(t, ClockTime("9:00 AM").IsBefore("9:00 AM"))

	assert.True(t, ClockTime("2:00 PM").IsAfter("9:00 AM"))
	assert.False(t, ClockTime("9:00 AM").IsAfter("2:00 PM"))

	// Некорректные значения несравнимы
	assert.False(t, ClockTime("bad").IsBefore("9:00 AM"))
	assert.False(t, ClockTime("9:00 AM").IsAfter("bad"))
}

func TestMinutesBetween(t *testing.T) {
	diff, err := MinutesBetween("2:00 PM", "2:30 PM")
	require.NoError(t, err)
	assert.Equal(t, 30, diff)

	// Симметричность
	diff, err = MinutesBetween("2:30 PM", "2:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 30, diff)

	diff, err = MinutesBetween("9:00 AM", "9:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 0, diff)

	_, err = MinutesBetween("bad", "9:00 AM")
	assert.ErrorIs(t, err, ErrInvalidClockTime)
}
