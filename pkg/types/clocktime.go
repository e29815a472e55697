package types

import (
	"errors"
	"fmt"
	"time"
)

// ClockFormat формат времени слотов и бронирований (12-часовой, как хранится в БД)
const ClockFormat = "3:04 PM"

var ErrInvalidClockTime = errors.New("types: invalid clock time string")

// ClockTime время суток в 12-часовом строковом формате ("9:00 AM", "2:30 PM").
// Формат унаследован от существующих данных в таблице bookings, поэтому тип
// хранит строку как есть и парсит её только для сравнений и арифметики.
type ClockTime string

// NewClockTime создает ClockTime из time.Time
func NewClockTime(t time.Time) ClockTime {
	return ClockTime(t.Format(ClockFormat))
}

// ParseClockTime создает ClockTime из строки с валидацией формата
func ParseClockTime(s string) (ClockTime, error) {
	if _, err := time.Parse(ClockFormat, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return ClockTime(s), nil
}

// ClockTimeFromMinutes создает ClockTime из количества минут с начала суток
func ClockTimeFromMinutes(m int) ClockTime {
	m = ((m % (24 * 60)) + 24*60) % (24 * 60)
	t := time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC)
	return ClockTime(t.Format(ClockFormat))
}

// String возвращает строковое представление
func (c ClockTime) String() string {
	return string(c)
}

// IsZero возвращает true для пустого значения
func (c ClockTime) IsZero() bool {
	return c == ""
}

// Validate проверяет корректность формата
func (c ClockTime) Validate() error {
	_, err := ParseClockTime(string(c))
	return err
}

// Minutes возвращает количество минут с начала суток
func (c ClockTime) Minutes() (int, error) {
	t, err := time.Parse(ClockFormat, string(c))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, string(c))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes возвращает новое время, сдвинутое на m минут вперед
func (c ClockTime) AddMinutes(m int) (ClockTime, error) {
	minutes, err := c.Minutes()
	if err != nil {
		return "", err
	}
	return ClockTimeFromMinutes(minutes + m), nil
}

// IsBefore возвращает true, если время строго раньше other.
// Некорректные значения считаются несравнимыми и дают false.
func (c ClockTime) IsBefore(other ClockTime) bool {
	a, err := c.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если время строго позже other
func (c ClockTime) IsAfter(other ClockTime) bool {
	a, err := c.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}

// MinutesBetween возвращает абсолютную разницу в минутах между двумя значениями
func MinutesBetween(a, b ClockTime) (int, error) {
	am, err := a.Minutes()
	if err != nil {
		return 0, err
	}
	bm, err := b.Minutes()
	if err != nil {
		return 0, err
	}
	diff := am - bm
	if diff < 0 {
		diff = -diff
	}
	return diff, nil
}
