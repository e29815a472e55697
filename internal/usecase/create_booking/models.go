package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	PhotographerID uuid.UUID       // ID фотографа
	ClientID       uuid.UUID       // ID клиента (из X-User-ID)
	Date           time.Time       // Дата съёмки (без времени)
	StartTime      types.ClockTime // Время начала ("2:00 PM")
	Location       string          // Место съёмки
	ShootType      string          // Тип съёмки
	Notes          *string         // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	PhotographerID uuid.UUID
	ClientID       uuid.UUID
	Date           time.Time
	StartTime      types.ClockTime
	Location       string
	ShootType      string
	Notes          *string
	Status         string

	CreatedAt time.Time
	UpdatedAt time.Time
}
