package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	PhotographerID uuid.UUID // ID фотографа
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	PhotographerID uuid.UUID // ID фотографа
	Date           time.Time // Дата, на которую запрашивались слоты
	Slots          []Slot    // Список слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime types.ClockTime // Время начала, 12-часовой формат ("9:00 AM")
	EndTime   types.ClockTime // Время конца слота
	Bookable  bool            // Свободен ли слот с учетом лимита дня и буфера
}
