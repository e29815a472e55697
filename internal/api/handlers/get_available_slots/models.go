package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
	getAvailableSlots "github.com/lenslot/LS-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "9:00 AM"
	EndTime   string `json:"endTime"`   // "9:30 AM"
	Bookable  bool   `json:"bookable"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	PhotographerID uuid.UUID      `json:"photographerId"`
	Date           string         `json:"date"`
	Slots          []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: string(slot.StartTime),
			EndTime:   string(slot.EndTime),
			Bookable:  slot.Bookable,
		}
	}

	return &AvailableSlotsResponse{
		PhotographerID: resp.PhotographerID,
		Date:           resp.Date.Format(domain.DateFormat),
		Slots:          slots,
	}
}
