package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PhotographerID == uuid.Nil {
		return fmt.Errorf("%w: photographerID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
