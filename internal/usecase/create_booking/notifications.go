package create_booking

import (
	"fmt"

	"github.com/lenslot/LS-BookingService/internal/domain"
)

// Человекочитаемый формат даты в текстах уведомлений
const noticeDateFormat = "January 2, 2006"

// buildPhotographerNotification уведомление фотографу о новом запросе
func buildPhotographerNotification(req *Request, clientName string) domain.Notification {
	from := "a client"
	if clientName != "" {
		from = clientName
	}

	return domain.Notification{
		UserID: req.PhotographerID,
		Type:   domain.NotificationBookingRequest,
		Title:  "New Booking Request",
		Message: fmt.Sprintf("You have received a new booking request from %s for %s at %s.",
			from, req.Date.Format(noticeDateFormat), req.StartTime),
		Read: false,
	}
}

// buildClientNotification уведомление клиенту об отправленном запросе
func buildClientNotification(req *Request, photographerName string) domain.Notification {
	to := "the photographer"
	if photographerName != "" {
		to = photographerName
	}

	return domain.Notification{
		UserID: req.ClientID,
		Type:   domain.NotificationBookingSubmitted,
		Title:  "Booking Request Sent",
		Message: fmt.Sprintf("Your booking request to %s for %s at %s has been sent.",
			to, req.Date.Format(noticeDateFormat), req.StartTime),
		Read: false,
	}
}
