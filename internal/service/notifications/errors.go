package notifications

import "errors"

var (
	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrAccessDenied возвращается при доступе к чужому уведомлению
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
