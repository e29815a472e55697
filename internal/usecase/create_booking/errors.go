package create_booking

import "errors"

var (
	// ErrPhotographerNotFound возвращается, когда фотограф не найден
	ErrPhotographerNotFound = errors.New("create_booking: photographer not found")

	// ErrNotAPhotographer возвращается, когда пользователь не является фотографом
	ErrNotAPhotographer = errors.New("create_booking: user is not a photographer")

	// ErrDateNotAvailable возвращается, когда дата не открыта фотографом для бронирования
	ErrDateNotAvailable = errors.New("create_booking: photographer is not available on this date")

	// ErrTooLateToBook возвращается, когда запрос нарушает advance notice
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrDailyLimitReached возвращается, когда дневной лимит бронирований исчерпан
	ErrDailyLimitReached = errors.New("create_booking: daily booking limit reached")

	// ErrBufferConflict возвращается, когда запрошенное время слишком близко
	// к существующему бронированию
	ErrBufferConflict = errors.New("create_booking: requested time conflicts with another booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
