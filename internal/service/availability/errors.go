package availability

import "errors"

var (
	// ErrAccessDenied возвращается, когда пользователь меняет чужую доступность
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidSchedule возвращается при некорректном расписании рабочих часов
	ErrInvalidSchedule = errors.New("invalid weekly schedule")

	// ErrInvalidSettings возвращается при настройках вне допустимых границ
	ErrInvalidSettings = errors.New("invalid booking settings")

	// ErrInvalidDate возвращается при некорректной дате в списке доступных
	ErrInvalidDate = errors.New("invalid available date")

	// ErrDateOutsideSchedule возвращается, когда открытая дата попадает на
	// недоступный по расписанию день недели
	ErrDateOutsideSchedule = errors.New("date falls on an unavailable weekday")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
