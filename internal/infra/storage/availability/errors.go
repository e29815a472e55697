package availability

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда у фотографа нет записи availability
	ErrAvailabilityNotFound = errors.New("availability.repository: availability not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrEncodeSchedule возвращается при ошибке сериализации расписания в JSON
	ErrEncodeSchedule = errors.New("availability.repository: failed to encode working hours")

	// ErrDecodeSchedule возвращается при ошибке разбора JSON расписания из БД
	ErrDecodeSchedule = errors.New("availability.repository: failed to decode working hours")
)
