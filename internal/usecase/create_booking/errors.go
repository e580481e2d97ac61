package create_booking

import "errors"

var (
	// ErrProgramNotFound возвращается, когда программа не входит в каталог
	ErrProgramNotFound = errors.New("create_booking: program not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	// (в прошлом или недопустимый для программы день недели)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrOutsideBookingYear возвращается, когда дата вне рабочего года виджета
	ErrOutsideBookingYear = errors.New("create_booking: date is outside the booking year")

	// ErrDateNotAvailable возвращается, когда день уже занят (любой программой)
	ErrDateNotAvailable = errors.New("create_booking: date is not available")

	// ErrInvalidTimeSlot возвращается, когда запрошенного слота нет среди
	// генерируемых для этой программы и даты
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSubmitFailed возвращается, когда релей не принял запись брони
	ErrSubmitFailed = errors.New("create_booking: failed to submit booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
