package get_available_slots

import "errors"

var (
	// ErrProgramNotFound возвращается, когда программа не входит в каталог
	ErrProgramNotFound = errors.New("get_available_slots: program not found")

	// ErrOutsideBookingYear возвращается, когда дата вне рабочего года виджета
	ErrOutsideBookingYear = errors.New("get_available_slots: date is outside the booking year")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
