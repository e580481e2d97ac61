package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в журнале
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidRange возвращается при некорректном периоде запроса
	ErrInvalidRange = errors.New("bookings.service: invalid date range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
