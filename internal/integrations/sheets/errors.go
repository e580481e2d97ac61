package sheets

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sheets client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе релея
	ErrInvalidResponse = errors.New("sheets client: invalid response")

	// ErrSubmitFailed возвращается, когда релей не принял запись брони
	ErrSubmitFailed = errors.New("sheets client: submit failed")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что релей недоступен и список занятых дат считается пустым
	ErrServiceDegraded = errors.New("sheets relay unavailable: graceful degradation applied")
)
