package get_available_slots

import (
	"fmt"
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProgramID == "" {
		return fmt.Errorf("%w: programID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateBookingYear проверяет, что дата попадает в рабочий год виджета.
// Календарь обслуживает ровно один год, прошлое и будущее за его
// пределами не бронируются.
func validateBookingYear(date time.Time) error {
	if date.Year() != domain.BookingYear {
		return fmt.Errorf("%w: bookings are open for %d only", ErrOutsideBookingYear, domain.BookingYear)
	}
	return nil
}
