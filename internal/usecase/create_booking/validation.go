package create_booking

import (
	"fmt"
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Тонкие проверки полей формы (формат email, телефона) уже сделаны на
// HTTP границе; здесь только обязательность и предельные длины.
func validateRequest(req *Request) error {
	if req.ProgramID == "" {
		return fmt.Errorf("%w: programID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if req.HostName == "" || req.HostEmail == "" || req.HostPhone == "" {
		return fmt.Errorf("%w: host contact fields are required", ErrInvalidInput)
	}

	if req.Street == "" || req.City == "" || req.State == "" || req.ZipCode == "" {
		return fmt.Errorf("%w: host address fields are required", ErrInvalidInput)
	}

	if len(req.HostName) > domain.MaxNameLength {
		return fmt.Errorf("%w: hostName is too long", ErrInvalidInput)
	}

	// Адрес уходит в таблицу одной склеенной колонкой, лимит общий
	if len(req.Street)+len(req.City)+len(req.State)+len(req.ZipCode) > domain.MaxAddressLength {
		return fmt.Errorf("%w: host address is too long", ErrInvalidInput)
	}

	if req.Occasion != nil && len(*req.Occasion) > domain.MaxOccasionLength {
		return fmt.Errorf("%w: occasion is too long", ErrInvalidInput)
	}

	if req.AdditionalNotes != nil && len(*req.AdditionalNotes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: additionalNotes is too long", ErrInvalidInput)
	}

	return nil
}

// validateBookingYear проверяет, что дата попадает в рабочий год виджета
func validateBookingYear(date time.Time) error {
	if date.Year() != domain.BookingYear {
		return fmt.Errorf("%w: bookings are open for %d only", ErrOutsideBookingYear, domain.BookingYear)
	}
	return nil
}

// validateNotPast проверяет, что дата не в прошлом.
// Сегодняшний день допустим: сравниваются календарные дни, не время суток.
func validateNotPast(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
