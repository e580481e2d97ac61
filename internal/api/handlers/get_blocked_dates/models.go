package get_blocked_dates

import "github.com/godivinity-atl/GOD-BookingService/internal/domain"

// BlockedDatesResponse HTTP модель множества занятых дат
type BlockedDatesResponse struct {
	Dates []string `json:"dates"`
}

// FromDomain конвертирует множество занятых дат в HTTP response
func FromDomain(blocked domain.BlockedDates) *BlockedDatesResponse {
	return &BlockedDatesResponse{Dates: blocked.Strings()}
}
