package get_blocked_dates

import (
	"context"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

type BookingsService interface {
	GetBlockedDates(ctx context.Context) (domain.BlockedDates, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
