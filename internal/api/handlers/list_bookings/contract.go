package list_bookings

import (
	"context"
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

type BookingsService interface {
	ListBookings(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
