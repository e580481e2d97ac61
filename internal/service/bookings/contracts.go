package bookings

import (
	"context"
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	GetBookedDates(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// SheetsClient интерфейс клиента релея таблицы бронирований
type SheetsClient interface {
	FetchBookedDatesWithGracefulDegradation(ctx context.Context) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
