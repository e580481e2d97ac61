package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	"github.com/godivinity-atl/GOD-BookingService/internal/infra/storage/booking"
	"github.com/godivinity-atl/GOD-BookingService/internal/integrations/sheets"
)

// Service сервис чтения бронирований: объединённое множество занятых дат
// и просмотр локального журнала
type Service struct {
	bookingRepo  BookingRepository
	sheetsClient SheetsClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(bookingRepo BookingRepository, sheetsClient SheetsClient, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		sheetsClient: sheetsClient,
		logger:       logger,
	}
}

// GetBlockedDates возвращает объединённое множество занятых дат:
// удалённая таблица (авторитетная, eventually consistent) плюс локальный
// журнал (моментальный, покрывает окно репликации).
//
// Недоступность релея — fail-open: календарь продолжает работать на
// данных журнала, повторная проверка при создании брони всё равно
// перечитает таблицу.
func (s *Service) GetBlockedDates(ctx context.Context) (domain.BlockedDates, error) {
	remote, err := s.sheetsClient.FetchBookedDatesWithGracefulDegradation(ctx)
	if err != nil {
		if !errors.Is(err, sheets.ErrServiceDegraded) {
			return nil, fmt.Errorf("%w: failed to fetch remote booked dates: %v", ErrInternal, err)
		}
		s.logger.Warn("GetBlockedDates: relay degraded, continuing with local journal only")
		remote = nil
	}

	local, err := s.bookingRepo.GetBookedDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get local booked dates: %v", ErrInternal, err)
	}

	merged := domain.NewBlockedDates(remote).Merge(domain.NewBlockedDates(local))

	s.logger.Info("GetBlockedDates: remote=%d, local=%d, merged=%d", len(remote), len(local), len(merged))
	return merged, nil
}

// GetBooking возвращает запись журнала по ID
func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	result, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	return result, nil
}

// ListBookings возвращает записи журнала за период
func (s *Service) ListBookings(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, ErrInvalidRange
	}

	result, err := s.bookingRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListBookings: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	return result, nil
}
