package get_available_slots

import (
	"context"
	"fmt"

	"github.com/godivinity-atl/GOD-BookingService/internal/catalog"
	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	"github.com/godivinity-atl/GOD-BookingService/internal/schedule"
)

// UseCase use case получения слотов и доступности даты для календаря
type UseCase struct {
	blockedDates BlockedDatesProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(blockedDates BlockedDatesProvider, logger Logger) *UseCase {
	return &UseCase{
		blockedDates: blockedDates,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Недоступная дата — не ошибка: ответ с Selectable=false и пустым списком
// слотов (состояние "no slots available" в календаре).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: program=%s, date=%s",
		req.ProgramID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Программа должна входить в закрытый каталог
	program, err := catalog.Get(req.ProgramID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: program %q not found", req.ProgramID)
		return nil, ErrProgramNotFound
	}

	// 3. Дата должна попадать в рабочий год
	if err := validateBookingYear(req.Date); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем текущее время
	now := uc.timeProvider.Now()

	// 5. Получаем объединённое множество занятых дат
	blocked, err := uc.blockedDates.GetBlockedDates(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	// 6. Предикат доступности решает, открывается ли дата вообще
	if !schedule.IsDateSelectable(req.ProgramID, req.Date, now, blocked) {
		uc.logger.Info("GetAvailableSlots: date %s not selectable for program=%s",
			req.Date.Format(domain.DateFormat), req.ProgramID)
		return &Response{
			ProgramID:   req.ProgramID,
			ProgramName: program.Name,
			Date:        req.Date,
			Selectable:  false,
			Slots:       []domain.TimeSlot{},
		}, nil
	}

	// 7. Генерируем слоты на дату
	slots := schedule.GenerateSlots(req.ProgramID, req.Date)

	uc.logger.Info("GetAvailableSlots: generated %d slots for program=%s, date=%s",
		len(slots), req.ProgramID, req.Date.Format(domain.DateFormat))

	return &Response{
		ProgramID:   req.ProgramID,
		ProgramName: program.Name,
		Date:        req.Date,
		Selectable:  true,
		Slots:       slots,
	}, nil
}
