package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/godivinity-atl/GOD-BookingService/internal/catalog"
	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	bookingRepo "github.com/godivinity-atl/GOD-BookingService/internal/infra/storage/booking"
	sheetsClient "github.com/godivinity-atl/GOD-BookingService/internal/integrations/sheets"
	"github.com/godivinity-atl/GOD-BookingService/internal/schedule"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	sheetsClient SheetsClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	sheetsClient SheetsClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		sheetsClient: sheetsClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Между показом слота и отправкой формы нет никакой резервации, поэтому
// непосредственно перед фиксацией выполняется повторная проверка:
// заново читается авторитетное множество занятых дат, предикат доступности
// прогоняется ещё раз, и только потом запись уходит в журнал и в релей
// (сериализуемая транзакция и уникальный индекс по дате закрывают гонку
// двух одновременных форм). При отказе релея вставка в журнал
// откатывается, локальных изменений не происходит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: program=%s, date=%s, time=%s",
		req.ProgramID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Программа должна входить в закрытый каталог
	program, err := catalog.Get(req.ProgramID)
	if err != nil {
		uc.logger.Warn("CreateBooking: program %q not found", req.ProgramID)
		return nil, ErrProgramNotFound
	}

	// 3. Дата должна попадать в рабочий год
	if err := validateBookingYear(req.Date); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем текущее время и проверяем, что дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateNotPast(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 5. Запрошенный слот обязан принадлежать множеству, которое генератор
	// выдаёт для этой программы и даты
	slot, ok := schedule.SlotForStart(req.ProgramID, req.Date, req.StartTime, req.DurationMinutes)
	if !ok {
		uc.logger.Warn("CreateBooking: slot %s/%dm not generated for program=%s, date=%s",
			req.StartTime, req.DurationMinutes, req.ProgramID, req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidTimeSlot
	}

	// 6. Повторная проверка перед фиксацией: свежее множество занятых дат
	// из таблицы. Недоступность релея здесь fail-open: локальный журнал
	// всё равно проверяется внутри транзакции.
	remoteDates, err := uc.sheetsClient.FetchBookedDatesWithGracefulDegradation(ctx)
	if err != nil && !errors.Is(err, sheetsClient.ErrServiceDegraded) {
		uc.logger.Error("CreateBooking: failed to re-fetch booked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to re-fetch booked dates: %v", ErrInternal, err)
	}
	remoteBlocked := domain.NewBlockedDates(remoteDates)

	booking := &domain.Booking{
		ProgramID:       req.ProgramID,
		ProgramName:     program.Name,
		BookingDate:     req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		SlotDescription: slot.Describe(),
		HostName:        req.HostName,
		HostEmail:       req.HostEmail,
		HostPhone:       req.HostPhone,
		Street:          req.Street,
		City:            req.City,
		State:           req.State,
		ZipCode:         req.ZipCode,
		Occasion:        req.Occasion,
		AdditionalNotes: req.AdditionalNotes,
	}

	var result *domain.Booking

	// Релей — невосстановимая внешняя запись: транзакцию менеджер может
	// повторить при конфликте сериализации, отправку повторять нельзя
	submitted := false

	// 7. Фиксация в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. День не должен быть занят в локальном журнале (FOR UPDATE)
		exists, err := uc.bookingRepo.ExistsForDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check journal: %v", err)
			return fmt.Errorf("%w: failed to check journal: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("CreateBooking: date %s already booked locally", req.Date.Format(domain.DateFormat))
			return ErrDateNotAvailable
		}

		// 7.2. Предикат доступности на объединённом множестве
		if !schedule.IsDateSelectable(req.ProgramID, req.Date, now, remoteBlocked) {
			uc.logger.Warn("CreateBooking: date %s no longer selectable for program=%s",
				req.Date.Format(domain.DateFormat), req.ProgramID)
			return ErrDateNotAvailable
		}

		// 7.3. Сначала журналируем: уникальный индекс по дате сериализует
		// конкурентные брони на один день ещё до обращения к релею,
		// проигравший запрос получает конфликт без лишней строки в таблице
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDateAlreadyBooked) {
				return ErrDateNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to journal booking: %v", err)
			return fmt.Errorf("%w: failed to journal booking: %v", ErrInternal, err)
		}

		// 7.4. Отправляем запись в таблицу через релей. Отказ релея
		// откатывает транзакцию вместе со вставкой в журнал; при повторе
		// транзакции уже принятую релеем запись не шлём второй раз
		if !submitted {
			if err := uc.sheetsClient.SubmitBooking(txCtx, booking); err != nil {
				uc.logger.Error("CreateBooking: relay rejected booking: %v", err)
				return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
			}
			submitted = true
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, date=%s, program=%s",
		result.ID, result.DateString(), result.ProgramID)

	return &Response{
		ID:              result.ID,
		ProgramID:       result.ProgramID,
		ProgramName:     result.ProgramName,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		SlotDescription: result.SlotDescription,
		HostName:        result.HostName,
		CreatedAt:       result.CreatedAt,
	}, nil
}
