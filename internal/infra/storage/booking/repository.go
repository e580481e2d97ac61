package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	"github.com/godivinity-atl/GOD-BookingService/pkg/dbmetrics"
	"github.com/godivinity-atl/GOD-BookingService/pkg/psqlbuilder"
)

// pq код unique_violation
const uniqueViolationCode = "23505"

// Repository локальный журнал принятых бронирований.
// Таблица — авторитет по датам, занятым ЭТИМ инстансом сервиса: запись
// появляется сразу после подтверждения релеем, ещё до того как удалённая
// таблица начнёт отдавать дату в списке занятых. Уникальный индекс по
// booking_date закрепляет политику "один день — одна бронь" на уровне
// хранилища.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"program_id",
	"program_name",
	"booking_date",
	"start_time",
	"duration_minutes",
	"slot_description",
	"host_name",
	"host_email",
	"host_phone",
	"street",
	"city",
	"state",
	"zip_code",
	"occasion",
	"additional_notes",
	"created_at",
}

// Create записывает принятую бронь в журнал.
// Если в контексте передана активная транзакция, использует её.
// Повторная бронь на тот же день возвращает ErrDateAlreadyBooked.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"program_id",
			"program_name",
			"booking_date",
			"start_time",
			"duration_minutes",
			"slot_description",
			"host_name",
			"host_email",
			"host_phone",
			"street",
			"city",
			"state",
			"zip_code",
			"occasion",
			"additional_notes",
		).
		Values(
			booking.ProgramID,
			booking.ProgramName,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationMinutes,
			booking.SlotDescription,
			booking.HostName,
			booking.HostEmail,
			booking.HostPhone,
			booking.Street,
			booking.City,
			booking.State,
			booking.ZipCode,
			booking.Occasion,
			booking.AdditionalNotes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrDateAlreadyBooked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// ExistsForDate проверяет, есть ли в журнале бронь на указанный день.
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы параллельное
// создание брони на тот же день дождалось исхода текущего.
func (r *Repository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForDate - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForDate - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetBookedDates возвращает все занятые в журнале даты в виде ISO строк
func (r *Repository) GetBookedDates(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT to_char(booking_date, 'YYYY-MM-DD')").
		From("bookings").
		OrderBy("1 ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: GetBookedDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByDateRange возвращает бронирования журнала за период, по датам и
// времени начала по возрастанию. Используется для операторского просмотра.
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"booking_date": to.Format(domain.DateFormat)}).
		OrderBy("booking_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDateRange - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ProgramID,
		&booking.ProgramName,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.SlotDescription,
		&booking.HostName,
		&booking.HostEmail,
		&booking.HostPhone,
		&booking.Street,
		&booking.City,
		&booking.State,
		&booking.ZipCode,
		&booking.Occasion,
		&booking.AdditionalNotes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	return &booking, nil
}
