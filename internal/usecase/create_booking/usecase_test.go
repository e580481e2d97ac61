package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	bookingRepo "github.com/godivinity-atl/GOD-BookingService/internal/infra/storage/booking"
	sheetsClient "github.com/godivinity-atl/GOD-BookingService/internal/integrations/sheets"
	"github.com/godivinity-atl/GOD-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	exists    bool
	existsErr error
	createErr error
	created   *domain.Booking
}

func (f *fakeRepo) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *booking
	stored.ID = 42
	stored.CreatedAt = time.Date(2026, time.January, 1, 12, 30, 0, 0, time.UTC)
	f.created = &stored
	return &stored, nil
}

type fakeSheets struct {
	dates     []string
	degraded  bool
	submitErr error
	submitted []*domain.Booking
}

func (f *fakeSheets) FetchBookedDatesWithGracefulDegradation(ctx context.Context) ([]string, error) {
	if f.degraded {
		return nil, fmt.Errorf("%w: relay unreachable", sheetsClient.ErrServiceDegraded)
	}
	return f.dates, nil
}

func (f *fakeSheets) SubmitBooking(ctx context.Context, booking *domain.Booking) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, booking)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// conflictRetryTx повторяет замыкание, как txmanager после конфликта
// сериализации на фиксации: первые retries проходов откатываются
type conflictRetryTx struct {
	retries int
}

func (m *conflictRetryTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	for i := 0; i < m.retries; i++ {
		if err := fn(ctx); err != nil {
			return err
		}
	}
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var testNow = time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC) // четверг

func newTestUseCase(repo *fakeRepo, sheets *fakeSheets) *UseCase {
	uc := NewUseCase(repo, sheets, passthroughTx{}, nopLogger{})
	uc.timeProvider = fixedTime{t: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		ProgramID:       domain.ProgramNamaBhiksha,
		Date:            time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC), // суббота
		StartTime:       types.MustTimeString("16:00"),
		DurationMinutes: 60,
		HostName:        "Ramesh Iyer",
		HostEmail:       "ramesh@example.com",
		HostPhone:       "+1 404 555 0101",
		Street:          "12 Peachtree Ln",
		City:            "Atlanta",
		State:           "GA",
		ZipCode:         "30303",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	sheets := &fakeSheets{}
	uc := newTestUseCase(repo, sheets)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Nama Bhiksha", resp.ProgramName)
	assert.Equal(t, "4:00 PM - 5:00 PM (1 Hour)", resp.SlotDescription)

	require.Len(t, sheets.submitted, 1)
	assert.Equal(t, "2026-01-03", sheets.submitted[0].DateString())
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.ProgramNamaBhiksha, repo.created.ProgramID)
}

func TestExecute_RemotelyBookedDate(t *testing.T) {
	repo := &fakeRepo{}
	sheets := &fakeSheets{dates: []string{"2026-01-03"}}
	uc := newTestUseCase(repo, sheets)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDateNotAvailable)
	assert.Empty(t, sheets.submitted)
}

func TestExecute_LocallyJournaledDate(t *testing.T) {
	repo := &fakeRepo{exists: true}
	sheets := &fakeSheets{}
	uc := newTestUseCase(repo, sheets)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDateNotAvailable)
	assert.Empty(t, sheets.submitted)
}

func TestExecute_RelayDegradedStillBooks(t *testing.T) {
	repo := &fakeRepo{}
	sheets := &fakeSheets{degraded: true}
	uc := newTestUseCase(repo, sheets)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_SlotNotGenerated(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeSheets{})

	req := validRequest()
	req.StartTime = types.MustTimeString("16:15")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	req = validRequest()
	req.DurationMinutes = 90

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_IneligibleWeekday(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeSheets{})

	req := validRequest()
	req.ProgramID = domain.ProgramRadhaKalyanam
	req.Date = time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC) // вторник
	req.StartTime = types.MustTimeString("10:00")
	req.DurationMinutes = 180

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_RelayRejectsSubmission(t *testing.T) {
	repo := &fakeRepo{}
	sheets := &fakeSheets{submitErr: errors.New("script error")}
	uc := newTestUseCase(repo, sheets)

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.Nil(t, resp)
	assert.Empty(t, sheets.submitted)
}

func TestExecute_JournalUniqueViolation(t *testing.T) {
	repo := &fakeRepo{createErr: bookingRepo.ErrDateAlreadyBooked}
	sheets := &fakeSheets{}
	uc := newTestUseCase(repo, sheets)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDateNotAvailable)
	assert.Empty(t, sheets.submitted)
}

func TestExecute_SerializationRetrySubmitsOnce(t *testing.T) {
	repo := &fakeRepo{}
	sheets := &fakeSheets{}
	uc := NewUseCase(repo, sheets, &conflictRetryTx{retries: 1}, nopLogger{})
	uc.timeProvider = fixedTime{t: testNow}

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Len(t, sheets.submitted, 1)
}

func TestExecute_UnknownProgram(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeSheets{})

	req := validRequest()
	req.ProgramID = "house-warming"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProgramNotFound)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeSheets{})
	uc.timeProvider = fixedTime{t: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_OutsideBookingYear(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeSheets{})

	req := validRequest()
	req.Date = time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBookingYear)
}

func TestExecute_MissingContactFields(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeSheets{})

	req := validRequest()
	req.HostEmail = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.City = ""

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_OversizedAddress(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeSheets{})

	req := validRequest()
	req.Street = strings.Repeat("x", 400)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
