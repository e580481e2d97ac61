package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godivinity-atl/GOD-BookingService/internal/domain"
	"github.com/godivinity-atl/GOD-BookingService/internal/service/bookings"
	"github.com/godivinity-atl/GOD-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	booking *domain.Booking
	err     error
}

func (f *fakeService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

func serve(service BookingsService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(service, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	occasion := "Gruhapravesam"
	service := &fakeService{booking: &domain.Booking{
		ID:              42,
		ProgramID:       domain.ProgramNamaBhiksha,
		ProgramName:     "Nama Bhiksha",
		BookingDate:     time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC),
		StartTime:       types.MustTimeString("16:00"),
		DurationMinutes: 60,
		SlotDescription: "4:00 PM - 5:00 PM (1 Hour)",
		HostName:        "Ramesh Iyer",
		HostEmail:       "ramesh@example.com",
		HostPhone:       "+1 404 555 0101",
		Street:          "12 Peachtree Ln",
		City:            "Atlanta",
		State:           "GA",
		ZipCode:         "30303",
		Occasion:        &occasion,
		CreatedAt:       time.Date(2026, time.January, 1, 12, 30, 0, 0, time.UTC),
	}}

	rec := serve(service, "/api/v1/bookings/42")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-01-03", resp.Date)
	assert.Equal(t, "12 Peachtree Ln, Atlanta, GA 30303", resp.HostAddress)
	require.NotNil(t, resp.Occasion)
	assert.Equal(t, "Gruhapravesam", *resp.Occasion)
}

func TestHandle_NotFound(t *testing.T) {
	rec := serve(&fakeService{err: bookings.ErrBookingNotFound}, "/api/v1/bookings/99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := serve(&fakeService{}, "/api/v1/bookings/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ServiceError(t *testing.T) {
	rec := serve(&fakeService{err: errors.New("db down")}, "/api/v1/bookings/42")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
