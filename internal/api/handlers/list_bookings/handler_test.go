package list_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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
	list []*domain.Booking
	err  error
}

func (f *fakeService) ListBookings(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func serve(service BookingsService, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(service, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	service := &fakeService{list: []*domain.Booking{
		{
			ID:              7,
			ProgramID:       domain.ProgramRadhaKalyanam,
			ProgramName:     "Radha Kalyanam",
			BookingDate:     time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC),
			StartTime:       types.MustTimeString("10:00"),
			DurationMinutes: 180,
			SlotDescription: "10:00 AM - 1:00 PM (3 Hours)",
			HostName:        "Ramesh Iyer",
			HostPhone:       "+1 404 555 0101",
			CreatedAt:       time.Date(2026, time.January, 1, 12, 30, 0, 0, time.UTC),
		},
	}}

	rec := serve(service, "/api/v1/bookings?from=2026-01-01&to=2026-01-31")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BookingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-01-01", resp.From)
	assert.Equal(t, "2026-01-31", resp.To)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(7), resp.Bookings[0].ID)
	assert.Equal(t, "10:00 AM - 1:00 PM (3 Hours)", resp.Bookings[0].SlotDescription)
}

func TestHandle_MissingRange(t *testing.T) {
	rec := serve(&fakeService{}, "/api/v1/bookings?from=2026-01-01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedDate(t *testing.T) {
	rec := serve(&fakeService{}, "/api/v1/bookings?from=01/01/2026&to=2026-01-31")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidRange(t *testing.T) {
	rec := serve(&fakeService{err: bookings.ErrInvalidRange}, "/api/v1/bookings?from=2026-01-31&to=2026-01-01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
