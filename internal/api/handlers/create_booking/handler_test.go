package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acornglobus/court-booking-service/internal/api/handlers"
	"github.com/acornglobus/court-booking-service/internal/domain"
	createBooking "github.com/acornglobus/court-booking-service/internal/usecase/create_booking"
	quotePrice "github.com/acornglobus/court-booking-service/internal/usecase/quote_price"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	return s.resp, s.err
}

func doRequest(t *testing.T, useCase CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(useCase, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

const validBody = `{"userName":"Rohan Mehta","courtId":1,"date":"2025-11-04","startTime":"18:00","durationHrs":2}`

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestHandle_Created(t *testing.T) {
	useCase := &stubUseCase{resp: &createBooking.Response{
		ID:          42,
		Reference:   "BLR-ABC123-XY9Z",
		UserName:    "Rohan Mehta",
		CourtID:     1,
		StartTime:   time.Date(2025, 11, 4, 18, 0, 0, 0, time.UTC),
		DurationHrs: 2,
		TotalPrice:  1200,
		Status:      domain.StatusConfirmed,
		CreatedAt:   time.Date(2025, 11, 4, 12, 0, 0, 0, time.UTC),
		Pricing: &quotePrice.Response{
			BaseCourt: 1200,
			Adjustments: []quotePrice.Adjustment{
				{RuleID: 1, Label: "Peak Hour Surcharge", Amount: 300},
			},
			Total: 1200,
		},
	}}

	rec := doRequest(t, useCase, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, "BLR-ABC123-XY9Z", resp.Booking.Reference)
	assert.Equal(t, "2025-11-04", resp.Booking.Date)
	assert.Equal(t, "18:00", resp.Booking.StartTime)
	assert.Equal(t, "CONFIRMED", resp.Booking.Status)

	require.NotNil(t, resp.Pricing)
	assert.Equal(t, float64(1200), resp.Pricing.BaseCourt)
	assert.Equal(t, float64(1200), resp.Pricing.Total)
	require.Len(t, resp.Pricing.Adjustments, 1)
	assert.Equal(t, "Peak Hour Surcharge", resp.Pricing.Adjustments[0].Label)
}

func TestHandle_ConflictMessages(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "court conflict",
			err:     createBooking.ErrCourtConflict,
			wantMsg: "Court has a conflicting booking for that slot.",
		},
		{
			name:    "coach conflict",
			err:     createBooking.ErrCoachConflict,
			wantMsg: "Coach is already booked for that slot.",
		},
		{
			name:    "equipment conflict",
			err:     &createBooking.EquipmentConflictError{Name: "Yonex Voltric Racket", Remaining: 3},
			wantMsg: "Only 3 of Yonex Voltric Racket left for that slot.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tc.err}, validBody)

			assert.Equal(t, http.StatusConflict, rec.Code)
			assert.Equal(t, tc.wantMsg, decodeError(t, rec))
		})
	}
}

func TestHandle_NotFoundAndBadRequest(t *testing.T) {
	rec := doRequest(t, &stubUseCase{err: createBooking.ErrCourtNotFound}, validBody)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, &stubUseCase{err: createBooking.ErrInvalidInput}, validBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, &stubUseCase{}, `{"userName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, &stubUseCase{}, `{"userName":"X","courtId":1,"date":"04.11.2025","startTime":"18:00","durationHrs":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
