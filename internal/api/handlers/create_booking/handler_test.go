package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingHub/internal/api/middleware"
	authModels "github.com/m04kA/BookingHub/internal/service/auth/models"
	createBooking "github.com/m04kA/BookingHub/internal/usecase/create_booking"
	"github.com/m04kA/BookingHub/pkg/logger"
	"github.com/m04kA/BookingHub/pkg/types"
)

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	created := time.Date(2025, 10, 14, 9, 0, 0, 0, time.UTC)
	return &createBooking.Response{
		ID:          "7",
		UserID:      req.UserID,
		ServiceID:   req.ServiceID,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   types.MustTimeString(req.StartTime),
		EndTime:     types.MustTimeString("11:00"),
		Status:      "confirmed",
		ServiceName: "Conference Room A",
		CreatedAt:   created,
		UpdatedAt:   created,
	}, nil
}

func newRequest(body string, withUser bool) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withUser {
		r = r.WithContext(middleware.WithIdentity(r.Context(), &authModels.Identity{ID: "2", Name: "Regular User"}))
	}
	return r
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	w := httptest.NewRecorder()
	h.Handle(w, newRequest(`{"serviceId":"1","date":"2025-10-15","startTime":"10:00"}`, true))

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "2", uc.got.UserID)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "7", resp.ID)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "2025-10-14T09:00:00Z", resp.CreatedAt)
}

func TestHandle_Errors(t *testing.T) {
	validBody := `{"serviceId":"1","date":"2025-10-15","startTime":"10:00"}`

	tests := []struct {
		name       string
		body       string
		withUser   bool
		ucErr      error
		wantStatus int
	}{
		{name: "no user", body: validBody, wantStatus: http.StatusUnauthorized},
		{name: "malformed body", body: `{`, withUser: true, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"serviceId":"1","date":"15-10-2025","startTime":"10:00"}`, withUser: true, wantStatus: http.StatusBadRequest},
		{name: "missing service", body: `{"date":"2025-10-15","startTime":"10:00"}`, withUser: true, wantStatus: http.StatusBadRequest},
		{name: "slot taken", body: validBody, withUser: true, ucErr: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "slot not found", body: validBody, withUser: true, ucErr: createBooking.ErrSlotNotFound, wantStatus: http.StatusNotFound},
		{name: "service not found", body: validBody, withUser: true, ucErr: createBooking.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", body: validBody, withUser: true, ucErr: fmt.Errorf("%w: boom", createBooking.ErrInternal), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, logger.NewNop())

			w := httptest.NewRecorder()
			h.Handle(w, newRequest(tt.body, tt.withUser))

			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
