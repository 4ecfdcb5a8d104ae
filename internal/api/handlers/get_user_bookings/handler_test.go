package get_user_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingHub/internal/api/middleware"
	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/internal/infra/events"
	bookingRepo "github.com/m04kA/BookingHub/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/BookingHub/internal/infra/storage/slot"
	authModels "github.com/m04kA/BookingHub/internal/service/auth/models"
	"github.com/m04kA/BookingHub/internal/service/bookings"
	"github.com/m04kA/BookingHub/internal/service/bookings/models"
	"github.com/m04kA/BookingHub/pkg/logger"
	"github.com/m04kA/BookingHub/pkg/metrics"
	"github.com/m04kA/BookingHub/pkg/txmanager"
	"github.com/m04kA/BookingHub/pkg/types"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	repo := bookingRepo.NewMemoryRepository()
	created := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	_, err := repo.Create(context.Background(), &domain.Booking{
		ID:        "b1",
		UserID:    "2",
		ServiceID: "1",
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime: types.MustTimeString("10:00"),
		EndTime:   types.MustTimeString("11:00"),
		Status:    domain.StatusConfirmed,
		CreatedAt: created,
		UpdatedAt: created,
	})
	require.NoError(t, err)

	svc := bookings.NewService(repo, slotRepo.NewMemoryRepository(), events.NewNoop(),
		(*metrics.Metrics)(nil), txmanager.NewLocalManager(), logger.NewNop())
	return NewHandler(svc, logger.NewNop())
}

func newRequest(query, userID string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/users/me/bookings"+query, nil)
	if userID != "" {
		r = r.WithContext(middleware.WithIdentity(r.Context(), &authModels.Identity{ID: userID, Name: "Regular User"}))
	}
	return r
}

func TestHandle_AllTab(t *testing.T) {
	w := httptest.NewRecorder()
	newHandler(t).Handle(w, newRequest("", "2"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2", resp[0].UserID)
	assert.Equal(t, "2025-10-15", resp[0].Date)
}

func TestHandle_OtherUserSeesNothing(t *testing.T) {
	w := httptest.NewRecorder()
	newHandler(t).Handle(w, newRequest("", "3"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		userID     string
		wantStatus int
		wantError  string
	}{
		{name: "no user", query: "?tab=active", wantStatus: http.StatusUnauthorized, wantError: msgMissingUserID},
		{name: "unknown tab", query: "?tab=archive", userID: "2", wantStatus: http.StatusBadRequest, wantError: msgInvalidTab},
		{name: "tab is case sensitive", query: "?tab=Active", userID: "2", wantStatus: http.StatusBadRequest, wantError: msgInvalidTab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newHandler(t).Handle(w, newRequest(tt.query, tt.userID))

			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}
