package get_all_bookings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookingHub/internal/api/middleware"
	"github.com/m04kA/BookingHub/internal/infra/events"
	bookingRepo "github.com/m04kA/BookingHub/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/BookingHub/internal/infra/storage/slot"
	authModels "github.com/m04kA/BookingHub/internal/service/auth/models"
	"github.com/m04kA/BookingHub/internal/service/bookings"
	"github.com/m04kA/BookingHub/pkg/logger"
	"github.com/m04kA/BookingHub/pkg/metrics"
	"github.com/m04kA/BookingHub/pkg/txmanager"
)

func newHandler() *Handler {
	svc := bookings.NewService(bookingRepo.NewMemoryRepository(), slotRepo.NewMemoryRepository(), events.NewNoop(),
		(*metrics.Metrics)(nil), txmanager.NewLocalManager(), logger.NewNop())
	return NewHandler(svc, logger.NewNop())
}

func newRequest(query string, identity *authModels.Identity) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings"+query, nil)
	if identity != nil {
		r = r.WithContext(middleware.WithIdentity(r.Context(), identity))
	}
	return r
}

func TestHandle_Admin(t *testing.T) {
	w := httptest.NewRecorder()
	newHandler().Handle(w, newRequest("?status=confirmed", &authModels.Identity{ID: "1", IsAdmin: true}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	admin := &authModels.Identity{ID: "1", Name: "Admin", IsAdmin: true}
	user := &authModels.Identity{ID: "2", Name: "Regular User"}

	tests := []struct {
		name       string
		query      string
		identity   *authModels.Identity
		wantStatus int
		wantError  string
	}{
		{name: "no user", identity: nil, wantStatus: http.StatusUnauthorized, wantError: msgMissingUserID},
		{name: "non-admin", identity: user, wantStatus: http.StatusForbidden, wantError: msgForbidden},
		{name: "non-admin with status", query: "?status=confirmed", identity: user, wantStatus: http.StatusForbidden, wantError: msgForbidden},
		{name: "unknown status", query: "?status=pending", identity: admin, wantStatus: http.StatusBadRequest, wantError: msgInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newHandler().Handle(w, newRequest(tt.query, tt.identity))

			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}
