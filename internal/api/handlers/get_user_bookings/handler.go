package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookingHub/internal/api/handlers"
	"github.com/m04kA/BookingHub/internal/api/middleware"
	"github.com/m04kA/BookingHub/internal/service/bookings"
	"github.com/m04kA/BookingHub/internal/service/bookings/models"
)

const (
	msgMissingUserID = "missing user id"
	msgInvalidTab    = "invalid tab, expected active or past"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me/bookings
// Query params: tab (optional, active|past)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	tab := r.URL.Query().Get("tab")

	result, err := h.service.GetUserBookings(r.Context(), &models.GetUserBookingsRequest{
		UserID: userID,
		Tab:    tab,
	})
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /users/me/bookings - Invalid tab: user_id=%s, tab=%q", userID, tab)
			handlers.RespondBadRequest(w, msgInvalidTab)
			return
		}
		h.logger.Error("GET /users/me/bookings - Failed to get bookings: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/me/bookings - Bookings retrieved successfully: user_id=%s, tab=%q, count=%d",
		userID, tab, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
