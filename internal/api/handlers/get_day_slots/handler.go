package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uncensored-studios/studio-booking-service/internal/api/handlers"
	"github.com/uncensored-studios/studio-booking-service/internal/booking"
	"github.com/uncensored-studios/studio-booking-service/internal/booking/sessions"
	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

const (
	msgSessionNotFound  = "session not found"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgDayNotSelectable = "day is not selectable"
	msgStillLoading     = "availability is still loading"
	msgNotOpen          = "calendar is not open"
)

type Handler struct {
	store  FlowStore
	logger Logger
}

func NewHandler(store FlowStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/days/{date}/slots
//
// Selecting a day is the action that reveals its slots, so this endpoint
// drives the day selection before reading the free set.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	flow, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id}/days/{date}/slots - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id}/days/{date}/slots - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	date, err := domain.ParseDate(vars["date"])
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/days/{date}/slots - Invalid date: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := flow.SelectDay(date); err != nil {
		switch {
		case errors.Is(err, booking.ErrDayNotSelectable):
			h.logger.Warn("GET /sessions/{id}/days/{date}/slots - Day not selectable: session_id=%s, date=%s", sessionID, date)
			handlers.RespondBadRequest(w, msgDayNotSelectable)

		case errors.Is(err, booking.ErrAvailabilityNotReady):
			h.logger.Info("GET /sessions/{id}/days/{date}/slots - Availability still loading: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgStillLoading)

		case errors.Is(err, booking.ErrInvalidTransition):
			h.logger.Warn("GET /sessions/{id}/days/{date}/slots - Calendar not open: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNotOpen)

		default:
			h.logger.Error("GET /sessions/{id}/days/{date}/slots - Failed to select day: session_id=%s, date=%s, error=%v",
				sessionID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots, err := flow.DaySlots(date)
	if err != nil {
		h.logger.Error("GET /sessions/{id}/days/{date}/slots - Failed to read slots: session_id=%s, date=%s, error=%v",
			sessionID, date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sessions/{id}/days/{date}/slots - Slots served: session_id=%s, date=%s, slots_count=%d",
		sessionID, date, len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromSlots(date, slots))
}
