package clear_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uncensored-studios/studio-booking-service/internal/api/handlers"
	"github.com/uncensored-studios/studio-booking-service/internal/booking"
	"github.com/uncensored-studios/studio-booking-service/internal/booking/sessions"
)

const (
	msgSessionNotFound = "session not found"
	msgNoSlotChosen    = "no slot chosen"
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

// Handle DELETE /api/v1/sessions/{sessionId}/slot
//
// Reopens the calendar from the slot summary. The previously fetched month
// stays cached; no availability refetch happens here.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	flow, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("DELETE /sessions/{id}/slot - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("DELETE /sessions/{id}/slot - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := flow.ChangeSelection(); err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidTransition):
			h.logger.Warn("DELETE /sessions/{id}/slot - No slot chosen: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNoSlotChosen)

		default:
			h.logger.Error("DELETE /sessions/{id}/slot - Failed to reopen calendar: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id}/slot - Calendar reopened: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
