package update_form

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
	msgInvalidBody     = "invalid request body"
	msgSubmitting      = "submission in progress"
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

// Handle PATCH /api/v1/sessions/{sessionId}/form
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	flow, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("PATCH /sessions/{id}/form - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("PATCH /sessions/{id}/form - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req UpdateFormRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/form - Invalid body: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := flow.UpdateForm(ToFieldPatch(&req)); err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidTransition):
			h.logger.Warn("PATCH /sessions/{id}/form - Update rejected while submitting: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSubmitting)

		default:
			h.logger.Error("PATCH /sessions/{id}/form - Failed to update form: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/form - Form updated: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flow.Snapshot()))
}
