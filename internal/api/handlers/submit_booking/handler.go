package submit_booking

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
	msgInFlight        = "submission already in progress"
	msgSubmitFailed    = "booking submission failed, please try again"
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

// Handle POST /api/v1/sessions/{sessionId}/submit
//
// Validation failures surface as 400 with the failing field in the message;
// the transport is never called for those. Transport failures keep the form
// state so the user can retry.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	flow, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/submit - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := flow.Submit(r.Context()); err != nil {
		switch {
		case errors.Is(err, booking.ErrSubmissionInFlight):
			h.logger.Warn("POST /sessions/{id}/submit - Already in flight: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInFlight)

		case errors.Is(err, booking.ErrMissingSlot),
			errors.Is(err, booking.ErrMissingContactField),
			errors.Is(err, booking.ErrMissingReferralSource),
			errors.Is(err, booking.ErrMissingReferenceCode),
			errors.Is(err, booking.ErrInvalidHours),
			errors.Is(err, booking.ErrFieldTooLong),
			errors.Is(err, booking.ErrServiceNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Validation failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, booking.ErrSubmitFailed):
			h.logger.Error("POST /sessions/{id}/submit - Transport failure: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, msgSubmitFailed)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to submit: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/submit - Booking confirmed: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, &SubmitResponse{Status: "confirmed"})
}
