package select_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uncensored-studios/studio-booking-service/internal/api/handlers"
	"github.com/uncensored-studios/studio-booking-service/internal/booking"
	"github.com/uncensored-studios/studio-booking-service/internal/booking/sessions"
	"github.com/uncensored-studios/studio-booking-service/internal/domain"
	"github.com/uncensored-studios/studio-booking-service/pkg/types"
)

const (
	msgSessionNotFound = "session not found"
	msgInvalidBody     = "invalid request body"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime     = "invalid time label, expected H:00"
	msgSlotNotFree     = "slot is not free"
	msgStillLoading    = "availability is still loading"
	msgNotOpen         = "calendar is not open"
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

// Handle POST /api/v1/sessions/{sessionId}/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	flow, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("POST /sessions/{id}/slot - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/slot - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/slot - Invalid body: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/slot - Invalid date: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slotTime, err := types.ParseHourString(req.Time)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/slot - Invalid time: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	if err := flow.SelectSlot(date, slotTime); err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotNotFree):
			h.logger.Warn("POST /sessions/{id}/slot - Slot not free: session_id=%s, date=%s, time=%s", sessionID, date, slotTime)
			handlers.RespondConflict(w, msgSlotNotFree)

		case errors.Is(err, booking.ErrAvailabilityNotReady):
			h.logger.Info("POST /sessions/{id}/slot - Availability still loading: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgStillLoading)

		case errors.Is(err, booking.ErrInvalidTransition):
			h.logger.Warn("POST /sessions/{id}/slot - Calendar not open: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNotOpen)

		default:
			h.logger.Error("POST /sessions/{id}/slot - Failed to select slot: session_id=%s, date=%s, time=%s, error=%v",
				sessionID, date, slotTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/slot - Slot selected: session_id=%s, date=%s, time=%s", sessionID, date, slotTime)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(flow.Snapshot()))
}
