package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/uncensored-studios/studio-booking-service/internal/api/handlers"
	"github.com/uncensored-studios/studio-booking-service/internal/booking"
	"github.com/uncensored-studios/studio-booking-service/internal/booking/sessions"
)

const (
	msgSessionNotFound = "session not found"
	msgInvalidYear     = "invalid year"
	msgInvalidMonth    = "invalid month"
	msgPartialTarget   = "year and month must be provided together"
	msgTooFar          = "calendar moves one month at a time"
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

// Handle GET /api/v1/sessions/{sessionId}/availability
// Query params: year, month (optional, together; at most one month away from
// the currently displayed month)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	flow, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id}/availability - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id}/availability - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := flow.OpenCalendar(r.Context()); err != nil {
		h.logger.Warn("GET /sessions/{id}/availability - Calendar not openable: session_id=%s, error=%v", sessionID, err)
		handlers.RespondConflict(w, msgNotOpen)
		return
	}

	target, ok, err := parseTarget(r)
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/availability - Bad month target: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	if ok {
		delta := monthDelta(flow.MonthView().Month, target)
		switch {
		case delta == 0:
			// already displayed
		case delta == 1 || delta == -1:
			if err := flow.NavigateMonth(r.Context(), delta); err != nil {
				h.logger.Warn("GET /sessions/{id}/availability - Navigation rejected: session_id=%s, error=%v", sessionID, err)
				handlers.RespondConflict(w, msgNotOpen)
				return
			}
		default:
			h.logger.Warn("GET /sessions/{id}/availability - Month target too far: session_id=%s, delta=%d", sessionID, delta)
			handlers.RespondBadRequest(w, msgTooFar)
			return
		}
	}

	view := flow.MonthView()

	h.logger.Info("GET /sessions/{id}/availability - Month state served: session_id=%s, month=%d-%02d, loading=%t",
		sessionID, view.Month.Year, int(view.Month.Month), view.Loading)
	handlers.RespondJSON(w, http.StatusOK, FromMonthView(view))
}

func parseTarget(r *http.Request) (booking.MonthRef, bool, error) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")

	if yearStr == "" && monthStr == "" {
		return booking.MonthRef{}, false, nil
	}
	if yearStr == "" || monthStr == "" {
		return booking.MonthRef{}, false, errors.New(msgPartialTarget)
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2200 {
		return booking.MonthRef{}, false, errors.New(msgInvalidYear)
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return booking.MonthRef{}, false, errors.New(msgInvalidMonth)
	}

	return booking.MonthRef{Year: year, Month: time.Month(month)}, true, nil
}
