package get_quote

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/uncensored-studios/studio-booking-service/internal/api/handlers"
	"github.com/uncensored-studios/studio-booking-service/internal/booking"
	"github.com/uncensored-studios/studio-booking-service/internal/booking/sessions"
	quotePrice "github.com/uncensored-studios/studio-booking-service/internal/usecase/quote_price"
)

const (
	msgSessionNotFound = "session not found"
	msgUnknownService  = "unknown service"
	msgInvalidHours    = "invalid session length"
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

// Handle GET /api/v1/sessions/{sessionId}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	flow, err := h.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id}/quote - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id}/quote - Failed to resolve session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	quote, err := flow.Quote()
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrServiceNotFound):
			h.logger.Warn("GET /sessions/{id}/quote - Unknown service: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, quotePrice.ErrInvalidInput), errors.Is(err, booking.ErrInvalidHours):
			h.logger.Warn("GET /sessions/{id}/quote - Invalid session length: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("GET /sessions/{id}/quote - Failed to compute quote: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/quote - Quote served: session_id=%s, service=%s, price=%.2f",
		sessionID, quote.ServiceID, quote.Price)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(quote))
}
