package create_session

import (
	"net/http"

	"github.com/uncensored-studios/studio-booking-service/internal/api/handlers"
)

type Handler struct {
	sessions SessionCreator
	logger   Logger
}

func NewHandler(sessions SessionCreator, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := h.sessions.Create()

	h.logger.Info("POST /sessions - Session created: session_id=%s", id)
	handlers.RespondJSON(w, http.StatusCreated, &CreateSessionResponse{SessionID: id})
}
