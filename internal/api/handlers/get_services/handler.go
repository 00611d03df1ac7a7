package get_services

import (
	"net/http"

	"github.com/uncensored-studios/studio-booking-service/internal/api/handlers"
	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

type Handler struct {
	catalog []domain.Service
	logger  Logger
}

func NewHandler(catalog []domain.Service, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /services - Catalog served: services_count=%d", len(h.catalog))
	handlers.RespondJSON(w, http.StatusOK, FromCatalog(h.catalog))
}
