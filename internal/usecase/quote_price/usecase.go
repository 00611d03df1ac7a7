package quote_price

import (
	"fmt"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

// UseCase computes price quotes against a fixed service catalog.
type UseCase struct {
	catalog []domain.Service
	logger  Logger
}

// NewUseCase creates the pricing use case.
func NewUseCase(catalog []domain.Service, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute computes the quote for the request.
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	if req.ServiceID == "" {
		return nil, fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	service, ok := domain.FindService(uc.catalog, req.ServiceID)
	if !ok {
		uc.logger.Warn("QuotePrice: unknown service id=%s", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	hours := req.Hours
	if service.IsHourly() {
		if hours == 0 {
			hours = domain.MinSessionHours
		}
		if !domain.IsAllowedDuration(hours) {
			return nil, fmt.Errorf("%w: %d is not a bookable session length", ErrInvalidInput, hours)
		}
	}

	price, discounted := quoteFor(service, hours)

	return &Response{
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Price:       price,
		PerTrack:    service.PerTrack,
		Discounted:  discounted,
	}, nil
}
