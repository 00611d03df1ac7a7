package get_quote

import (
	quotePrice "github.com/uncensored-studios/studio-booking-service/internal/usecase/quote_price"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	PerTrack    bool    `json:"perTrack"`
	Discounted  bool    `json:"discounted"`
}

// FromUseCaseResponse converts the pricing result into the HTTP response.
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	return &QuoteResponse{
		ServiceID:   resp.ServiceID,
		ServiceName: resp.ServiceName,
		Price:       resp.Price,
		PerTrack:    resp.PerTrack,
		Discounted:  resp.Discounted,
	}
}
