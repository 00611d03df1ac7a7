package get_services

import (
	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services        []ServiceModel  `json:"services"`
	Durations       []DurationModel `json:"durations"`
	ReferralSources []string        `json:"referralSources"`
}

// ServiceModel is one bookable service.
type ServiceModel struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
	PerTrack  bool    `json:"perTrack"`
}

// DurationModel is one bookable session length.
type DurationModel struct {
	Hours int    `json:"hours"`
	Label string `json:"label"`
}

// FromCatalog converts the service catalog into the HTTP response.
func FromCatalog(catalog []domain.Service) *ServicesResponse {
	services := make([]ServiceModel, len(catalog))
	for i, svc := range catalog {
		services[i] = ServiceModel{
			ID:        svc.ID,
			Name:      svc.Name,
			BasePrice: svc.BasePrice,
			PerTrack:  svc.PerTrack,
		}
	}

	durations := make([]DurationModel, len(domain.DurationOptions))
	for i, opt := range domain.DurationOptions {
		durations[i] = DurationModel{Hours: opt.Hours, Label: opt.Label}
	}

	return &ServicesResponse{
		Services:  services,
		Durations: durations,
		ReferralSources: []string{
			string(domain.ReferralAdvertisement),
			string(domain.ReferralGoogleSearch),
			string(domain.ReferralSocialMedia),
			string(domain.ReferralReferenceCode),
		},
	}
}
