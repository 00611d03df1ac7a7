package domain

// Service is immutable reference data describing a bookable studio service.
// PerTrack services are priced as a flat fee per track regardless of session
// duration; all others are hourly.
type Service struct {
	ID        string
	Name      string
	BasePrice float64 // GBP; hourly rate, or flat fee for per-track services
	PerTrack  bool
}

// IsHourly returns true if the service is billed by session duration.
func (s *Service) IsHourly() bool {
	return !s.PerTrack
}

// DefaultCatalog is the built-in service list used when no live scheduling
// system is configured.
var DefaultCatalog = []Service{
	{ID: "dry-hire", Name: "Dry Hire (Studio Only)", BasePrice: 20},
	{ID: "recording", Name: "Recording Hire (with Engineer)", BasePrice: 40},
	{ID: "dj-practice", Name: "DJ Practice", BasePrice: 20},
	{ID: "mixing", Name: "Mixing Service", BasePrice: 100, PerTrack: true},
	{ID: "mastering", Name: "Mastering Service", BasePrice: 50, PerTrack: true},
	{ID: "mix-master", Name: "Mix & Master Bundle", BasePrice: 140, PerTrack: true},
}

// FindService looks up a service by id in the given catalog.
func FindService(catalog []Service, id string) (*Service, bool) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], true
		}
	}
	return nil, false
}

// DurationOption is an allowed whole-hour session length.
type DurationOption struct {
	Hours int
	Label string
}

// DurationOptions is the full set of bookable session lengths. The two-hour
// minimum is a hard rule of the studio.
var DurationOptions = []DurationOption{
	{Hours: 2, Label: "2 hours (minimum)"},
	{Hours: 3, Label: "3 hours"},
	{Hours: 4, Label: "4 hours"},
	{Hours: 5, Label: "5 hours"},
	{Hours: 6, Label: "6 hours"},
	{Hours: 8, Label: "8 hours (full day)"},
}

// IsAllowedDuration reports whether hours is one of the bookable lengths.
func IsAllowedDuration(hours int) bool {
	for _, opt := range DurationOptions {
		if opt.Hours == hours {
			return true
		}
	}
	return false
}

// ReferralSource is the user-declared channel through which they found the
// studio.
type ReferralSource string

const (
	ReferralAdvertisement ReferralSource = "advertisement"
	ReferralGoogleSearch  ReferralSource = "google-search"
	ReferralSocialMedia   ReferralSource = "social-media"
	ReferralReferenceCode ReferralSource = "reference-code"
)

// IsValid reports whether the referral source is one of the known options.
func (r ReferralSource) IsValid() bool {
	switch r {
	case ReferralAdvertisement, ReferralGoogleSearch, ReferralSocialMedia, ReferralReferenceCode:
		return true
	}
	return false
}

// RequiresReferenceCode reports whether a supplementary reference code must
// accompany this referral source at submission time.
func (r ReferralSource) RequiresReferenceCode() bool {
	return r == ReferralReferenceCode
}
