package update_form

import (
	"github.com/uncensored-studios/studio-booking-service/internal/booking"
)

// UpdateFormRequest HTTP request model; absent fields are left unchanged.
type UpdateFormRequest struct {
	Name           *string `json:"name,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Service        *string `json:"service,omitempty"`
	Hours          *string `json:"hours,omitempty"`
	Message        *string `json:"message,omitempty"`
	ReferralSource *string `json:"referralSource,omitempty"`
	ReferenceCode  *string `json:"referenceCode,omitempty"`
	Honeypot       *string `json:"website,omitempty"` // honeypot field, humans leave it empty
	ProviderID     *string `json:"providerId,omitempty"`
}

// FormStateResponse HTTP response model
type FormStateResponse struct {
	Step           string `json:"step"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Service        string `json:"service"`
	Hours          string `json:"hours"`
	Message        string `json:"message"`
	ReferralSource string `json:"referralSource"`
	ReferenceCode  string `json:"referenceCode"`
	SelectedDate   string `json:"selectedDate"`
	SelectedTime   string `json:"selectedTime"`
}

// ToFieldPatch converts the HTTP request into a flow field patch.
func ToFieldPatch(req *UpdateFormRequest) booking.FieldPatch {
	return booking.FieldPatch{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Service:        req.Service,
		Hours:          req.Hours,
		Message:        req.Message,
		ReferralSource: req.ReferralSource,
		ReferenceCode:  req.ReferenceCode,
		Honeypot:       req.Honeypot,
		ProviderID:     req.ProviderID,
	}
}

// FromSnapshot converts the flow snapshot into the HTTP response.
func FromSnapshot(snap booking.Snapshot) *FormStateResponse {
	return &FormStateResponse{
		Step:           string(snap.Step),
		Name:           snap.Fields.Name,
		Email:          snap.Fields.Email,
		Phone:          snap.Fields.Phone,
		Service:        snap.Fields.Service,
		Hours:          snap.Fields.Hours,
		Message:        snap.Fields.Message,
		ReferralSource: string(snap.Fields.ReferralSource),
		ReferenceCode:  snap.Fields.ReferenceCode,
		SelectedDate:   snap.SelectedDate.String(),
		SelectedTime:   snap.SelectedTime.String(),
	}
}
