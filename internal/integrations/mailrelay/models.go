package mailrelay

import "github.com/uncensored-studios/studio-booking-service/internal/domain"

// submissionPayload is the JSON body the mail-relay sink accepts. Field names
// match what the relay templates into the notification email.
type submissionPayload struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Hours          string `json:"hours"`
	Service        string `json:"service"`
	Message        string `json:"message,omitempty"`
	ReferralSource string `json:"referralSource"`
	ReferenceCode  string `json:"referenceCode,omitempty"`
}

func toPayload(req *domain.BookingRequest) submissionPayload {
	return submissionPayload{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Date:           req.Date.String(),
		Time:           req.Time.String(),
		Hours:          req.Hours,
		Service:        req.Service,
		Message:        req.Message,
		ReferralSource: string(req.ReferralSource),
		ReferenceCode:  req.ReferenceCode,
	}
}
