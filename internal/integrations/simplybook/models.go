package simplybook

// Service is a bookable service as listed by the scheduling system.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Duration    int     `json:"duration"` // minutes
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
}

// Provider is an engineer or room that can deliver a service.
type Provider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description,omitempty"`
}

// Booking is a confirmed reservation in the scheduling system.
type Booking struct {
	ID            string            `json:"id"`
	ServiceID     string            `json:"service_id"`
	ProviderID    string            `json:"provider_id"`
	ClientName    string            `json:"client_name"`
	ClientEmail   string            `json:"client_email"`
	ClientPhone   string            `json:"client_phone"`
	StartDateTime string            `json:"start_datetime"`
	EndDateTime   string            `json:"end_datetime"`
	Status        string            `json:"status"`
	Additional    map[string]string `json:"additional_fields,omitempty"`
}

// CreateBookingRequest carries everything needed to create a booking.
type CreateBookingRequest struct {
	ServiceID   string
	ProviderID  string
	DateTime    string // "YYYY-MM-DD HH:MM"
	ClientName  string
	ClientEmail string
	ClientPhone string
	Additional  map[string]string
}

// loginRequest is the authentication payload.
type loginRequest struct {
	Company  string `json:"company"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// loginResponse carries the session token.
type loginResponse struct {
	Token string `json:"token"`
}

// wire models: the admin API nests client fields on bookings

type wireClient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type wireBooking struct {
	ID            string            `json:"id"`
	ServiceID     string            `json:"service_id"`
	ProviderID    string            `json:"provider_id"`
	Client        wireClient        `json:"client"`
	StartDateTime string            `json:"start_datetime"`
	EndDateTime   string            `json:"end_datetime"`
	Status        string            `json:"status"`
	Additional    map[string]string `json:"additional_fields,omitempty"`
}

type wireCreateBooking struct {
	ServiceID  string            `json:"service_id"`
	ProviderID string            `json:"provider_id"`
	DateTime   string            `json:"datetime"`
	Client     wireClient        `json:"client"`
	Additional map[string]string `json:"additional_fields,omitempty"`
}

func fromWireBooking(w *wireBooking) *Booking {
	return &Booking{
		ID:            w.ID,
		ServiceID:     w.ServiceID,
		ProviderID:    w.ProviderID,
		ClientName:    w.Client.Name,
		ClientEmail:   w.Client.Email,
		ClientPhone:   w.Client.Phone,
		StartDateTime: w.StartDateTime,
		EndDateTime:   w.EndDateTime,
		Status:        w.Status,
		Additional:    w.Additional,
	}
}
