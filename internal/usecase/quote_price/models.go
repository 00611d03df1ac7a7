package quote_price

// Request identifies the service and session length to quote.
type Request struct {
	ServiceID string
	Hours     int // ignored for per-track services
}

// Response is the computed quote. Quotes are derived on demand and never
// cached across field changes.
type Response struct {
	ServiceID   string
	ServiceName string
	Price       float64
	PerTrack    bool // price is per track, not for the session
	Discounted  bool // the discounted mid-length recording tier applied
}
