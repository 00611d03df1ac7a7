package submit_booking

// SubmitResponse HTTP response model
type SubmitResponse struct {
	Status string `json:"status"`
}
