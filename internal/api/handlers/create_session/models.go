package create_session

// CreateSessionResponse HTTP response model
type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
}
