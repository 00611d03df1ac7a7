package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondBadRequest writes a 400 with the given message.
func RespondBadRequest(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// RespondNotFound writes a 404 with the given message.
func RespondNotFound(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: msg})
}

// RespondConflict writes a 409 with the given message.
func RespondConflict(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Error: msg})
}

// RespondBadGateway writes a 502 with the given message.
func RespondBadGateway(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusBadGateway, ErrorResponse{Error: msg})
}

// RespondInternalError writes a 500 with a generic message.
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// DecodeJSON decodes a request body, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
