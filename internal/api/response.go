package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"patient_feedback_service/internal/services"
)

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

const (
	codeInvalidInput = "invalid_input"
	codeInvalidToken = "invalid_token"
	codeAlreadyVoted = "already_voted"
	codeNotFound     = "not_found"
	codeUnauthorized = "unauthorized"
	codeRateLimited  = "too_many_requests"
	codeInternal     = "internal_error"

	messageInternal = "internal server error"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{StatusCode: status, Error: code, Message: message})
}

// errorStatus maps a service error to its HTTP status, code and client-facing message.
// Unknown errors never expose their text.
func errorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest, codeInvalidInput, err.Error()
	case errors.Is(err, services.ErrUnknownToken):
		return http.StatusBadRequest, codeInvalidToken, "Invalid token"
	case errors.Is(err, services.ErrAlreadyVoted):
		return http.StatusConflict, codeAlreadyVoted, "Vote already exists for this token"
	case errors.Is(err, services.ErrAppointmentNotFound):
		return http.StatusNotFound, codeNotFound, "RDV not found"
	case errors.Is(err, services.ErrNoPatientEmail):
		return http.StatusUnprocessableEntity, codeInvalidInput, "RDV has no patient email"
	default:
		return http.StatusInternalServerError, codeInternal, messageInternal
	}
}
