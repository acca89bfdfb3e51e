package models

import "net/http"

// Outcome is a ready-to-send handler response: an HTTP status plus the JSON
// body. Token, when set, is the upstream session token the handler persists
// as the auth cookie before writing the body.
type Outcome struct {
	Status int
	Body   any
	Token  string
}

// ErrorBody is the uniform failure envelope for every endpoint.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// BadRequest builds a 400 outcome with a localized message
func BadRequest(message string) *Outcome {
	return &Outcome{
		Status: http.StatusBadRequest,
		Body:   ErrorBody{Success: false, Error: message},
	}
}

// ServiceUnavailable builds a 503 outcome for upstream transport failures
func ServiceUnavailable(message string) *Outcome {
	return &Outcome{
		Status: http.StatusServiceUnavailable,
		Body:   ErrorBody{Success: false, Error: message},
	}
}
