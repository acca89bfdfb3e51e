package models

import "encoding/json"

// LoginRequest is a login form submission.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginSubmission is the normalized credential pair forwarded upstream.
type LoginSubmission struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned to the frontend.
type LoginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	User    json.RawMessage `json:"user,omitempty"`
	Token   string          `json:"token,omitempty"`
	Error   string          `json:"error,omitempty"`
	Errors  json.RawMessage `json:"errors,omitempty"`
}
