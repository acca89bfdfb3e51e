package models

import "encoding/json"

// RegisterRequest is a new-account submission as received from the frontend.
// Field content is validated in internal/validation, not via binding tags,
// because the contract fixes both the failure ordering and the messages.
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	CompanyName  string `json:"company_name"`
	Password     string `json:"password"`
	TariffPlanID int    `json:"tariff_plan_id"`
}

// RegistrationSubmission is the normalized payload forwarded to the backend:
// name/email/company trimmed, email lowercased, and the server-computed
// password_confirmation mirror attached. The frontend-only confirmPassword
// field never reaches the backend.
type RegistrationSubmission struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	CompanyName          string `json:"company_name"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	TariffPlanID         int    `json:"tariff_plan_id"`
}

// RegisterResponse is returned to the frontend. User and Errors are relayed
// verbatim from the backend (Laravel-style field error maps included).
type RegisterResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	User    json.RawMessage `json:"user,omitempty"`
	Token   string          `json:"token,omitempty"`
	Error   string          `json:"error,omitempty"`
	Errors  json.RawMessage `json:"errors,omitempty"`
}
