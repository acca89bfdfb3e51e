package models

// AIConfigRequest is the raw AI-assistant configuration body. The fields are
// deliberately untyped: the contract distinguishes a malformed JSON document
// from a well-formed one carrying wrong field types, so the shape probe has
// to happen after decoding.
type AIConfigRequest struct {
	CompanyID  any `json:"company_id"`
	AIContext  any `json:"ai_context"`
	Embeddings any `json:"embeddings"`
}

// AIConfigSubmission is the trimmed, filtered payload forwarded upstream.
type AIConfigSubmission struct {
	AIContext  string   `json:"ai_context"`
	Embeddings []string `json:"embeddings"`
	CompanyID  any      `json:"company_id,omitempty"`
}

// AIConfigResponse is returned to the frontend on save.
type AIConfigResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AIConfigState is the read-side view of the assistant configuration.
// There is no local store: reads always report an unconfigured assistant
// until the backend grows a config read endpoint.
type AIConfigState struct {
	CompanyDescription string   `json:"company_description"`
	AIContext          string   `json:"ai_context"`
	Embeddings         []string `json:"embeddings"`
	IsConfigured       bool     `json:"is_configured"`
}

// AIConfigStateResponse wraps the read-side view.
type AIConfigStateResponse struct {
	Success bool          `json:"success"`
	Data    AIConfigState `json:"data"`
}
