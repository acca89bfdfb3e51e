package models

// TariffPlan is a pricing tier as stored by the backend.
type TariffPlan struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	Features []string `json:"features"`
}

// TariffsResponse wraps the tariff list. Data is either the backend's raw
// payload (passthrough) or the embedded default list on fallback.
type TariffsResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
