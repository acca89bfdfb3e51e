package services

import (
	"context"

	"github.com/savdoai/console-api/internal/models"
)

// RegistrationServiceInterface defines the registration business logic.
type RegistrationServiceInterface interface {
	Register(ctx context.Context, req *models.RegisterRequest) *models.Outcome
}

// LoginServiceInterface defines the login proxy logic.
type LoginServiceInterface interface {
	Login(ctx context.Context, req *models.LoginRequest) *models.Outcome
}

// AIConfigServiceInterface defines the AI assistant configuration logic.
type AIConfigServiceInterface interface {
	SaveConfig(ctx context.Context, req *models.AIConfigRequest, authToken string) *models.Outcome
	GetConfig(ctx context.Context, authToken string) *models.Outcome
}

// TariffsServiceInterface defines the tariff listing logic.
type TariffsServiceInterface interface {
	List(ctx context.Context) *models.Outcome
}
