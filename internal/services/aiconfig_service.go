package services

import (
	"context"
	"net/http"

	"github.com/savdoai/console-api/internal/gateway"
	"github.com/savdoai/console-api/internal/models"
	"github.com/savdoai/console-api/internal/validation"
	"github.com/savdoai/console-api/pkg/logger"
	"github.com/savdoai/console-api/pkg/metrics"
	"go.uber.org/zap"
)

// AIConfigService validates AI assistant configuration submissions and
// forwards them to the backend with the caller's bearer token.
type AIConfigService struct {
	gateway gateway.BackendGateway
}

// NewAIConfigService creates a new AI config service instance
func NewAIConfigService(gw gateway.BackendGateway) *AIConfigService {
	return &AIConfigService{gateway: gw}
}

// SaveConfig runs the AI configuration pipeline: probe shape, trim and
// filter, validate lengths, forward with auth, relay the verdict.
func (s *AIConfigService) SaveConfig(ctx context.Context, req *models.AIConfigRequest, authToken string) *models.Outcome {
	sub, verr := validation.AIConfig(req)
	if verr != nil {
		metrics.AIConfigSaves.WithLabelValues("validation_failed").Inc()
		logger.Debug("AI config rejected by validation", zap.String("reason", verr.Message))
		return models.BadRequest(verr.Message)
	}

	res, err := s.gateway.SaveAIConfig(ctx, sub, authToken)
	if err != nil {
		metrics.AIConfigSaves.WithLabelValues("backend_unreachable").Inc()
		logger.Error("AI config backend call failed", zap.Error(err))
		return models.ServiceUnavailable(gateway.NetworkErrorMessage(err))
	}

	if !res.OK() {
		metrics.AIConfigSaves.WithLabelValues("backend_rejected").Inc()
		return &models.Outcome{
			Status: res.StatusCode,
			Body: models.AIConfigResponse{
				Success: false,
				Error:   firstNonEmpty(res.Body.Error, res.Body.Message, models.MsgAIConfigFailed),
			},
		}
	}

	metrics.AIConfigSaves.WithLabelValues("success").Inc()
	logger.Info("AI config forwarded successfully",
		zap.Int("embeddings", len(sub.Embeddings)),
	)

	return &models.Outcome{
		Status: http.StatusOK,
		Body: models.AIConfigResponse{
			Success: true,
			Message: firstNonEmpty(res.Body.Message, models.MsgAIConfigSaved),
		},
	}
}

// GetConfig returns the current assistant configuration view. The backend
// has no config read endpoint yet, so this always reports an unconfigured
// assistant. The auth token is accepted now so the signature survives the
// eventual wiring.
// TODO: proxy to the backend config read endpoint once it ships.
func (s *AIConfigService) GetConfig(_ context.Context, _ string) *models.Outcome {
	return &models.Outcome{
		Status: http.StatusOK,
		Body: models.AIConfigStateResponse{
			Success: true,
			Data: models.AIConfigState{
				CompanyDescription: "",
				AIContext:          "",
				Embeddings:         []string{},
				IsConfigured:       false,
			},
		},
	}
}
