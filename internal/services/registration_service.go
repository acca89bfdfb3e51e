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

// RegistrationService validates new-account submissions and forwards them
// to the backend
type RegistrationService struct {
	gateway gateway.BackendGateway
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(gw gateway.BackendGateway) *RegistrationService {
	return &RegistrationService{gateway: gw}
}

// Register runs the registration pipeline: validate, normalize, forward,
// relay. The outcome is ready to send; its Token field, when set, is the
// backend session token the handler persists as the auth cookie.
func (s *RegistrationService) Register(ctx context.Context, req *models.RegisterRequest) *models.Outcome {
	sub, verr := validation.Registration(req)
	if verr != nil {
		metrics.Registrations.WithLabelValues("validation_failed").Inc()
		logger.Debug("Registration rejected by validation", zap.String("reason", verr.Message))
		return models.BadRequest(verr.Message)
	}

	res, err := s.gateway.Register(ctx, sub)
	if err != nil {
		metrics.Registrations.WithLabelValues("backend_unreachable").Inc()
		logger.Error("Registration backend call failed", zap.Error(err))
		return models.ServiceUnavailable(gateway.NetworkErrorMessage(err))
	}

	if !res.OK() {
		metrics.Registrations.WithLabelValues("backend_rejected").Inc()
		return &models.Outcome{
			Status: res.StatusCode,
			Body: models.RegisterResponse{
				Success: false,
				Error:   firstNonEmpty(res.Body.Error, res.Body.Message, models.MsgRegisterFailed),
				Errors:  res.Body.Errors,
			},
		}
	}

	metrics.Registrations.WithLabelValues("success").Inc()
	logger.Info("Registration forwarded successfully", zap.String("email", sub.Email))

	body := models.RegisterResponse{
		Success: true,
		Message: firstNonEmpty(res.Body.Message, models.MsgRegisterSuccess),
		User:    res.Body.User,
	}
	if res.Body.Token != "" {
		body.Token = res.Body.Token
	}

	return &models.Outcome{
		Status: http.StatusOK,
		Body:   body,
		Token:  res.Body.Token,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
