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

// LoginService proxies login submissions to the backend. Credential checks
// are entirely the backend's job; only presence is validated here.
type LoginService struct {
	gateway gateway.BackendGateway
}

// NewLoginService creates a new login service instance
func NewLoginService(gw gateway.BackendGateway) *LoginService {
	return &LoginService{gateway: gw}
}

// Login forwards a credential pair and relays the backend's verdict
func (s *LoginService) Login(ctx context.Context, req *models.LoginRequest) *models.Outcome {
	sub, verr := validation.Login(req)
	if verr != nil {
		metrics.LoginAttempts.WithLabelValues("validation_failed").Inc()
		return models.BadRequest(verr.Message)
	}

	res, err := s.gateway.Login(ctx, sub)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("backend_unreachable").Inc()
		logger.Error("Login backend call failed", zap.Error(err))
		return models.ServiceUnavailable(gateway.NetworkErrorMessage(err))
	}

	if !res.OK() {
		metrics.LoginAttempts.WithLabelValues("backend_rejected").Inc()
		return &models.Outcome{
			Status: res.StatusCode,
			Body: models.LoginResponse{
				Success: false,
				Error:   firstNonEmpty(res.Body.Error, res.Body.Message, models.MsgLoginFailed),
				Errors:  res.Body.Errors,
			},
		}
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	logger.Info("Login forwarded successfully", zap.String("email", sub.Email))

	body := models.LoginResponse{
		Success: true,
		Message: res.Body.Message,
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
