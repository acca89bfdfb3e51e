package services

import (
	"context"
	"net/http"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/savdoai/console-api/internal/gateway"
	"github.com/savdoai/console-api/internal/models"
)

func validAIConfig() *models.AIConfigRequest {
	return &models.AIConfigRequest{
		AIContext: "Siz do'konimizning savollariga javob beradigan yordamchisiz.",
		Embeddings: []any{
			"Dostavka 2 kun ichida amalga oshiriladi",
		},
	}
}

func TestAIConfigService_ValidationFailureSkipsBackend(t *testing.T) {
	gw := new(MockBackendGateway)
	svc := NewAIConfigService(gw)

	req := validAIConfig()
	req.AIContext = "too short"

	out := svc.SaveConfig(context.Background(), req, "token-1")

	assert.Equal(t, http.StatusBadRequest, out.Status)
	assert.Equal(t, models.ErrorBody{Success: false, Error: models.MsgAIContextTooShort}, out.Body)
	gw.AssertNotCalled(t, "SaveAIConfig")
}

func TestAIConfigService_ForwardsWithAuthToken(t *testing.T) {
	gw := new(MockBackendGateway)
	svc := NewAIConfigService(gw)

	gw.On("SaveAIConfig", mock.Anything, mock.MatchedBy(func(sub *models.AIConfigSubmission) bool {
		return len(sub.Embeddings) == 1
	}), "token-1").Return(&gateway.Result{
		StatusCode: http.StatusOK,
		Body:       gateway.Envelope{Success: true},
	}, nil)

	out := svc.SaveConfig(context.Background(), validAIConfig(), "token-1")

	assert.Equal(t, http.StatusOK, out.Status)

	body, ok := out.Body.(models.AIConfigResponse)
	require.True(t, ok)
	assert.True(t, body.Success)
	assert.Equal(t, models.MsgAIConfigSaved, body.Message)
	gw.AssertExpectations(t)
}

func TestAIConfigService_RelaysUnauthorized(t *testing.T) {
	gw := new(MockBackendGateway)
	svc := NewAIConfigService(gw)

	gw.On("SaveAIConfig", mock.Anything, mock.Anything, mock.Anything).Return(&gateway.Result{
		StatusCode: http.StatusUnauthorized,
		Body:       gateway.Envelope{Success: false, Error: "Authorization token kerak"},
	}, nil)

	out := svc.SaveConfig(context.Background(), validAIConfig(), "stale-token")

	assert.Equal(t, http.StatusUnauthorized, out.Status)
	body := out.Body.(models.AIConfigResponse)
	assert.Equal(t, "Authorization token kerak", body.Error)
}

func TestAIConfigService_BackendDown(t *testing.T) {
	gw := new(MockBackendGateway)
	svc := NewAIConfigService(gw)

	gw.On("SaveAIConfig", mock.Anything, mock.Anything, mock.Anything).Return(nil, syscall.ECONNREFUSED)

	out := svc.SaveConfig(context.Background(), validAIConfig(), "token-1")

	assert.Equal(t, http.StatusServiceUnavailable, out.Status)
	assert.Equal(t, models.ErrorBody{Success: false, Error: models.MsgBackendDown}, out.Body)
}

func TestAIConfigService_GetConfigReportsUnconfigured(t *testing.T) {
	gw := new(MockBackendGateway)
	svc := NewAIConfigService(gw)

	out := svc.GetConfig(context.Background(), "token-1")

	assert.Equal(t, http.StatusOK, out.Status)

	body, ok := out.Body.(models.AIConfigStateResponse)
	require.True(t, ok)
	assert.True(t, body.Success)
	assert.False(t, body.Data.IsConfigured)
	assert.NotNil(t, body.Data.Embeddings)
	assert.Empty(t, body.Data.Embeddings)
	gw.AssertNotCalled(t, "SaveAIConfig")
}
