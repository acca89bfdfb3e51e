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

func TestLoginService_MissingCredentials(t *testing.T) {
	gw := new(MockBackendGateway)
	svc := NewLoginService(gw)

	out := svc.Login(context.Background(), &models.LoginRequest{Email: "aziz@example.com"})

	assert.Equal(t, http.StatusBadRequest, out.Status)
	assert.Equal(t, models.ErrorBody{Success: false, Error: models.MsgAllFieldsRequired}, out.Body)
	gw.AssertNotCalled(t, "Login")
}

func TestLoginService_Success(t *testing.T) {
	gw := new(MockBackendGateway)
	svc := NewLoginService(gw)

	gw.On("Login", mock.Anything, mock.MatchedBy(func(sub *models.LoginSubmission) bool {
		return sub.Email == "aziz@example.com" && sub.Password == "secret123"
	})).Return(&gateway.Result{
		StatusCode: http.StatusOK,
		Body:       gateway.Envelope{Success: true, Token: "jwt_token_y"},
	}, nil)

	out := svc.Login(context.Background(), &models.LoginRequest{
		Email:    " Aziz@Example.com ",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusOK, out.Status)
	assert.Equal(t, "jwt_token_y", out.Token)

	body, ok := out.Body.(models.LoginResponse)
	require.True(t, ok)
	assert.True(t, body.Success)
	gw.AssertExpectations(t)
}

func TestLoginService_RelaysRejection(t *testing.T) {
	gw := new(MockBackendGateway)
	svc := NewLoginService(gw)

	gw.On("Login", mock.Anything, mock.Anything).Return(&gateway.Result{
		StatusCode: http.StatusUnauthorized,
		Body:       gateway.Envelope{Success: false},
	}, nil)

	out := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "aziz@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, out.Status)
	assert.Empty(t, out.Token)
	body := out.Body.(models.LoginResponse)
	assert.Equal(t, models.MsgLoginFailed, body.Error)
}

func TestLoginService_BackendDown(t *testing.T) {
	gw := new(MockBackendGateway)
	svc := NewLoginService(gw)

	gw.On("Login", mock.Anything, mock.Anything).Return(nil, syscall.ECONNREFUSED)

	out := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "aziz@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusServiceUnavailable, out.Status)
	assert.Equal(t, models.ErrorBody{Success: false, Error: models.MsgBackendDown}, out.Body)
}
