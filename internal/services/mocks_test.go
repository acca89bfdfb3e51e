package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/savdoai/console-api/internal/gateway"
	"github.com/savdoai/console-api/internal/models"
)

// MockBackendGateway is a testify mock of gateway.BackendGateway
type MockBackendGateway struct {
	mock.Mock
}

func (m *MockBackendGateway) Register(ctx context.Context, sub *models.RegistrationSubmission) (*gateway.Result, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Result), args.Error(1)
}

func (m *MockBackendGateway) Login(ctx context.Context, sub *models.LoginSubmission) (*gateway.Result, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Result), args.Error(1)
}

func (m *MockBackendGateway) SaveAIConfig(ctx context.Context, sub *models.AIConfigSubmission, authToken string) (*gateway.Result, error) {
	args := m.Called(ctx, sub, authToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Result), args.Error(1)
}

func (m *MockBackendGateway) ListTariffs(ctx context.Context) (*gateway.Result, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Result), args.Error(1)
}
