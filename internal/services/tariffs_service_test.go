package services

import (
	"context"
	"encoding/json"
	"net/http"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/savdoai/console-api/internal/cache"
	"github.com/savdoai/console-api/internal/gateway"
	"github.com/savdoai/console-api/internal/models"
)

func newTariffsFixture() (*MockBackendGateway, *TariffsService) {
	gw := new(MockBackendGateway)
	return gw, NewTariffsService(gw, cache.NewTariffsCache(600))
}

func TestTariffsService_FetchesAndCaches(t *testing.T) {
	gw, svc := newTariffsFixture()

	payload := json.RawMessage(`[{"id":1,"name":"basic","price":199000}]`)
	gw.On("ListTariffs", mock.Anything).Return(&gateway.Result{
		StatusCode: http.StatusOK,
		Body:       gateway.Envelope{Success: true, Data: payload},
	}, nil).Once()

	out := svc.List(context.Background())
	assert.Equal(t, http.StatusOK, out.Status)

	body, ok := out.Body.(models.TariffsResponse)
	require.True(t, ok)
	assert.True(t, body.Success)

	// Second call must be served from the cache
	out = svc.List(context.Background())
	assert.Equal(t, http.StatusOK, out.Status)

	body, ok = out.Body.(models.TariffsResponse)
	require.True(t, ok)
	raw, ok := body.Data.(json.RawMessage)
	require.True(t, ok)
	assert.JSONEq(t, string(payload), string(raw))

	gw.AssertNumberOfCalls(t, "ListTariffs", 1)
}

func TestTariffsService_BackendDownServesDefaults(t *testing.T) {
	gw, svc := newTariffsFixture()

	gw.On("ListTariffs", mock.Anything).Return(nil, syscall.ECONNREFUSED)

	out := svc.List(context.Background())

	assert.Equal(t, http.StatusOK, out.Status)

	body, ok := out.Body.(models.TariffsResponse)
	require.True(t, ok)
	assert.True(t, body.Success)

	plans, ok := body.Data.([]models.TariffPlan)
	require.True(t, ok)
	require.Len(t, plans, 3)
	assert.Equal(t, "basic", plans[0].Name)
	assert.Equal(t, float64(199000), plans[0].Price)
	assert.Equal(t, "standard", plans[1].Name)
	assert.Equal(t, float64(399000), plans[1].Price)
	assert.Equal(t, "premium", plans[2].Name)
	assert.Equal(t, float64(599000), plans[2].Price)
	assert.Equal(t, "UZS", plans[0].Currency)
}

func TestTariffsService_DefaultsAreNotCached(t *testing.T) {
	gw, svc := newTariffsFixture()

	gw.On("ListTariffs", mock.Anything).Return(nil, syscall.ECONNREFUSED).Once()
	gw.On("ListTariffs", mock.Anything).Return(&gateway.Result{
		StatusCode: http.StatusOK,
		Body:       gateway.Envelope{Success: true, Data: json.RawMessage(`[]`)},
	}, nil).Once()

	_ = svc.List(context.Background())
	_ = svc.List(context.Background())

	gw.AssertNumberOfCalls(t, "ListTariffs", 2)
}

func TestTariffsService_RelaysBackendRejection(t *testing.T) {
	gw, svc := newTariffsFixture()

	gw.On("ListTariffs", mock.Anything).Return(&gateway.Result{
		StatusCode: http.StatusInternalServerError,
		Body:       gateway.Envelope{Success: false, Error: "database gone"},
	}, nil)

	out := svc.List(context.Background())

	assert.Equal(t, http.StatusInternalServerError, out.Status)

	body, ok := out.Body.(models.TariffsResponse)
	require.True(t, ok)
	assert.False(t, body.Success)
	assert.Equal(t, "database gone", body.Error)
}

func TestTariffsService_RejectionWithoutTextUsesDefaultMessage(t *testing.T) {
	gw, svc := newTariffsFixture()

	gw.On("ListTariffs", mock.Anything).Return(&gateway.Result{
		StatusCode: http.StatusBadGateway,
		Body:       gateway.Envelope{Success: false},
	}, nil)

	out := svc.List(context.Background())

	body := out.Body.(models.TariffsResponse)
	assert.Equal(t, models.MsgTariffsFailed, body.Error)
}
