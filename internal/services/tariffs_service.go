package services

import (
	"context"
	"net/http"

	"github.com/savdoai/console-api/internal/cache"
	"github.com/savdoai/console-api/internal/gateway"
	"github.com/savdoai/console-api/internal/models"
	"github.com/savdoai/console-api/pkg/logger"
	"github.com/savdoai/console-api/pkg/metrics"
	"go.uber.org/zap"
)

// defaultTariffs is the embedded fallback served when the backend is
// unreachable. Stale default pricing is acceptable; a broken pricing page
// is not. Keep in sync with the backend's seeded tariff table.
var defaultTariffs = []models.TariffPlan{
	{
		ID:       1,
		Name:     "basic",
		Price:    199000,
		Currency: "UZS",
		Features: []string{
			"messages_limit_10000",
			"leads_limit_1000",
			"instagram_integration",
			"amocrm_integration",
			"telegram_integration",
			"task_automation",
			"ai_support_24_7",
			"multilingual_support",
			"analytics_panel",
		},
	},
	{
		ID:       2,
		Name:     "standard",
		Price:    399000,
		Currency: "UZS",
		Features: []string{
			"messages_limit_30000",
			"leads_limit_3000",
			"instagram_integration",
			"amocrm_integration",
			"telegram_integration",
			"task_automation",
			"ai_support_24_7",
			"multilingual_support",
			"analytics_panel",
			"priority_support",
			"unlimited_integrations",
		},
	},
	{
		ID:       3,
		Name:     "premium",
		Price:    599000,
		Currency: "UZS",
		Features: []string{
			"messages_limit_50000",
			"leads_limit_5000",
			"instagram_integration",
			"amocrm_integration",
			"telegram_integration",
			"task_automation",
			"ai_support_24_7",
			"multilingual_support",
			"analytics_panel",
			"account_management",
			"advanced_analytics",
			"custom_ai_training",
		},
	},
}

// TariffsService serves the tariff plan list: cached backend data when
// fresh, a live fetch on miss, and the embedded defaults when the backend
// is unreachable.
type TariffsService struct {
	gateway gateway.BackendGateway
	cache   *cache.TariffsCache
}

// NewTariffsService creates a new tariffs service instance
func NewTariffsService(gw gateway.BackendGateway, tariffsCache *cache.TariffsCache) *TariffsService {
	return &TariffsService{gateway: gw, cache: tariffsCache}
}

// List returns the tariff plans. Network failure degrades to the embedded
// default list, never an error: pricing must always render.
func (s *TariffsService) List(ctx context.Context) *models.Outcome {
	if payload, ok := s.cache.Get(); ok {
		return &models.Outcome{
			Status: http.StatusOK,
			Body:   models.TariffsResponse{Success: true, Data: payload},
		}
	}

	res, err := s.gateway.ListTariffs(ctx)
	if err != nil {
		metrics.TariffFallbacks.Inc()
		logger.Warn("Tariff fetch failed, serving embedded defaults", zap.Error(err))
		return &models.Outcome{
			Status: http.StatusOK,
			Body:   models.TariffsResponse{Success: true, Data: defaultTariffs},
		}
	}

	if !res.OK() {
		return &models.Outcome{
			Status: res.StatusCode,
			Body: models.TariffsResponse{
				Success: false,
				Error:   firstNonEmpty(res.Body.Error, res.Body.Message, models.MsgTariffsFailed),
			},
		}
	}

	s.cache.Set(res.Body.Data)

	return &models.Outcome{
		Status: http.StatusOK,
		Body:   models.TariffsResponse{Success: true, Data: res.Body.Data},
	}
}
