package insight

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/dcastillo/tablero-recursos/internal/dashboard"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(dashboardService dashboard.Service) *Container {
	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		// Insights degrade to the fallback message; the dashboard itself
		// does not depend on the model being reachable.
		logrus.WithError(err).Warn("Gemini provider unavailable, insights will fail closed")
		provider = nil
	}

	service := NewService(provider)
	handler := NewHandler(service, dashboardService)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
