package insight

import (
	"context"

	"github.com/dcastillo/tablero-recursos/internal/config"
	"github.com/dcastillo/tablero-recursos/internal/dashboard"
)

// FallbackMessage is the fixed user-facing text substituted whenever the
// model call fails. The failure never leaves this package as an error:
// the insight boundary fails closed.
const FallbackMessage = "Hubo un error al contactar a la IA. Por favor, inténtalo de nuevo más tarde."

// ExtraContext carries the per-employee details the slack_message topic
// interpolates.
type ExtraContext struct {
	EmployeeName    string
	WorkloadMinutes int
}

type Service interface {
	GetInsight(ctx context.Context, d dashboard.DashboardData, topic Topic, extra ExtraContext) string
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GetInsight(ctx context.Context, d dashboard.DashboardData, topic Topic, extra ExtraContext) string {
	log := config.WithContext(ctx)

	if s.provider == nil {
		log.Warn("Insight provider not configured, returning fallback message")
		return FallbackMessage
	}

	text, err := s.provider.SendPrompt(ctx, BuildPrompt(d, topic, extra))
	if err != nil {
		log.WithError(err).WithField("topic", topic).Error("Failed to fetch AI insight")
		return FallbackMessage
	}

	log.WithField("topic", topic).Info("AI insight generated")
	return text
}
