package container

import (
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dcastillo/tablero-recursos/internal/dashboard"
	"github.com/dcastillo/tablero-recursos/internal/insight"
	"github.com/dcastillo/tablero-recursos/internal/seed"
)

type Container struct {
	DashboardContainer *dashboard.Container
	InsightContainer   *insight.Container
}

func New() *Container {
	store := seed.New(rand.New(rand.NewSource(seedValue())))

	dashboardContainer := dashboard.NewContainer(store)
	insightContainer := insight.NewContainer(dashboardContainer.Service)

	return &Container{
		DashboardContainer: dashboardContainer,
		InsightContainer:   insightContainer,
	}
}

// seedValue reads SEED for reproducible demo data; otherwise every start
// gets a fresh dataset.
func seedValue() int64 {
	if raw := os.Getenv("SEED"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			logrus.WithError(err).Warn("Invalid SEED value, falling back to time-based seed")
		} else {
			return v
		}
	}
	return time.Now().UnixNano()
}
