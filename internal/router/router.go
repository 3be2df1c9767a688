package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dcastillo/tablero-recursos/internal/dashboard"
	"github.com/dcastillo/tablero-recursos/internal/insight"
	"github.com/dcastillo/tablero-recursos/internal/middlewares"
)

type RouterConfig struct {
	DashboardHandler *dashboard.Handler
	InsightHandler   *insight.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/insights", func(r chi.Router) {
		r.Mount("/", insight.Routes(cfg.InsightHandler))
	})

	r.Mount("/", dashboard.Routes(cfg.DashboardHandler))

	return r
}
