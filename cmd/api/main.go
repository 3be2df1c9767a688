package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/sirupsen/logrus"

	"github.com/dcastillo/tablero-recursos/internal/config"
	"github.com/dcastillo/tablero-recursos/internal/container"
	"github.com/dcastillo/tablero-recursos/internal/router"
)

func main() {
	config.Init()

	c := container.New()
	r := router.New(router.RouterConfig{
		DashboardHandler: c.DashboardContainer.Handler,
		InsightHandler:   c.InsightContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.WithField("port", port).Info("Starting HTTP server")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("HTTP server stopped")
	}
}
