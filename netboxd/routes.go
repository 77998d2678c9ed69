package main

import (
	"embed"
	"net/http"

	metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/go-http-metrics/middleware"
	middlewarestd "github.com/slok/go-http-metrics/middleware/std"

	"github.com/team-telnyx/netbox/netboxd/config"
	"github.com/team-telnyx/netbox/netboxd/handlers"
)

//go:embed assets/*
var assetFS embed.FS

var mdlw middleware.Middleware

func healthCheck(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusNoContent)
}

type route struct {
	pattern string
	id      string
	handler http.Handler
}

func routeTable() []route {
	return []route{
		{"GET /", "/", handlers.NewHomeHandler()},
		{"GET /home", "/home", handlers.NewHomeHandler()},

		{"GET /providers", "/providers", handlers.NewProvidersHandler()},
		{"POST /providers", "/providers", handlers.NewProvidersHandler()},
		{"GET /provider/{slug}", "/provider/:slug", handlers.NewProviderHandler()},
		{"POST /provider/{slug}", "/provider/:slug", handlers.NewProviderHandler()},
		{"DELETE /provider/{slug}", "/provider/:slug", handlers.NewProviderHandler()},

		{"GET /circuit-types", "/circuit-types", handlers.NewCircuitTypesHandler()},
		{"POST /circuit-types", "/circuit-types", handlers.NewCircuitTypesHandler()},
		{"GET /circuit-type/{slug}", "/circuit-type/:slug", handlers.NewCircuitTypeHandler()},
		{"POST /circuit-type/{slug}", "/circuit-type/:slug", handlers.NewCircuitTypeHandler()},
		{"DELETE /circuit-type/{slug}", "/circuit-type/:slug", handlers.NewCircuitTypeHandler()},

		{"GET /circuits", "/circuits", handlers.NewCircuitsHandler()},
		{"POST /circuits", "/circuits", handlers.NewCircuitsHandler()},
		{"GET /circuits/import", "/circuits/import", handlers.NewCircuitImportHandler()},
		{"POST /circuits/import", "/circuits/import", handlers.NewCircuitImportHandler()},
		{"GET /circuit/{id}", "/circuit/:id", handlers.NewCircuitHandler()},
		{"POST /circuit/{id}", "/circuit/:id", handlers.NewCircuitHandler()},
		{"DELETE /circuit/{id}", "/circuit/:id", handlers.NewCircuitHandler()},

		{
			"GET /circuit/{id}/terminations/swap",
			"/circuit/:id/terminations/swap",
			handlers.NewSwapHandler(),
		},
		{
			"POST /circuit/{id}/terminations/swap",
			"/circuit/:id/terminations/swap",
			handlers.NewSwapHandler(),
		},
		{
			"GET /circuit/{id}/termination/{side}/edit",
			"/circuit/:id/termination/:side/edit",
			handlers.NewTerminationHandler(),
		},
		{
			"POST /circuit/{id}/termination/{side}/edit",
			"/circuit/:id/termination/:side/edit",
			handlers.NewTerminationHandler(),
		},
		{
			"DELETE /circuit/{id}/termination/{side}",
			"/circuit/:id/termination/:side",
			handlers.NewTerminationHandler(),
		},

		{"GET /assets/", "/assets/", http.FileServerFS(assetFS)},

		{"GET /api/providers", "/api/providers", handlers.NewAPIProvidersHandler()},
		{"GET /api/circuit-types", "/api/circuit-types", handlers.NewAPICircuitTypesHandler()},
		{"GET /api/circuits", "/api/circuits", handlers.NewAPICircuitsHandler()},
		{"GET /api/circuit/{id}", "/api/circuit/:id", handlers.NewAPICircuitHandler()},
		{
			"POST /api/circuit/{id}/terminations/swap",
			"/api/circuit/:id/terminations/swap",
			handlers.NewAPISwapHandler(),
		},
	}
}

func setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthCheck)

	if config.Config.Metrics.Enabled {
		mdlw = middleware.New(middleware.Config{
			Recorder: metrics.NewRecorder(metrics.Config{}),
		})

		for _, aRoute := range routeTable() {
			mux.Handle(aRoute.pattern, HTTPLogger(aRoute.id, middlewarestd.Handler(aRoute.id, mdlw, aRoute.handler)))
		}
	} else {
		for _, aRoute := range routeTable() {
			mux.Handle(aRoute.pattern, HTTPLogger(aRoute.id, aRoute.handler))
		}
	}

	return mux
}
