package server

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// setupRoutes - setups http routes
func (a *API) setupRoutes() {
	// System Health
	a.mux.HandleFunc("/health", a.routes.health.HealthCheck)

	a.setupSwaggerRoutes()
	a.setupMetricsRoute()

	a.setupRequestRoutes()
	a.setupTripRoutes()
	a.setupDriverRoutes()
	a.setupNotificationRoutes()
	a.setupAuthRoutes()
}

func (a *API) setupRequestRoutes() {
	a.mux.HandleFunc("GET /api/requests", a.routes.request.List) // Optional ?status= filter
	a.mux.HandleFunc("POST /api/requests", a.routes.request.Create)
	a.mux.HandleFunc("GET /api/requests/{id}", a.routes.request.Get)
	a.mux.HandleFunc("PUT /api/requests/{id}", a.routes.request.Update)
	a.mux.HandleFunc("POST /api/requests/{id}/assign", a.routes.request.Assign)
	a.mux.HandleFunc("POST /api/requests/{id}/decline", a.routes.request.Decline)
	a.mux.HandleFunc("POST /api/requests/{id}/start", a.routes.request.Start)
	a.mux.HandleFunc("POST /api/requests/{id}/cancel", a.routes.request.Cancel)
}

func (a *API) setupTripRoutes() {
	a.mux.HandleFunc("GET /api/trips/active", a.routes.trip.ListActive)
	a.mux.HandleFunc("POST /api/trips/{id}/complete", a.routes.trip.Complete)
}

func (a *API) setupDriverRoutes() {
	a.mux.HandleFunc("GET /api/drivers", a.routes.driver.List)
	a.mux.HandleFunc("POST /api/drivers", a.routes.driver.Register)
	a.mux.Handle("POST /api/drivers/{id}/approve", a.m.RequireOperator(a.routes.driver.Approve)) // Operator decision
	a.mux.Handle("POST /api/drivers/{id}/reject", a.m.RequireOperator(a.routes.driver.Reject))   // Operator decision
	a.mux.HandleFunc("GET /api/driver-stats", a.routes.driver.Stats)

	a.mux.HandleFunc("GET /ws/drivers/{driverName}", a.routes.driverWS.Handle) // WebSocket push channel
}

func (a *API) setupNotificationRoutes() {
	a.mux.HandleFunc("GET /api/notifications", a.routes.notification.ListOps)
	a.mux.HandleFunc("PUT /api/notifications/{id}/read", a.routes.notification.MarkOpsRead)
	a.mux.HandleFunc("GET /api/driver-notifications/{driverName}", a.routes.notification.ListDriver)
	a.mux.HandleFunc("PUT /api/driver-notifications/{id}/read", a.routes.notification.MarkDriverRead)
}

func (a *API) setupAuthRoutes() {
	a.mux.HandleFunc("POST /api/auth/login", a.routes.auth.Login)
	a.mux.Handle("POST /api/initialize", a.m.RequireOperator(a.routes.seed.Initialize)) // Seed sample data
}

// setupSwaggerRoutes configures the Swagger UI endpoint
func (a *API) setupSwaggerRoutes() {
	a.mux.HandleFunc("/swagger/", httpSwagger.Handler())
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func (a *API) setupMetricsRoute() {
	a.mux.Handle("/metrics", promhttp.Handler())
}
