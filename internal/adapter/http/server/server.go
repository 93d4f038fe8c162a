package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/teleka/teleka-taxi/config"
	"github.com/teleka/teleka-taxi/internal/adapter/http/handler"
	"github.com/teleka/teleka-taxi/internal/adapter/http/middleware"
	wshandler "github.com/teleka/teleka-taxi/internal/adapter/http/ws"
	"github.com/teleka/teleka-taxi/pkg/logger"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
	"github.com/teleka/teleka-taxi/pkg/wsbus"
)

const serverIPAddress = "%s:%s"

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	request      *handler.Request
	trip         *handler.Trip
	driver       *handler.Driver
	notification *handler.Notification
	auth         *handler.Auth
	seed         *handler.Seed
	health       *handler.Health
	driverWS     *wshandler.DriverSocket
}

type Services struct {
	Request      handler.RequestService
	Assignment   handler.AssignmentService
	Trips        handler.TripLister
	Driver       handler.DriverService
	Stats        handler.StatsGetter
	Notification handler.NotificationService
	Auth         interface {
		handler.AuthService
		middleware.AuthService
	}
	Seed handler.SeedService
}

// TripCompleter is satisfied by the request service, the complete route
// lives under /api/trips.
type TripCompleter = handler.TripCompleter

func New(cfg config.Config, svc Services, completer TripCompleter, hub *wsbus.Hub, log logger.Logger) (*API, error) {
	if svc.Auth == nil {
		return nil, errors.New("auth service is required")
	}

	addr := fmt.Sprintf(serverIPAddress, cfg.Server.Host, cfg.Server.Port)

	routes := &handlers{
		request:      handler.NewRequest(svc.Request, svc.Assignment, log),
		trip:         handler.NewTrip(svc.Trips, completer, log),
		driver:       handler.NewDriver(svc.Driver, svc.Stats, log),
		notification: handler.NewNotification(svc.Notification, log),
		auth:         handler.NewAuth(svc.Auth, log),
		seed:         handler.NewSeed(svc.Seed, log),
		health:       handler.NewHealth("teleka-taxi", log),
		driverWS:     wshandler.NewDriverSocket(hub, log),
	}

	mid := middleware.NewMiddleware(svc.Auth, cfg.Server.CORSOrigin, log)

	api := &API{
		mux:    http.NewServeMux(),
		routes: routes,
		m:      mid,
		addr:   addr,
		cfg:    cfg,
		log:    log,
	}

	api.server = &http.Server{
		Addr:    api.addr,
		Handler: api.withMiddleware(),
	}

	api.setupRoutes()

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.CORS(a.m.Logging(a.m.Metrics(a.m.Auth(a.mux))))))
}
