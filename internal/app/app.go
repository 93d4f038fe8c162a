package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/teleka/teleka-taxi/config"
	"github.com/teleka/teleka-taxi/internal/adapter/http/server"
	"github.com/teleka/teleka-taxi/internal/adapter/jsonstore"
	repo "github.com/teleka/teleka-taxi/internal/adapter/postgres"
	rabbitadapter "github.com/teleka/teleka-taxi/internal/adapter/rabbit"
	"github.com/teleka/teleka-taxi/internal/service/assignment"
	"github.com/teleka/teleka-taxi/internal/service/auth"
	"github.com/teleka/teleka-taxi/internal/service/driverreg"
	"github.com/teleka/teleka-taxi/internal/service/notify"
	"github.com/teleka/teleka-taxi/internal/service/request"
	"github.com/teleka/teleka-taxi/internal/service/seed"
	"github.com/teleka/teleka-taxi/pkg/logger"
	"github.com/teleka/teleka-taxi/pkg/postgres"
	"github.com/teleka/teleka-taxi/pkg/rabbit"
	"github.com/teleka/teleka-taxi/pkg/trm"
	"github.com/teleka/teleka-taxi/pkg/wsbus"
)

// App assembles the selected storage backend, the optional broker and the
// HTTP server into one runnable unit.
type App struct {
	httpServer *server.API
	postgresDB *postgres.PostgreDB
	rabbitMQ   *rabbit.RabbitMQ
	hub        *wsbus.Hub

	cfg config.Config
	log logger.Logger
}

func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	app := &App{
		cfg: cfg,
		log: log,
		hub: wsbus.NewHub(log),
	}

	stores, err := app.initStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to setup storage: %w", err)
	}

	publisher, err := app.initPublisher(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to setup broker: %w", err)
	}

	notifySvc := notify.NewService(stores.notifications, app.hub, publisher, log)
	requestSvc := request.NewService(stores.requests, stores.trips, stores.drivers, notifySvc, log)
	assignSvc := assignment.NewService(stores.requests, stores.drivers, stores.trips, notifySvc, cfg.Dispatch.DefaultFare, log)
	driverSvc := driverreg.NewService(stores.drivers, log)
	authSvc := auth.NewService(cfg.Auth.Username, cfg.Auth.Password, cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, log)
	seedSvc := seed.NewService(stores.requests, stores.drivers, stores.trips, stores.stats, log)

	httpServer, err := server.New(cfg, server.Services{
		Request:      requestSvc,
		Assignment:   assignSvc,
		Trips:        stores.trips,
		Driver:       driverSvc,
		Stats:        stores.stats,
		Notification: notifySvc,
		Auth:         authSvc,
		Seed:         seedSvc,
	}, requestSvc, app.hub, log)
	if err != nil {
		return nil, fmt.Errorf("failed to setup http server: %w", err)
	}
	app.httpServer = httpServer

	return app, nil
}

// stores bundles the repositories behind backend-neutral interfaces, both
// the flat-file store and the Postgres adapter satisfy them.
type stores struct {
	requests      requestStore
	drivers       driverStore
	trips         tripStore
	notifications notify.NotificationRepo
	stats         statsStore
}

func (a *App) initStores(ctx context.Context) (*stores, error) {
	switch a.cfg.Store.Driver {
	case config.StoreDriverFile:
		store, err := jsonstore.New(a.cfg.Store.Dir, a.log)
		if err != nil {
			return nil, err
		}
		return &stores{
			requests:      jsonstore.NewRequestRepo(store),
			drivers:       jsonstore.NewDriverRepo(store),
			trips:         jsonstore.NewTripRepo(store),
			notifications: jsonstore.NewNotificationRepo(store),
			stats:         jsonstore.NewStatsRepo(store),
		}, nil

	case config.StoreDriverPostgres:
		db, err := postgres.New(ctx, a.cfg.Database.GetDSN(), postgres.Options{
			MaxConns:        a.cfg.Database.MaxConns,
			MinConns:        a.cfg.Database.MinConns,
			MaxConnLifetime: a.cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: a.cfg.Database.MaxConnIdleTime,
		})
		if err != nil {
			return nil, err
		}
		a.postgresDB = db

		txm := trm.New(db.Pool)
		return &stores{
			requests:      repo.NewRequestRepo(db.Pool, txm),
			drivers:       repo.NewDriverRepo(db.Pool, txm),
			trips:         repo.NewTripRepo(db.Pool, txm),
			notifications: repo.NewNotificationRepo(db.Pool, txm),
			stats:         repo.NewStatsRepo(db.Pool, txm),
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", a.cfg.Store.Driver)
	}
}

func (a *App) initPublisher(ctx context.Context) (notify.EventPublisher, error) {
	if !a.cfg.RabbitMQ.Enabled {
		return nil, nil
	}

	client, err := rabbit.New(ctx, a.cfg.RabbitMQ.GetDSN(), a.log)
	if err != nil {
		return nil, err
	}
	a.rabbitMQ = client

	return rabbitadapter.NewEventPublisher(client, a.cfg.RabbitMQ.Exchange), nil
}

func (a *App) Run(ctx context.Context) error {
	if a.httpServer == nil {
		return errors.New("http server not initialized")
	}

	errCh := make(chan error, 1)

	a.httpServer.Run(ctx, errCh)
	defer func() {
		a.close(ctx)
		a.log.Info(ctx, "application closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	a.log.Info(ctx, "application started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		a.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (a *App) close(ctx context.Context) {
	if a.httpServer != nil {
		if err := a.httpServer.Stop(ctx); err != nil {
			a.log.Warn(ctx, "failed to gracefully close http server", "error", err.Error())
		}
	}

	a.hub.Close()

	if a.rabbitMQ != nil {
		if err := a.rabbitMQ.Close(ctx); err != nil {
			a.log.Warn(ctx, "failed to gracefully close rabbitMQ", "error", err.Error())
		}
	}

	if a.postgresDB != nil && a.postgresDB.Pool != nil {
		a.postgresDB.Pool.Close()
	}
}
