// Package server initializes and runs the FolderForge API server.
// It wires the repositories, domain services and the HTTP router, and
// handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/folderforge/folderforge/internal/logging"
	"github.com/folderforge/folderforge/internal/server/billing"
	"github.com/folderforge/folderforge/internal/server/catalog"
	"github.com/folderforge/folderforge/internal/server/config"
	"github.com/folderforge/folderforge/internal/server/content"
	"github.com/folderforge/folderforge/internal/server/httpapi"
	"github.com/folderforge/folderforge/internal/server/mediaproxy"
	"github.com/folderforge/folderforge/internal/server/plans"
	"github.com/folderforge/folderforge/internal/server/seed"
	"github.com/folderforge/folderforge/internal/server/shared/db"
	"github.com/folderforge/folderforge/internal/server/uploads"
	"github.com/folderforge/folderforge/internal/server/users"
)

const shutdownTimeout = 10 * time.Second

// customerDirectory adapts the users repository to the billing layer's
// view of stored payment customer handles.
type customerDirectory struct {
	repo users.Repository
}

func (d *customerDirectory) StripeCustomerID(ctx context.Context, uid string) (string, error) {
	user, err := d.repo.Get(ctx, uid)
	if errors.Is(err, common.ErrorNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.StripeCustomerID, nil
}

func (d *customerDirectory) SetStripeCustomerID(ctx context.Context, uid, customerID string) error {
	err := d.repo.SetStripeCustomerID(ctx, uid, customerID)
	if errors.Is(err, common.ErrorNotFound) {
		// First contact with billing before any profile write. Create
		// the profile so the handle is not lost.
		_, err = d.repo.Upsert(ctx, &users.User{UID: uid, StripeCustomerID: customerID})
	}
	return err
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager db.RepositoryManager
	api     *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	m, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	catalogSvc := catalog.NewService(
		m.OperatingSystems(), m.Bundles(), m.Categories(),
		m.Tags(), m.HeroSlides(), m.Settings())

	contentSvc := content.NewService(m.BlogPosts(), m.Pages())

	stripeAPI := billing.NewStripeAPI(cfg.StripeSecretKey)
	plansSvc := plans.NewService(m.Plans(), stripeAPI)
	billingSvc := billing.NewService(stripeAPI, plansSvc,
		&customerDirectory{repo: m.Users()}, cfg.BaseURL, logger)

	uploadsSvc := uploads.NewService(uploads.NewS3Store(cfg), cfg.S3PublicBaseURL)

	proxySvc, err := mediaproxy.NewService(cfg.ProxyAllowedHosts, cfg.ProxyCacheEntries, logger)
	if err != nil {
		return nil, fmt.Errorf("proxy init error: %w", err)
	}

	seedSvc := seed.NewService(
		m.OperatingSystems(), m.Bundles(), m.Categories(), m.Tags(), m.HeroSlides(),
		cfg.SeedSecret, cfg.SeedEnabled, cfg.SeedFixturePath,
		!cfg.IsDevelopment(), logger)

	api := httpapi.NewServer(catalogSvc, contentSvc, plansSvc, billingSvc,
		m.Users(), uploadsSvc, proxySvc, seedSvc, m.Conn(), cfg, logger)

	return &App{config: cfg, logger: logger, manager: m, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: app.api.Routes(),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "shutdown error", "error", err.Error())
		}
	}()

	app.logger.Info(ctx, "http server listening", "addr", app.config.EndpointAddrHTTP)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if conn := app.manager.Conn(); conn != nil {
		if err := conn.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err.Error())
		}
	}
}
