// Package app assembles the service: configuration, keys, database,
// services, HTTP router and process lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handymanhttp "github.com/toolshed/handyman/internal/handyman/http"
	"github.com/toolshed/handyman/internal/handyman/service"
	"github.com/toolshed/handyman/internal/handyman/store"
	"github.com/toolshed/handyman/internal/handyman/store/drivers/sqlite"
	"github.com/toolshed/handyman/pkg/cryptox"
	"github.com/toolshed/handyman/pkg/jwtx"
	"github.com/toolshed/handyman/pkg/slogx"
)

// Application owns every long-lived component and shuts them down in
// reverse order of construction.
type Application struct {
	cfg    Config
	log    *slog.Logger
	store  store.Store
	server *http.Server
}

// New builds a fully wired Application. It fails rather than limping along
// with partial configuration.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log := slogx.New(slogx.Config{
		Service: cfg.Service,
		Version: cfg.Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	cryptox.SetPepperPath(cfg.PepperPath)

	signer, err := loadOrGenerateSigningKey(cfg.SigningKeyPath)
	if err != nil {
		return nil, err
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("register signing key: %w", err)
	}

	st, err := sqlite.NewStore(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	handler := handymanhttp.NewRouter(handymanhttp.RouterConfig{
		Logger:    log,
		Store:     st,
		Verifier:  jwtx.NewVerifierEdDSA(keys, cfg.Issuer),
		JWKS:      keys.PublicJWKS(),
		Accounts:  service.NewAccountService(st, signer, cfg.Issuer, cfg.TokenTTL),
		Projects:  service.NewProjectService(st),
		Materials: service.NewMaterialService(st),
		Laborers:  service.NewLaborerService(st),
	})

	return &Application{
		cfg:   cfg,
		log:   log,
		store: st,
		server: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Run serves HTTP until the context is cancelled or a termination signal
// arrives, then drains in-flight requests within the grace period.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", "addr", a.cfg.ListenAddr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down", "grace", a.cfg.ShutdownGrace.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownGrace)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.log.Error("shutdown incomplete", "err", err)
	}

	if err := a.store.Close(); err != nil {
		a.log.Error("close store", "err", err)
	}

	a.log.Info("stopped")
	return nil
}
