package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/church-portal/config"
	"github.com/daniilsolovey/church-portal/internal/auth"
	"github.com/daniilsolovey/church-portal/internal/church"
	"github.com/daniilsolovey/church-portal/internal/db"
	"github.com/daniilsolovey/church-portal/internal/rest"
	"github.com/daniilsolovey/church-portal/internal/rpc"
	"github.com/daniilsolovey/church-portal/internal/upload"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
)

const rpcPath = "/rpc/"

type App struct {
	DB      *db.Repository
	Manager *church.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config

	closers []io.Closer
}

// New wires storage, sessions, uploads and both HTTP surfaces.
func New(ctx context.Context, cfg config.Config, dbConnect pg.DBI, logger *slog.Logger) (*App, error) {
	repo := db.New(dbConnect)
	manager := church.NewManager(repo)

	a := &App{
		DB:      repo,
		Manager: manager,
		Logger:  logger,
		Config:  cfg,
	}

	store, err := a.sessionStore(ctx)
	if err != nil {
		return nil, err
	}

	uploads, err := upload.New(cfg.Uploads.Dir, cfg.Uploads.MaxSize)
	if err != nil {
		return nil, err
	}

	sessions := auth.NewManager(cfg.Admin.Password, cfg.Session.Secret, cfg.Session.TTL, store)
	handler := rest.NewHandler(manager, sessions, uploads, logger, rest.Options{
		Production:  cfg.IsProduction(),
		CookieName:  cfg.Session.CookieName,
		FrontendDir: cfg.App.FrontendDir,
	})

	a.Echo = handler.RegisterRoutes()
	a.Echo.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	return a, nil
}

func (a *App) sessionStore(ctx context.Context) (auth.Store, error) {
	if a.Config.Session.RedisURL == "" {
		a.Logger.Info("using in-memory session store")
		return auth.NewMemoryStore(), nil
	}

	store, err := auth.NewRedisStore(ctx, a.Config.Session.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect session store: %w", err)
	}
	a.closers = append(a.closers, store)
	a.Logger.Info("using redis session store")

	return store, nil
}

// Seed fills an empty database with sample content.
func (a *App) Seed(ctx context.Context) error {
	seeded, err := a.Manager.Seed(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	if seeded {
		a.Logger.Info("database seeded with sample content")
	}

	return nil
}

func (a *App) Run(ctx context.Context) error {
	addr := net.JoinHostPort(a.Config.App.Host, strconv.Itoa(a.Config.App.Port))
	a.Logger.Info("service started", "addr", addr, "env", a.Config.App.Env)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	for _, c := range a.closers {
		if cerr := c.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}

	return err
}
