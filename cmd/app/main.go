package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/church-portal/config"
	_ "github.com/daniilsolovey/church-portal/docs"
	"github.com/daniilsolovey/church-portal/internal/app"
	"github.com/daniilsolovey/church-portal/internal/commands"
	"github.com/daniilsolovey/church-portal/internal/db"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	flags    = config.BindFlags(flag.CommandLine)
	cfg      config.Config
	lg       *slog.Logger
)

// @title Church Portal API
// @version 1.0
// @description Public content and admin API of the church portal
// @host localhost:5000
// @BasePath /

func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		os.Exit(commands.HashPassword(os.Args[2:]))
	}

	// .env is optional; real environment variables win.
	_ = godotenv.Load()
	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	cfg.Apply(*flags)
	if cfg.Log.Debug && !*flDebug {
		lg = newLogger(true)
	}
	exitOnError(cfg.Validate())

	opts, err := cfg.Database.PGOptions()
	exitOnError(err)

	ctx := context.Background()

	dbc := pg.Connect(opts)
	if cfg.Log.Queries {
		dbc.AddQueryHook(db.NewQueryHook(lg))
	}
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}
	defer dbc.Close()

	exitOnError(db.Migrate(ctx, cfg.Database.URL))

	service, err := app.New(ctx, cfg, dbc, lg)
	exitOnError(err)
	exitOnError(service.Seed(ctx))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := service.GracefulShutdown(shutdownCtx); err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
