package main

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

	"logistics/cmd"
	"logistics/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("application stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}
	logger := newLogger(config)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var gormDB *gorm.DB
	if config.Storage == cmd.StoragePostgres {
		gormDB, err = openDatabase(config)
		if err != nil {
			return err
		}
	}

	app, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("failed to release resources", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(echoLogLevel(config))
	if err = app.CreateHTTPServer().Register(e, []byte(config.JWTSecret)); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server starting", "port", config.HTTPPort, "storage", config.Storage)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("http server shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func newLogger(config cmd.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: config.SlogLevel()}
	if config.AppEnv == "development" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func echoLogLevel(config cmd.Config) log.Lvl {
	switch config.SlogLevel() {
	case slog.LevelDebug:
		return log.DEBUG
	case slog.LevelWarn:
		return log.WARN
	case slog.LevelError:
		return log.ERROR
	default:
		return log.INFO
	}
}
