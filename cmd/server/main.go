package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wizapp/internal/config"
	"wizapp/internal/handlers"
	"wizapp/internal/middleware"
	"wizapp/internal/repo"
	"wizapp/internal/service"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	logger, err := newLogger(cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Debugw("Failed to sync logger", "error", err)
		}
	}()

	if err := cfg.Validate(); err != nil {
		sugar.Fatalw("FATAL: invalid configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// единственная попытка подключения; без неё listener не поднимается
	conn, err := repo.Connect(ctx, repo.DBConfig{
		URI:            cfg.DatabaseURI,
		Name:           cfg.DatabaseName,
		ConnectTimeout: cfg.ConnectTimeout,
	})
	if err != nil {
		sugar.Fatalw("FATAL: database connection failed", "error", err)
	}
	sugar.Infow("Database connected", "backend", conn.Backend)

	itemService := service.NewItemService(conn.Items, sugar)
	h := handlers.NewHandler(itemService, sugar, cfg)

	sugar.Infow("Config",
		"Addr", cfg.Addr(),
		"Backend", conn.Backend,
		"ExerciseFile", cfg.ExerciseFile,
		"RequestTimeout", cfg.RequestTimeout,
	)

	srv, errCh := StartServer(h.Router, cfg.Addr(), sugar)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		sugar.Errorw("Server failed", "error", err)
	}

	GracefulShutdown(srv, conn, sugar, shutdownTimeout)
}

func newLogger(format string) (*zap.Logger, error) {
	if format == "json" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
