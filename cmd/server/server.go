package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"wizapp/internal/repo"

	"go.uber.org/zap"
)

// StartServer запускает HTTP-сервер в отдельной горутине.
// Ошибка ListenAndServe (кроме штатного закрытия) приходит в канал.
func StartServer(handler http.Handler, addr string, sugar *zap.SugaredLogger) (*http.Server, <-chan error) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("Server running", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return srv, errCh
}

// GracefulShutdown останавливает сервер и закрывает подключение к хранилищу.
func GracefulShutdown(srv *http.Server, conn *repo.Connection, sugar *zap.SugaredLogger, timeout time.Duration) {
	sugar.Infow("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorw("Error shutting down server", "error", err)
	}
	if err := conn.Close(ctx); err != nil {
		sugar.Errorw("Error closing database connection", "error", err)
	}

	sugar.Infow("Server stopped")
}
