package handlers

import (
	"wizapp/internal/config"
	"wizapp/internal/metrics"
	"wizapp/internal/middleware"
	"wizapp/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(metrics.InstrumentHandler)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	// без REQUEST_TIMEOUT запрос ждёт хранилище сколько угодно
	if config.RequestTimeout > 0 {
		r.Use(chimw.Timeout(config.RequestTimeout))
	}

	// Handlers
	itemHandler := NewItemHandler(itemService, logger)
	statusHandler := NewStatusHandler(logger, config)

	r.Get("/", statusHandler.Root)
	r.Get("/wizexercise.txt", statusHandler.ExerciseFile)
	r.Method("GET", "/metrics", metrics.Handler())

	// Item routes
	r.Get("/items", itemHandler.List)
	r.Post("/items", itemHandler.Create)

	return &Handler{Router: r}
}
