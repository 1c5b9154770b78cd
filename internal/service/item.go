package service

import (
	"context"
	"fmt"
	"time"

	"wizapp/internal/metrics"
	"wizapp/internal/model"
	"wizapp/internal/repo"

	"go.uber.org/zap"
)

// ItemService инкапсулирует работу с коллекцией Item.
// Состояния между запросами не хранит: общий только репозиторий.
type ItemService struct {
	repo   repo.ItemRepository
	logger *zap.SugaredLogger
}

func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ItemService{repo: r, logger: logger}
}

// List возвращает все записи. Для пустой коллекции пустой срез, не nil.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	start := time.Now()
	items, err := s.repo.ListAll(ctx)
	metrics.ObserveStoreCall("list", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	s.logger.Debugw("items listed", "count", len(items))
	return items, nil
}

// Create сохраняет новую запись с переданным именем. name не валидируется.
func (s *ItemService) Create(ctx context.Context, name *string) (*model.Item, error) {
	it := model.NewItem(name)

	start := time.Now()
	err := s.repo.Create(ctx, it)
	metrics.ObserveStoreCall("create", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.logger.Debugw("item created", "id", it.ID)
	return it, nil
}
