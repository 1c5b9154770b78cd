package repo

import (
	"context"

	"wizapp/internal/model"
)

// ItemRepository определяет контракт доступа к коллекции Item для слоя сервиса.
type ItemRepository interface {
	// ListAll возвращает все документы коллекции в естественном порядке хранилища.
	ListAll(ctx context.Context) ([]model.Item, error)

	// Create сохраняет новый документ. После успешного вызова у it заполнены ID и Date.
	Create(ctx context.Context, it *model.Item) error
}
