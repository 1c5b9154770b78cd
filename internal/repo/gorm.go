package repo

import (
	"context"
	"fmt"
	"time"

	"wizapp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type gormItemRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormItemRepository создаёт реализацию репозитория поверх gorm (postgres, sqlite).
// now — источник времени для значения date по умолчанию.
func NewGormItemRepository(db *gorm.DB, now func() time.Time) ItemRepository {
	if now == nil {
		now = time.Now
	}
	return &gormItemRepo{db: db, now: now}
}

func (r *gormItemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormItemRepo) Create(ctx context.Context, it *model.Item) error {
	// id выдаёт хранилище, а не клиент
	it.ID = uuid.NewString()
	it.ApplyDefaults(r.now())
	return r.db.WithContext(ctx).Create(it).Error
}

// InitDB открывает gorm-соединение, проверяет его и накатывает схему Item.
func InitDB(ctx context.Context, dial gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	if err := db.WithContext(ctx).AutoMigrate(&model.Item{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
