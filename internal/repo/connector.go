package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wizapp/internal/config"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

var (
	// ErrMissingURI строка подключения не задана: фатальная ошибка конфигурации.
	ErrMissingURI = config.ErrMissingURI
	// ErrUnsupportedScheme схема URI не соответствует ни одному из бэкендов.
	ErrUnsupportedScheme = errors.New("unsupported database URI scheme")
)

// Поддерживаемые бэкенды.
const (
	BackendMongo    = "mongodb"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// DBConfig описывает подключение к хранилищу.
type DBConfig struct {
	URI            string
	Name           string
	ConnectTimeout time.Duration
	// Now источник времени для date по умолчанию, nil означает time.Now.
	Now func() time.Time
}

// Connection — единственное подключение процесса. Создаётся один раз при старте
// и передаётся в сервис явно.
type Connection struct {
	Backend string
	Items   ItemRepository

	closeFn func(ctx context.Context) error
}

// Close освобождает подключение при остановке процесса.
func (c *Connection) Close(ctx context.Context) error {
	if c == nil || c.closeFn == nil {
		return nil
	}
	return c.closeFn(ctx)
}

// BackendFor определяет бэкенд по схеме URI.
func BackendFor(uri string) (string, error) {
	switch {
	case strings.HasPrefix(uri, "mongodb://"), strings.HasPrefix(uri, "mongodb+srv://"):
		return BackendMongo, nil
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		return BackendPostgres, nil
	case strings.HasPrefix(uri, "sqlite://"), strings.HasPrefix(uri, "file:"):
		return BackendSQLite, nil
	}
	return "", ErrUnsupportedScheme
}

// Connect делает ровно одну попытку подключения, без повторов.
// Любая ошибка предназначена для завершения процесса до старта listener'а.
func Connect(ctx context.Context, cfg DBConfig) (*Connection, error) {
	if strings.TrimSpace(cfg.URI) == "" {
		return nil, ErrMissingURI
	}
	backend, err := BackendFor(cfg.URI)
	if err != nil {
		return nil, err
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	switch backend {
	case BackendMongo:
		client, err := InitMongo(ctx, cfg.URI, cfg.ConnectTimeout)
		if err != nil {
			return nil, fmt.Errorf("mongodb: %w", err)
		}
		coll := client.Database(databaseName(cfg.URI, cfg.Name)).Collection(ItemsCollection)
		return &Connection{
			Backend: backend,
			Items:   NewMongoItemRepository(coll, cfg.Now),
			closeFn: client.Disconnect,
		}, nil
	case BackendPostgres:
		return connectGorm(ctx, backend, gormpostgres.Open(cfg.URI), cfg.Now)
	default:
		dsn := strings.TrimPrefix(cfg.URI, "sqlite://")
		dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
		return connectGorm(ctx, backend, dial, cfg.Now)
	}
}

func connectGorm(ctx context.Context, backend string, dial gorm.Dialector, now func() time.Time) (*Connection, error) {
	db, err := InitDB(ctx, dial)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", backend, err)
	}
	return &Connection{
		Backend: backend,
		Items:   NewGormItemRepository(db, now),
		closeFn: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}, nil
}
