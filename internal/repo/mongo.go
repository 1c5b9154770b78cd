package repo

import (
	"context"
	"fmt"
	"time"

	"wizapp/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// ItemsCollection имя коллекции с документами Item.
const ItemsCollection = "items"

// DefaultDatabaseName используется, если имя базы не задано ни в конфиге, ни в URI.
const DefaultDatabaseName = "wizapp"

// itemDocument — представление Item в MongoDB.
type itemDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name *string            `bson:"name"`
	Date time.Time          `bson:"date"`
}

func (d itemDocument) toModel() model.Item {
	return model.Item{ID: d.ID.Hex(), Name: d.Name, Date: d.Date.UTC()}
}

// itemCollection — подмножество *mongo.Collection, которым пользуется репозиторий.
type itemCollection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type mongoItemRepo struct {
	coll itemCollection
	now  func() time.Time
}

// NewMongoItemRepository создаёт реализацию репозитория поверх коллекции MongoDB.
func NewMongoItemRepository(coll *mongo.Collection, now func() time.Time) ItemRepository {
	return newMongoItemRepo(coll, now)
}

func newMongoItemRepo(coll itemCollection, now func() time.Time) *mongoItemRepo {
	if now == nil {
		now = time.Now
	}
	return &mongoItemRepo{coll: coll, now: now}
}

func (r *mongoItemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []itemDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	items := make([]model.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}

func (r *mongoItemRepo) Create(ctx context.Context, it *model.Item) error {
	it.ApplyDefaults(r.now())
	doc := itemDocument{Name: it.Name, Date: it.Date}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	it.ID = oid.Hex()
	return nil
}

// databaseName выбирает базу: явная настройка, затем путь URI, затем значение по умолчанию.
func databaseName(uri, configured string) string {
	if configured != "" {
		return configured
	}
	cs, err := connstring.ParseAndValidate(uri)
	if err == nil && cs.Database != "" {
		return cs.Database
	}
	return DefaultDatabaseName
}

// InitMongo выполняет одну попытку подключения к MongoDB и проверяет её ping'ом.
func InitMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri)
	if timeout > 0 {
		opts.SetConnectTimeout(timeout).SetServerSelectionTimeout(timeout)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	return client, nil
}
