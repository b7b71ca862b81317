package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/repository"
)

const (
	itemsCollection     = "items"
	countsCollection    = "stock_counts"
	sessionsCollection  = "stock_sessions"
	historyCollection   = "stock_history"
	purchasesCollection = "purchases"
	ordersCollection    = "shopping_orders"

	// listLimit caps every unpaginated listing.
	listLimit = 1000
)

// MongoDBRepository implements repository.Store on top of MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

var _ repository.Store = (*MongoDBRepository)(nil)

// NewMongoDBRepository connects, pings and makes sure the indexes exist.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string, logger *zap.Logger) (*MongoDBRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	r := &MongoDBRepository{
		client: client,
		db:     client.Database(dbName),
		logger: logger,
	}

	if err := r.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *MongoDBRepository) ensureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		countsCollection: {
			{Keys: bson.D{{Key: "item_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		// At most one session may carry is_active=true.
		sessionsCollection: {
			{
				Keys:    bson.D{{Key: "is_active", Value: 1}},
				Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{"is_active": true}),
			},
			{Keys: bson.D{{Key: "session_date", Value: -1}}},
		},
		historyCollection: {
			{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "snapshot_date", Value: -1}}},
		},
		purchasesCollection: {
			{Keys: bson.D{{Key: "session_id", Value: 1}}},
			{Keys: bson.D{{Key: "item_id", Value: 1}}},
		},
		ordersCollection: {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := r.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
		r.logger.Debug("indexes ensured", zap.String("collection", name), zap.Int("count", len(models)))
	}
	return nil
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.db.Collection(name)
}

// findAll decodes every document matching filter into out.
func (r *MongoDBRepository) findAll(ctx context.Context, name string, filter interface{}, out interface{}, opts ...*options.FindOptions) error {
	opts = append([]*options.FindOptions{options.Find().SetLimit(listLimit)}, opts...)

	cursor, err := r.collection(name).Find(ctx, filter, opts...)
	if err != nil {
		return fmt.Errorf("find in %s: %w", name, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// findOne decodes the single document matching filter, mapping a miss to repository.ErrNotFound.
func (r *MongoDBRepository) findOne(ctx context.Context, name string, filter interface{}, out interface{}, opts ...*options.FindOneOptions) error {
	err := r.collection(name).FindOne(ctx, filter, opts...).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find one in %s: %w", name, err)
	}
	return nil
}

func (r *MongoDBRepository) replaceByID(ctx context.Context, name, id string, doc interface{}) error {
	res, err := r.collection(name).ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("replace in %s: %w", name, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MongoDBRepository) deleteByID(ctx context.Context, name, id string) error {
	res, err := r.collection(name).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", name, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
