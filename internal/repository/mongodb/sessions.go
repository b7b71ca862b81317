package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

// CreateSession flips every active session off and inserts the new one. The
// partial unique index on is_active rejects a concurrent second activation.
func (r *MongoDBRepository) CreateSession(ctx context.Context, session models.StockSession) error {
	coll := r.collection(sessionsCollection)

	_, err := coll.UpdateMany(ctx, bson.M{"is_active": true}, bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		return fmt.Errorf("failed to deactivate sessions: %w", err)
	}

	if _, err := coll.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// ListSessions returns sessions newest first.
func (r *MongoDBRepository) ListSessions(ctx context.Context) ([]models.StockSession, error) {
	sessions := []models.StockSession{}
	opts := options.Find().SetSort(bson.D{{Key: "session_date", Value: -1}})
	if err := r.findAll(ctx, sessionsCollection, bson.D{}, &sessions, opts); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *MongoDBRepository) GetSession(ctx context.Context, id string) (models.StockSession, error) {
	var session models.StockSession
	err := r.findOne(ctx, sessionsCollection, bson.M{"_id": id}, &session)
	return session, err
}

func (r *MongoDBRepository) GetActiveSession(ctx context.Context) (models.StockSession, error) {
	var session models.StockSession
	err := r.findOne(ctx, sessionsCollection, bson.M{"is_active": true}, &session)
	return session, err
}
