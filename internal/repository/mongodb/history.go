package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/barstock/internal/domain/models"
	"github.com/mamadbah2/barstock/internal/repository"
)

// AppendSnapshot adds rows to the history log. Earlier snapshots are kept.
func (r *MongoDBRepository) AppendSnapshot(ctx context.Context, rows []models.StockSnapshot) error {
	if len(rows) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row)
	}
	if _, err := r.collection(historyCollection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// ListSnapshot returns the rows of the newest snapshot saved for the session.
func (r *MongoDBRepository) ListSnapshot(ctx context.Context, sessionID string) ([]models.StockSnapshot, error) {
	rows := []models.StockSnapshot{}

	var newest models.StockSnapshot
	opts := options.FindOne().SetSort(bson.D{{Key: "snapshot_date", Value: -1}})
	err := r.findOne(ctx, historyCollection, bson.M{"session_id": sessionID}, &newest, opts)
	if errors.Is(err, repository.ErrNotFound) {
		return rows, nil
	}
	if err != nil {
		return nil, err
	}

	filter := bson.M{"session_id": sessionID, "snapshot_date": newest.SnapshotDate}
	if err := r.findAll(ctx, historyCollection, filter, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CountSnapshot counts every history row of the session, across all saves.
func (r *MongoDBRepository) CountSnapshot(ctx context.Context, sessionID string) (int64, error) {
	n, err := r.collection(historyCollection).CountDocuments(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return 0, fmt.Errorf("count snapshot: %w", err)
	}
	return n, nil
}
