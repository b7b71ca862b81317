package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

func (r *MongoDBRepository) ListStockCounts(ctx context.Context) ([]models.StockCount, error) {
	counts := []models.StockCount{}
	if err := r.findAll(ctx, countsCollection, bson.D{}, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *MongoDBRepository) GetStockCount(ctx context.Context, itemID string) (models.StockCount, error) {
	var count models.StockCount
	err := r.findOne(ctx, countsCollection, bson.M{"item_id": itemID}, &count)
	return count, err
}

// UpsertStockCount writes the count of an item in a single atomic update. An
// existing document keeps its identifier.
func (r *MongoDBRepository) UpsertStockCount(ctx context.Context, count models.StockCount) (models.StockCount, error) {
	update := bson.M{
		"$set": bson.M{
			"item_id":      count.ItemID,
			"main_bar":     count.MainBar,
			"beer_bar":     count.BeerBar,
			"lobby":        count.Lobby,
			"storage_room": count.StorageRoom,
			"total_count":  count.TotalCount,
			"count_date":   count.CountDate,
			"counted_by":   count.CountedBy,
		},
		"$setOnInsert": bson.M{"_id": count.ID},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.StockCount
	err := r.collection(countsCollection).
		FindOneAndUpdate(ctx, bson.M{"item_id": count.ItemID}, update, opts).
		Decode(&stored)
	if err != nil {
		return models.StockCount{}, fmt.Errorf("failed to upsert stock count: %w", err)
	}
	return stored, nil
}

func (r *MongoDBRepository) DeleteStockCount(ctx context.Context, itemID string) error {
	if _, err := r.collection(countsCollection).DeleteMany(ctx, bson.M{"item_id": itemID}); err != nil {
		return fmt.Errorf("failed to delete stock count: %w", err)
	}
	return nil
}

func (r *MongoDBRepository) ClearStockCounts(ctx context.Context) error {
	if _, err := r.collection(countsCollection).DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to clear stock counts: %w", err)
	}
	return nil
}
