package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

// ListItems returns the catalog in natural (insertion) order.
func (r *MongoDBRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	if err := r.findAll(ctx, itemsCollection, bson.D{}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoDBRepository) GetItem(ctx context.Context, id string) (models.Item, error) {
	var item models.Item
	err := r.findOne(ctx, itemsCollection, bson.M{"_id": id}, &item)
	return item, err
}

func (r *MongoDBRepository) CreateItem(ctx context.Context, item models.Item) error {
	if _, err := r.collection(itemsCollection).InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

func (r *MongoDBRepository) ReplaceItem(ctx context.Context, item models.Item) error {
	return r.replaceByID(ctx, itemsCollection, item.ID, item)
}

func (r *MongoDBRepository) DeleteItem(ctx context.Context, id string) error {
	return r.deleteByID(ctx, itemsCollection, id)
}

// ReplaceCatalog drops every item and inserts items in order.
func (r *MongoDBRepository) ReplaceCatalog(ctx context.Context, items []models.Item) error {
	coll := r.collection(itemsCollection)
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, item)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert catalog: %w", err)
	}
	return nil
}
