package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

func (r *MongoDBRepository) CreateOrder(ctx context.Context, order models.ShoppingOrder) error {
	if _, err := r.collection(ordersCollection).InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *MongoDBRepository) GetOrder(ctx context.Context, id string) (models.ShoppingOrder, error) {
	var order models.ShoppingOrder
	err := r.findOne(ctx, ordersCollection, bson.M{"_id": id}, &order)
	return order, err
}

// ListOrders returns orders newest first.
func (r *MongoDBRepository) ListOrders(ctx context.Context) ([]models.ShoppingOrder, error) {
	orders := []models.ShoppingOrder{}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if err := r.findAll(ctx, ordersCollection, bson.D{}, &orders, opts); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *MongoDBRepository) ReplaceOrder(ctx context.Context, order models.ShoppingOrder) error {
	return r.replaceByID(ctx, ordersCollection, order.ID, order)
}
