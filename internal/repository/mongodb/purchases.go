package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

func (r *MongoDBRepository) CreatePurchase(ctx context.Context, purchase models.PurchaseEntry) error {
	if _, err := r.collection(purchasesCollection).InsertOne(ctx, purchase); err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}
	return nil
}

func (r *MongoDBRepository) GetPurchase(ctx context.Context, id string) (models.PurchaseEntry, error) {
	var purchase models.PurchaseEntry
	err := r.findOne(ctx, purchasesCollection, bson.M{"_id": id}, &purchase)
	return purchase, err
}

func (r *MongoDBRepository) ListPurchases(ctx context.Context) ([]models.PurchaseEntry, error) {
	purchases := []models.PurchaseEntry{}
	opts := options.Find().SetSort(bson.D{{Key: "purchase_date", Value: 1}})
	if err := r.findAll(ctx, purchasesCollection, bson.D{}, &purchases, opts); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *MongoDBRepository) ListPurchasesBySessions(ctx context.Context, sessionIDs ...string) ([]models.PurchaseEntry, error) {
	purchases := []models.PurchaseEntry{}
	filter := bson.M{"session_id": bson.M{"$in": sessionIDs}}
	opts := options.Find().SetSort(bson.D{{Key: "purchase_date", Value: 1}})
	if err := r.findAll(ctx, purchasesCollection, filter, &purchases, opts); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *MongoDBRepository) ReplacePurchase(ctx context.Context, purchase models.PurchaseEntry) error {
	return r.replaceByID(ctx, purchasesCollection, purchase.ID, purchase)
}

func (r *MongoDBRepository) DeletePurchase(ctx context.Context, id string) error {
	return r.deleteByID(ctx, purchasesCollection, id)
}
