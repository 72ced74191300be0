package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/outlet-platform/stock-service/internal/domain"
)

type InventoryRepository struct {
	collection *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	repo := &InventoryRepository{collection: db.Collection("inventories")}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *InventoryRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "productCode", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

func (r *InventoryRepository) FindByProductCode(ctx context.Context, code string) (*domain.Inventory, error) {
	var inv domain.Inventory
	err := r.collection.FindOne(ctx, bson.M{"productCode": code}).Decode(&inv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory: %w", err)
	}
	return &inv, nil
}

func (r *InventoryRepository) Save(ctx context.Context, inv *domain.Inventory) error {
	inv.UpdatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, inv); err != nil {
		return fmt.Errorf("failed to insert inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepository) Update(ctx context.Context, inv *domain.Inventory) error {
	inv.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"productCode": inv.ProductCode}, inv)
	if err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("inventory not found for product: %s", inv.ProductCode)
	}
	return nil
}
