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

type StockBatchRepository struct {
	collection *mongo.Collection
}

func NewStockBatchRepository(db *mongo.Database) *StockBatchRepository {
	repo := &StockBatchRepository{collection: db.Collection("stock_batches")}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *StockBatchRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "batchId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "productCode", Value: 1}, {Key: "purchaseDate", Value: 1}}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// FindByProductCode returns all batches for a product, exhausted and
// expired ones included, ordered by purchase date.
func (r *StockBatchRepository) FindByProductCode(ctx context.Context, code string) ([]*domain.StockBatch, error) {
	opts := options.Find().SetSort(bson.D{{Key: "purchaseDate", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"productCode": code}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find batches: %w", err)
	}
	defer cursor.Close(ctx)

	var batches []*domain.StockBatch
	if err := cursor.All(ctx, &batches); err != nil {
		return nil, fmt.Errorf("failed to decode batches: %w", err)
	}
	return batches, nil
}

func (r *StockBatchRepository) Save(ctx context.Context, batch *domain.StockBatch) error {
	batch.UpdatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, batch); err != nil {
		return fmt.Errorf("failed to insert batch: %w", err)
	}
	return nil
}

func (r *StockBatchRepository) Update(ctx context.Context, batch *domain.StockBatch) error {
	batch.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"batchId": batch.BatchID}, batch)
	if err != nil {
		return fmt.Errorf("failed to update batch: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("batch not found: %s", batch.BatchID)
	}
	return nil
}
