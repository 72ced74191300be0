package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/outlet-platform/stock-service/internal/domain"
)

// productDocument is the persisted shape of the immutable Product.
type productDocument struct {
	Code               string       `bson:"code"`
	Name               string       `bson:"name"`
	Unit               string       `bson:"unit"`
	Price              domain.Money `bson:"price"`
	DiscountPercentage float64      `bson:"discountPercentage"`
}

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection("products")}
}

func (r *ProductRepository) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	var doc productDocument
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	product, err := domain.NewProduct(doc.Code, doc.Name, doc.Unit, doc.Price, doc.DiscountPercentage)
	if err != nil {
		return nil, fmt.Errorf("invalid product document %s: %w", code, err)
	}
	return product, nil
}
