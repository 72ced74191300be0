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

// billDocument flattens the immutable Bill for storage. Derived amounts
// are stored alongside the raw fields so reports never re-run the
// arithmetic.
type billDocument struct {
	SerialNumber    int               `bson:"serialNumber"`
	BillDate        time.Time         `bson:"billDate"`
	Items           []billItemDocument `bson:"items"`
	Subtotal        domain.Money      `bson:"subtotal"`
	Discount        domain.Money      `bson:"discount"`
	Total           domain.Money      `bson:"total"`
	CashTendered    domain.Money      `bson:"cashTendered"`
	Change          domain.Money      `bson:"change"`
	TransactionType string            `bson:"transactionType"`
	CustomerID      string            `bson:"customerId,omitempty"`
	CreatedAt       time.Time         `bson:"createdAt"`
}

type billItemDocument struct {
	ProductCode        string       `bson:"productCode"`
	ProductName        string       `bson:"productName"`
	Unit               string       `bson:"unit"`
	Quantity           int          `bson:"quantity"`
	UnitPrice          domain.Money `bson:"unitPrice"`
	DiscountPercentage float64      `bson:"discountPercentage"`
	FinalPrice         domain.Money `bson:"finalPrice"`
}

type BillRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

func NewBillRepository(db *mongo.Database) *BillRepository {
	repo := &BillRepository{
		collection: db.Collection("bills"),
		counters:   db.Collection("counters"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *BillRepository) ensureIndexes(ctx context.Context) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "serialNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "billDate", Value: 1}}},
	}
	r.collection.Indexes().CreateMany(ctx, indexes)
}

// NextSerialNumber atomically increments the bill counter. Serial numbers
// start at 1 and never repeat, even across concurrent settlements.
func (r *BillRepository) NextSerialNumber(ctx context.Context) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Sequence int `bson:"sequence"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "bill_serial"},
		bson.M{"$inc": bson.M{"sequence": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to obtain next serial number: %w", err)
	}
	return counter.Sequence, nil
}

func (r *BillRepository) Save(ctx context.Context, bill *domain.Bill) error {
	doc := toBillDocument(bill)
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert bill %d: %w", bill.SerialNumber(), err)
	}
	return nil
}

func toBillDocument(bill *domain.Bill) billDocument {
	items := bill.Items()
	itemDocs := make([]billItemDocument, 0, len(items))
	for _, it := range items {
		itemDocs = append(itemDocs, billItemDocument{
			ProductCode:        it.ProductCode(),
			ProductName:        it.ProductName(),
			Unit:               it.Unit(),
			Quantity:           it.Quantity(),
			UnitPrice:          it.UnitPrice(),
			DiscountPercentage: it.DiscountPercentage(),
			FinalPrice:         it.FinalPrice(),
		})
	}
	return billDocument{
		SerialNumber:    bill.SerialNumber(),
		BillDate:        bill.BillDate(),
		Items:           itemDocs,
		Subtotal:        bill.Subtotal(),
		Discount:        bill.Discount(),
		Total:           bill.Total(),
		CashTendered:    bill.CashTendered(),
		Change:          bill.Change(),
		TransactionType: string(bill.TransactionType()),
		CustomerID:      bill.CustomerID(),
		CreatedAt:       time.Now(),
	}
}
