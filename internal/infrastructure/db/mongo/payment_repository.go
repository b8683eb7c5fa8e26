package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

const collectionPayments = "payments"

type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionPayments)}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	payment.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, payment); err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return payment, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var payment domain.Payment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return &payment, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": payment.ID}, payment)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPaymentNotFound
	}
	return payment, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepository) List(ctx context.Context, scope domain.Scope, filter ports.PaymentFilter, page ports.PageRequest) ([]*domain.Payment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := mergeFilter(scope, paymentConditions(filter))

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count payments: %w", err)
	}

	cur, err := r.col.Find(ctx, query, findOptions(page))
	if err != nil {
		return nil, 0, fmt.Errorf("list payments: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Payment
	for cur.Next(ctx) {
		var payment domain.Payment
		if err := cur.Decode(&payment); err != nil {
			return nil, 0, fmt.Errorf("decode payment: %w", err)
		}
		items = append(items, &payment)
	}
	return items, total, cur.Err()
}

func paymentConditions(filter ports.PaymentFilter) bson.M {
	cond := bson.M{}
	if filter.Status != "" {
		cond["status"] = filter.Status
	}
	if filter.Method != "" {
		cond["method"] = filter.Method
	}
	if filter.OwnerID != "" {
		cond["owner_id"] = filter.OwnerID
	}
	return cond
}

func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
