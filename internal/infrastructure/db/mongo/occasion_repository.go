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

const collectionOccasions = "occasions"

type OccasionRepository struct {
	col *mongo.Collection
}

func NewOccasionRepository(db *mongo.Database) *OccasionRepository {
	return &OccasionRepository{col: db.Collection(collectionOccasions)}
}

func (r *OccasionRepository) Create(ctx context.Context, occasion *domain.Occasion) (*domain.Occasion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	occasion.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, occasion); err != nil {
		return nil, fmt.Errorf("insert occasion: %w", err)
	}
	return occasion, nil
}

func (r *OccasionRepository) FindByID(ctx context.Context, id string) (*domain.Occasion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var occasion domain.Occasion
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&occasion); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOccasionNotFound
		}
		return nil, fmt.Errorf("find occasion: %w", err)
	}
	return &occasion, nil
}

func (r *OccasionRepository) Update(ctx context.Context, occasion *domain.Occasion) (*domain.Occasion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": occasion.ID}, occasion)
	if err != nil {
		return nil, fmt.Errorf("update occasion: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrOccasionNotFound
	}
	return occasion, nil
}

func (r *OccasionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete occasion: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOccasionNotFound
	}
	return nil
}

func (r *OccasionRepository) List(ctx context.Context, scope domain.Scope, filter ports.OccasionFilter, page ports.PageRequest) ([]*domain.Occasion, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := mergeFilter(scope, occasionConditions(filter))

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count occasions: %w", err)
	}

	cur, err := r.col.Find(ctx, query, findOptions(page))
	if err != nil {
		return nil, 0, fmt.Errorf("list occasions: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Occasion
	for cur.Next(ctx) {
		var occasion domain.Occasion
		if err := cur.Decode(&occasion); err != nil {
			return nil, 0, fmt.Errorf("decode occasion: %w", err)
		}
		items = append(items, &occasion)
	}
	return items, total, cur.Err()
}

func occasionConditions(filter ports.OccasionFilter) bson.M {
	cond := bson.M{}
	if filter.Type != "" {
		cond["type"] = filter.Type
	}
	if !filter.DateFrom.IsZero() || !filter.DateTo.IsZero() {
		date := bson.M{}
		if !filter.DateFrom.IsZero() {
			date["$gte"] = filter.DateFrom
		}
		if !filter.DateTo.IsZero() {
			date["$lte"] = filter.DateTo
		}
		cond["date"] = date
	}
	if filter.OwnerID != "" {
		cond["owner_id"] = filter.OwnerID
	}
	return cond
}

func (r *OccasionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
