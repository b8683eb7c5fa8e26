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

const collectionClothes = "clothes"

type ClothRepository struct {
	col *mongo.Collection
}

func NewClothRepository(db *mongo.Database) *ClothRepository {
	return &ClothRepository{col: db.Collection(collectionClothes)}
}

func (r *ClothRepository) Create(ctx context.Context, cloth *domain.Cloth) (*domain.Cloth, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cloth.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, cloth); err != nil {
		return nil, fmt.Errorf("insert cloth: %w", err)
	}
	return cloth, nil
}

func (r *ClothRepository) FindByID(ctx context.Context, id string) (*domain.Cloth, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cloth domain.Cloth
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&cloth); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClothNotFound
		}
		return nil, fmt.Errorf("find cloth: %w", err)
	}
	return &cloth, nil
}

func (r *ClothRepository) Update(ctx context.Context, cloth *domain.Cloth) (*domain.Cloth, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": cloth.ID}, cloth)
	if err != nil {
		return nil, fmt.Errorf("update cloth: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrClothNotFound
	}
	return cloth, nil
}

func (r *ClothRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete cloth: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClothNotFound
	}
	return nil
}

// List runs the count and the page fetch over one shared filter so the total
// always describes the same set the page was cut from.
func (r *ClothRepository) List(ctx context.Context, scope domain.Scope, filter ports.ClothFilter, page ports.PageRequest) ([]*domain.Cloth, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := mergeFilter(scope, clothConditions(filter))

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count clothes: %w", err)
	}

	cur, err := r.col.Find(ctx, query, findOptions(page))
	if err != nil {
		return nil, 0, fmt.Errorf("list clothes: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Cloth
	for cur.Next(ctx) {
		var cloth domain.Cloth
		if err := cur.Decode(&cloth); err != nil {
			return nil, 0, fmt.Errorf("decode cloth: %w", err)
		}
		items = append(items, &cloth)
	}
	return items, total, cur.Err()
}

func clothConditions(filter ports.ClothFilter) bson.M {
	cond := bson.M{}
	if filter.Search != "" {
		rx := primitive.Regex{Pattern: filter.Search, Options: "i"}
		cond["$and"] = []bson.M{{"$or": []bson.M{
			{"name": rx},
			{"color": rx},
			{"category": rx},
		}}}
	}
	if filter.Category != "" {
		cond["category"] = filter.Category
	}
	if filter.Color != "" {
		cond["color"] = filter.Color
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		cond["price"] = price
	}
	if filter.OwnerID != "" {
		cond["owner_id"] = filter.OwnerID
	}
	if filter.OwnerType != "" {
		cond["owner_type"] = filter.OwnerType
	}
	return cond
}

// EnsureIndexes creates the indexes backing scoped listings.
func (r *ClothRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "visibility", Value: 1}, {Key: "owner_type", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
