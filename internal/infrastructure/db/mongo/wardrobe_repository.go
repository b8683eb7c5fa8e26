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

const collectionWardrobe = "wardrobe_items"

type WardrobeRepository struct {
	col *mongo.Collection
}

func NewWardrobeRepository(db *mongo.Database) *WardrobeRepository {
	return &WardrobeRepository{col: db.Collection(collectionWardrobe)}
}

func (r *WardrobeRepository) Create(ctx context.Context, item *domain.WardrobeItem) (*domain.WardrobeItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	item.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return nil, fmt.Errorf("insert wardrobe item: %w", err)
	}
	return item, nil
}

func (r *WardrobeRepository) FindByID(ctx context.Context, id string) (*domain.WardrobeItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var item domain.WardrobeItem
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWardrobeItemNotFound
		}
		return nil, fmt.Errorf("find wardrobe item: %w", err)
	}
	return &item, nil
}

func (r *WardrobeRepository) Update(ctx context.Context, item *domain.WardrobeItem) (*domain.WardrobeItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return nil, fmt.Errorf("update wardrobe item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrWardrobeItemNotFound
	}
	return item, nil
}

func (r *WardrobeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete wardrobe item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWardrobeItemNotFound
	}
	return nil
}

// List counts and fetches over one shared filter. Wardrobe items are always
// private, so for non-admins the scope reduces to the caller's own documents.
func (r *WardrobeRepository) List(ctx context.Context, scope domain.Scope, filter ports.WardrobeFilter, page ports.PageRequest) ([]*domain.WardrobeItem, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := mergeFilter(scope, wardrobeConditions(filter))

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count wardrobe items: %w", err)
	}

	cur, err := r.col.Find(ctx, query, findOptions(page))
	if err != nil {
		return nil, 0, fmt.Errorf("list wardrobe items: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.WardrobeItem
	for cur.Next(ctx) {
		var item domain.WardrobeItem
		if err := cur.Decode(&item); err != nil {
			return nil, 0, fmt.Errorf("decode wardrobe item: %w", err)
		}
		items = append(items, &item)
	}
	return items, total, cur.Err()
}

func wardrobeConditions(filter ports.WardrobeFilter) bson.M {
	cond := bson.M{}
	if filter.Category != "" {
		cond["category"] = filter.Category
	}
	if filter.Season != "" {
		cond["seasons"] = filter.Season
	}
	if filter.Archived != nil {
		cond["archived"] = *filter.Archived
	}
	if filter.OwnerID != "" {
		cond["owner_id"] = filter.OwnerID
	}
	return cond
}

func (r *WardrobeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
