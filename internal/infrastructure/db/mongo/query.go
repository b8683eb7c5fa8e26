package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/core/ports"
)

// scopeFilter translates a collection-read scope into query conditions.
// The same conditions feed both CountDocuments and Find, so totals and page
// boundaries always agree with the documents a caller may see.
func scopeFilter(scope domain.Scope) bson.M {
	if scope.Unrestricted {
		return bson.M{}
	}
	if scope.OwnerID == "" {
		return bson.M{"visibility": domain.VisibilityPublic}
	}
	return bson.M{"$or": []bson.M{
		{"visibility": domain.VisibilityPublic},
		{"owner_id": scope.OwnerID},
	}}
}

// mergeFilter folds extra conditions into the scope filter. Conditions only
// ever narrow the result set; the scope's visibility bound stays intact.
func mergeFilter(scope domain.Scope, extra bson.M) bson.M {
	filter := scopeFilter(scope)
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

// findOptions converts a normalised page request into driver options.
// Callers pass requests already clamped by the service layer.
func findOptions(page ports.PageRequest) *options.FindOptions {
	opts := options.Find().
		SetSkip(int64((page.Page - 1) * page.Limit)).
		SetLimit(int64(page.Limit))

	if len(page.Sort) == 0 {
		return opts.SetSort(bson.D{{Key: "created_at", Value: -1}})
	}

	sort := make(bson.D, 0, len(page.Sort))
	for _, f := range page.Sort {
		dir := 1
		if f.Desc {
			dir = -1
		}
		sort = append(sort, bson.E{Key: f.Field, Value: dir})
	}
	return opts.SetSort(sort)
}
