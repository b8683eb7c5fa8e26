package domain

import "time"

// WardrobeCategory classifies a styler's wardrobe item.
type WardrobeCategory string

const (
	CategoryTop       WardrobeCategory = "top"
	CategoryBottom    WardrobeCategory = "bottom"
	CategoryDress     WardrobeCategory = "dress"
	CategoryOuterwear WardrobeCategory = "outerwear"
	CategoryShoes     WardrobeCategory = "shoes"
	CategoryAccessory WardrobeCategory = "accessory"
	CategoryOther     WardrobeCategory = "other"
)

// WardrobeItem is a garment in a styler's private wardrobe. Visibility is
// always private: wardrobe items never appear outside their owner's scope
// except to admins.
type WardrobeItem struct {
	ID           string           `json:"id" bson:"_id,omitempty"`
	ItemName     string           `json:"item_name" bson:"item_name"`
	Images       []string         `json:"images" bson:"images"`
	Category     WardrobeCategory `json:"category" bson:"category"`
	Brand        string           `json:"brand,omitempty" bson:"brand,omitempty"`
	Colors       []string         `json:"colors" bson:"colors"`
	Material     string           `json:"material,omitempty" bson:"material,omitempty"`
	Size         string           `json:"size,omitempty" bson:"size,omitempty"`
	Seasons      []string         `json:"seasons" bson:"seasons"`
	OccasionTags []string         `json:"occasion_tags" bson:"occasion_tags"`
	UsageCount   int              `json:"usage_count" bson:"usage_count"`
	Wearable     bool             `json:"wearable" bson:"wearable"`
	Archived     bool             `json:"archived" bson:"archived"`
	Ownership    `bson:",inline"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
