package domain

import "time"

// OccasionType classifies an event a user plans an outfit for.
type OccasionType string

const (
	OccasionWedding  OccasionType = "wedding"
	OccasionParty    OccasionType = "party"
	OccasionMeeting  OccasionType = "meeting"
	OccasionCasual   OccasionType = "casual"
	OccasionFormal   OccasionType = "formal"
	OccasionFestival OccasionType = "festival"
	OccasionOther    OccasionType = "other"
)

// Location pins an occasion to a venue.
type Location struct {
	Venue   string  `json:"venue,omitempty" bson:"venue,omitempty"`
	City    string  `json:"city,omitempty" bson:"city,omitempty"`
	Country string  `json:"country,omitempty" bson:"country,omitempty"`
	Lat     float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

// Occasion is a user's planned event together with the clothes picked for it.
// Occasions are private to their owner.
type Occasion struct {
	ID        string       `json:"id" bson:"_id,omitempty"`
	Title     string       `json:"title" bson:"title"`
	Type      OccasionType `json:"type" bson:"type"`
	Location  Location     `json:"location" bson:"location"`
	Date      time.Time    `json:"date" bson:"date"`
	StartTime string       `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EndTime   string       `json:"end_time,omitempty" bson:"end_time,omitempty"`
	DressCode string       `json:"dress_code,omitempty" bson:"dress_code,omitempty"`
	ClothIDs  []string     `json:"cloth_ids" bson:"cloth_ids"`
	Notes     string       `json:"notes,omitempty" bson:"notes,omitempty"`
	Ownership `bson:",inline"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
