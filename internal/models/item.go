package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SizeBucket is one of the six fixed cargo-size classes used for capacity and
// pricing lookups.
type SizeBucket string

const (
	BucketExtraSmall SizeBucket = "Extra Small"
	BucketSmall      SizeBucket = "Small"
	BucketMedium     SizeBucket = "Medium"
	BucketMediumPlus SizeBucket = "Medium +"
	BucketLarge      SizeBucket = "Large"
	BucketExtraLarge SizeBucket = "Extra Large"
)

// SizeBuckets lists the buckets in ascending size order. Custom-item
// classification depends on this ordering: the first bucket that fits wins.
var SizeBuckets = []SizeBucket{
	BucketExtraSmall,
	BucketSmall,
	BucketMedium,
	BucketMediumPlus,
	BucketLarge,
	BucketExtraLarge,
}

// BucketBound holds the upper bounds a custom item must fit under to classify
// into a bucket. Length, width and height share the same bound (meters);
// weight is in kilograms.
type BucketBound struct {
	Dimension float64
	Weight    float64
}

var BucketBounds = map[SizeBucket]BucketBound{
	BucketExtraSmall: {Dimension: 0.3, Weight: 20},
	BucketSmall:      {Dimension: 0.5, Weight: 25},
	BucketMedium:     {Dimension: 1.2, Weight: 35},
	BucketMediumPlus: {Dimension: 1.9, Weight: 100},
	BucketLarge:      {Dimension: 2.5, Weight: 150},
	BucketExtraLarge: {Dimension: 2.6, Weight: 151},
}

// Item is an immutable catalog entry. Dimensions are meters, weight kilograms.
type Item struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	ItemType  SizeBucket         `json:"item_type" bson:"item_type"`
	Length    float64            `json:"length" bson:"length"`
	Width     float64            `json:"width" bson:"width"`
	Height    float64            `json:"height" bson:"height"`
	Weight    float64            `json:"weight" bson:"weight"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// ItemRef references a catalog item inside a ride request.
type ItemRef struct {
	ItemID   primitive.ObjectID `json:"item_id" bson:"item_id"`
	Quantity int                `json:"quantity" bson:"quantity"`
}

// CustomItem is request-scoped cargo described by the user; it is never
// persisted as catalog data.
type CustomItem struct {
	Name     string  `json:"name" bson:"name"`
	Length   float64 `json:"length" bson:"length"`
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
	Weight   float64 `json:"weight" bson:"weight"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// CargoSummary is the classifier output consumed by the category selector and
// the fare calculator.
type CargoSummary struct {
	TotalVolume  float64            `json:"total_volume"`
	TotalWeight  float64            `json:"total_weight"`
	BucketCounts map[SizeBucket]int `json:"bucket_counts"`
}
