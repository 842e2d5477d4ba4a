package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleType string

const (
	VehicleTypeVan             VehicleType = "Van"
	VehicleTypeCar             VehicleType = "Car"
	VehicleTypeRefrigerationVan VehicleType = "Refrigeration Van"
	VehicleTypeLutonVan        VehicleType = "Luton Van"
	VehicleTypeEnvironmentVan  VehicleType = "Environment Van"
)

// PriceBand is an inclusive [Min, Max] band a fare component is drawn from.
type PriceBand struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// TimeFareBracket prices a half-open duration range [StartMinutes, EndMinutes).
type TimeFareBracket struct {
	StartMinutes int     `json:"start_minutes" bson:"start_minutes"`
	EndMinutes   int     `json:"end_minutes" bson:"end_minutes"`
	MinPrice     float64 `json:"min_price" bson:"min_price"`
	MaxPrice     float64 `json:"max_price" bson:"max_price"`
}

// TimeFare is either a flat band (no brackets) or a list of non-overlapping
// brackets. With brackets, a duration outside all of them is an error, never a
// silent zero.
type TimeFare struct {
	Flat     *PriceBand        `json:"flat,omitempty" bson:"flat,omitempty"`
	Brackets []TimeFareBracket `json:"brackets,omitempty" bson:"brackets,omitempty"`
}

// VehicleCategory is catalog reference data. Capacity and Pricing are keyed by
// size bucket and are the sole source of truth for per-bucket limits; there is
// deliberately no parallel hardcoded table.
type VehicleCategory struct {
	ID                primitive.ObjectID       `json:"id" bson:"_id,omitempty"`
	VehicleType       VehicleType              `json:"vehicle_type" bson:"vehicle_type"`
	Name              string                   `json:"name" bson:"name"`
	PassengerCapacity int                      `json:"passenger_capacity" bson:"passenger_capacity"`
	PayloadCapacity   float64                  `json:"payload_capacity" bson:"payload_capacity"` // kg
	LoadVolume        float64                  `json:"load_volume" bson:"load_volume"`           // m³
	Capacity          map[SizeBucket]int       `json:"capacity" bson:"capacity"`
	Pricing           map[SizeBucket]PriceBand `json:"pricing" bson:"pricing"`
	InitialServiceFee float64                  `json:"initial_service_fee" bson:"initial_service_fee"`
	ServiceFee        float64                  `json:"service_fee" bson:"service_fee"`
	TimeFare          TimeFare                 `json:"time_fare" bson:"time_fare"`
	Description       string                   `json:"description" bson:"description"`
	CreatedAt         time.Time                `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at" bson:"updated_at"`
}

// BucketLimit returns the admissible count for a bucket, defaulting to 0 when
// the category does not list it.
func (c *VehicleCategory) BucketLimit(bucket SizeBucket) int {
	if c.Capacity == nil {
		return 0
	}
	return c.Capacity[bucket]
}

// CategorySuggestion is the selector output: one suggested category plus the
// remaining candidates in rank order.
type CategorySuggestion struct {
	Summary      *CargoSummary      `json:"request_details"`
	Suggested    *VehicleCategory   `json:"suggested_vehicle"`
	Alternatives []*VehicleCategory `json:"alternative_vehicles"`
}
