package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CongestionZone is a geofenced polygon that triggers a flat surcharge when a
// route's pickup or dropoff falls inside it.
type CongestionZone struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	City     string             `json:"city" bson:"city"`
	Geometry ZoneGeometry       `json:"geometry" bson:"geometry"`
	IsActive bool               `json:"is_active" bson:"is_active"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" bson:"updated_at"`
}

// ZoneGeometry is a GeoJSON polygon.
type ZoneGeometry struct {
	Type        string         `json:"type" bson:"type" default:"Polygon"`
	Coordinates [][][]float64  `json:"coordinates" bson:"coordinates"`
}
