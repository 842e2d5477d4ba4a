package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarCategory is the passenger-side counterpart of VehicleCategory, used for
// the "car driver" role on combined ride-and-move jobs.
type CarCategory struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	MaxCapacity int                `json:"max_capacity" bson:"max_capacity"`
	BaseFare    PriceBand          `json:"base_fare" bson:"base_fare"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
