package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type PolylinePoint struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Polyline stores the route geometry of a ride request. It is persisted before
// the request itself; a failure in between leaves an orphaned polyline, which
// is tolerated for this domain.
type Polyline struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Points []PolylinePoint    `json:"points" bson:"points"`
}
