package mongodb

import (
	"context"
	"fmt"
	"time"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type congestionZoneRepository struct {
	collection *mongo.Collection
}

func NewCongestionZoneRepository(db *mongo.Database) interfaces.CongestionZoneRepository {
	return &congestionZoneRepository{collection: db.Collection("congestion_zones")}
}

func (r *congestionZoneRepository) Create(ctx context.Context, zone *models.CongestionZone) error {
	zone.ID = primitive.NewObjectID()
	zone.CreatedAt = time.Now()
	zone.UpdatedAt = zone.CreatedAt

	_, err := r.collection.InsertOne(ctx, zone)
	if err != nil {
		return fmt.Errorf("failed to create congestion zone: %w", err)
	}

	return nil
}

func (r *congestionZoneRepository) GetAll(ctx context.Context) ([]*models.CongestionZone, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to find congestion zones: %w", err)
	}
	defer cursor.Close(ctx)

	var zones []*models.CongestionZone
	for cursor.Next(ctx) {
		var zone models.CongestionZone
		if err := cursor.Decode(&zone); err != nil {
			return nil, fmt.Errorf("failed to decode congestion zone: %w", err)
		}
		zones = append(zones, &zone)
	}

	return zones, nil
}

// ContainsPoint uses a $geoIntersects query against the zone polygons; the
// collection carries a 2dsphere index on geometry.
func (r *congestionZoneRepository) ContainsPoint(ctx context.Context, lat, lng float64) (bool, error) {
	filter := bson.M{
		"is_active": true,
		"geometry": bson.M{
			"$geoIntersects": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{lng, lat},
				},
			},
		},
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to query congestion zones: %w", err)
	}

	return count > 0, nil
}
