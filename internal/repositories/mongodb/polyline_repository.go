package mongodb

import (
	"context"
	"fmt"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"
	"ambition/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type polylineRepository struct {
	collection *mongo.Collection
}

func NewPolylineRepository(db *mongo.Database) interfaces.PolylineRepository {
	return &polylineRepository{collection: db.Collection("polyline_points")}
}

func (r *polylineRepository) Create(ctx context.Context, polyline *models.Polyline) error {
	polyline.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, polyline)
	if err != nil {
		return fmt.Errorf("failed to create polyline: %w", err)
	}

	return nil
}

func (r *polylineRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Polyline, error) {
	var polyline models.Polyline
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&polyline)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundf("polyline %s", id.Hex())
		}
		return nil, fmt.Errorf("failed to get polyline: %w", err)
	}

	return &polyline, nil
}

func (r *polylineRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete polyline: %w", err)
	}

	return nil
}
