package mongodb

import (
	"context"
	"fmt"
	"time"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"
	"ambition/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type vehicleCategoryRepository struct {
	collection *mongo.Collection
}

func NewVehicleCategoryRepository(db *mongo.Database) interfaces.VehicleCategoryRepository {
	return &vehicleCategoryRepository{collection: db.Collection("vehicle_categories")}
}

func (r *vehicleCategoryRepository) Create(ctx context.Context, category *models.VehicleCategory) error {
	category.ID = primitive.NewObjectID()
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt

	_, err := r.collection.InsertOne(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to create vehicle category: %w", err)
	}

	return nil
}

func (r *vehicleCategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VehicleCategory, error) {
	var category models.VehicleCategory
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundf("vehicle category %s", id.Hex())
		}
		return nil, fmt.Errorf("failed to get vehicle category: %w", err)
	}

	return &category, nil
}

func (r *vehicleCategoryRepository) GetAll(ctx context.Context) ([]*models.VehicleCategory, error) {
	return r.find(ctx, bson.M{})
}

// FindEligible mirrors the catalog query made at selection time: every
// returned category can hold the aggregate volume, weight and passengers.
// Per-bucket filtering happens in the selector off category.Capacity.
func (r *vehicleCategoryRepository) FindEligible(ctx context.Context, totalVolume, totalWeight float64, passengers int) ([]*models.VehicleCategory, error) {
	return r.find(ctx, bson.M{
		"load_volume":        bson.M{"$gte": totalVolume},
		"payload_capacity":   bson.M{"$gte": totalWeight},
		"passenger_capacity": bson.M{"$gte": passengers},
	})
}

func (r *vehicleCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update vehicle category: %w", err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundf("vehicle category %s", id.Hex())
	}

	return nil
}

func (r *vehicleCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle category: %w", err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundf("vehicle category %s", id.Hex())
	}

	return nil
}

func (r *vehicleCategoryRepository) find(ctx context.Context, filter bson.M) ([]*models.VehicleCategory, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "service_fee", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*models.VehicleCategory
	for cursor.Next(ctx) {
		var category models.VehicleCategory
		if err := cursor.Decode(&category); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle category: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}
