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

type carCategoryRepository struct {
	collection *mongo.Collection
}

func NewCarCategoryRepository(db *mongo.Database) interfaces.CarCategoryRepository {
	return &carCategoryRepository{collection: db.Collection("car_categories")}
}

func (r *carCategoryRepository) Create(ctx context.Context, category *models.CarCategory) error {
	category.ID = primitive.NewObjectID()
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt

	_, err := r.collection.InsertOne(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to create car category: %w", err)
	}

	return nil
}

func (r *carCategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CarCategory, error) {
	var category models.CarCategory
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundf("car category %s", id.Hex())
		}
		return nil, fmt.Errorf("failed to get car category: %w", err)
	}

	return &category, nil
}

func (r *carCategoryRepository) GetAll(ctx context.Context) ([]*models.CarCategory, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find car categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*models.CarCategory
	for cursor.Next(ctx) {
		var category models.CarCategory
		if err := cursor.Decode(&category); err != nil {
			return nil, fmt.Errorf("failed to decode car category: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}

func (r *carCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update car category: %w", err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundf("car category %s", id.Hex())
	}

	return nil
}

func (r *carCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete car category: %w", err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundf("car category %s", id.Hex())
	}

	return nil
}
