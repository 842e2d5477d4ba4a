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

type deviceTokenRepository struct {
	collection *mongo.Collection
}

func NewDeviceTokenRepository(db *mongo.Database) interfaces.DeviceTokenRepository {
	return &deviceTokenRepository{collection: db.Collection("device_tokens")}
}

func (r *deviceTokenRepository) Upsert(ctx context.Context, token *models.DeviceToken) error {
	now := time.Now()

	filter := bson.M{
		"device_id":  token.DeviceID,
		"owner_id":   token.OwnerID,
		"owner_type": token.OwnerType,
	}
	update := bson.M{
		"$set": bson.M{
			"token":       token.Token,
			"platform":    token.Platform,
			"last_active": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert device token: %w", err)
	}

	return nil
}

func (r *deviceTokenRepository) GetByOwner(ctx context.Context, ownerID primitive.ObjectID, ownerType models.OwnerType) ([]*models.DeviceToken, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID, "owner_type": ownerType})
	if err != nil {
		return nil, fmt.Errorf("failed to find device tokens: %w", err)
	}
	defer cursor.Close(ctx)

	var tokens []*models.DeviceToken
	for cursor.Next(ctx) {
		var token models.DeviceToken
		if err := cursor.Decode(&token); err != nil {
			return nil, fmt.Errorf("failed to decode device token: %w", err)
		}
		tokens = append(tokens, &token)
	}

	return tokens, nil
}

func (r *deviceTokenRepository) Delete(ctx context.Context, deviceID string, ownerID primitive.ObjectID, ownerType models.OwnerType) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{
		"device_id":  deviceID,
		"owner_id":   ownerID,
		"owner_type": ownerType,
	})
	if err != nil {
		return fmt.Errorf("failed to delete device token: %w", err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundf("device token for %s", deviceID)
	}

	return nil
}

func (r *deviceTokenRepository) TouchByOwner(ctx context.Context, ownerID primitive.ObjectID, ownerType models.OwnerType) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"owner_id": ownerID, "owner_type": ownerType},
		bson.M{"$set": bson.M{"last_active": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to touch device tokens: %w", err)
	}

	return nil
}
