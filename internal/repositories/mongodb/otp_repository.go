package mongodb

import (
	"context"
	"fmt"
	"time"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"
	"ambition/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type otpRepository struct {
	collection *mongo.Collection
}

func NewOTPRepository(db *mongo.Database) interfaces.OTPRepository {
	return &otpRepository{collection: db.Collection("temp_otps")}
}

func (r *otpRepository) Upsert(ctx context.Context, otp *models.TempOTP) error {
	otp.CreatedAt = time.Now()

	filter := bson.M{"phone": otp.Phone, "owner_type": otp.OwnerType}
	update := bson.M{"$set": bson.M{
		"code":       otp.Code,
		"expires_at": otp.ExpiresAt,
		"created_at": otp.CreatedAt,
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert otp: %w", err)
	}

	return nil
}

func (r *otpRepository) GetByPhone(ctx context.Context, phone string, ownerType models.OwnerType) (*models.TempOTP, error) {
	var otp models.TempOTP
	err := r.collection.FindOne(ctx, bson.M{"phone": phone, "owner_type": ownerType}).Decode(&otp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundf("otp for %s", phone)
		}
		return nil, fmt.Errorf("failed to get otp: %w", err)
	}

	return &otp, nil
}

func (r *otpRepository) Delete(ctx context.Context, phone string, ownerType models.OwnerType) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"phone": phone, "owner_type": ownerType})
	if err != nil {
		return fmt.Errorf("failed to delete otp: %w", err)
	}

	return nil
}
