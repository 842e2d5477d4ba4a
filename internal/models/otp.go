package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OwnerType string

const (
	OwnerTypeUser   OwnerType = "user"
	OwnerTypeDriver OwnerType = "driver"
)

// TempOTP is a short-lived phone verification code.
type TempOTP struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Phone     string             `json:"phone" bson:"phone"`
	Code      string             `json:"-" bson:"code"`
	OwnerType OwnerType          `json:"owner_type" bson:"owner_type"`
	ExpiresAt time.Time          `json:"expires_at" bson:"expires_at"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

func (o *TempOTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
