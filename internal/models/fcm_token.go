package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DevicePlatform string

const (
	PlatformAndroid DevicePlatform = "android"
	PlatformIOS     DevicePlatform = "ios"
)

// DeviceToken registers a push target for a user or driver. Android tokens go
// through FCM, iOS tokens through APNs.
type DeviceToken struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Token     string             `json:"token" bson:"token"`
	DeviceID  string             `json:"device_id" bson:"device_id"`
	Platform  DevicePlatform     `json:"platform" bson:"platform"`
	OwnerID   primitive.ObjectID `json:"owner_id" bson:"owner_id"`
	OwnerType OwnerType          `json:"owner_type" bson:"owner_type"`
	LastActive time.Time         `json:"last_active" bson:"last_active"`
	CreatedAt  time.Time         `json:"created_at" bson:"created_at"`
}
