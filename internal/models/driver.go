package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverStatus string

const (
	DriverStatusOnline  DriverStatus = "online"
	DriverStatusOffline DriverStatus = "offline"
)

type DriverCar struct {
	Make       string             `json:"make" bson:"make"`
	Model      string             `json:"model" bson:"model"`
	Year       int                `json:"year" bson:"year"`
	Plate      string             `json:"plate" bson:"plate"`
	Color      string             `json:"color" bson:"color"`
	CategoryID primitive.ObjectID `json:"category_id" bson:"category_id"`
}

// Driver is a directory record. CategoryID on the car is what role matching
// compares against a ride request's vehicle and car categories.
type Driver struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name"`
	Email              string             `json:"email" bson:"email"`
	Phone              string             `json:"phone" bson:"phone"`
	Password           string             `json:"-" bson:"password"`
	Car                DriverCar          `json:"car" bson:"car"`
	Status             DriverStatus       `json:"status" bson:"status"`
	Disabled           bool               `json:"disabled" bson:"disabled"`
	Location           Location           `json:"location" bson:"location"`
	Profile            string             `json:"profile" bson:"profile"`
	NationalIDFront    string             `json:"national_id_front" bson:"national_id_front"`
	NationalIDBack     string             `json:"national_id_back" bson:"national_id_back"`
	DriverLicenseFront string             `json:"driver_license_front" bson:"driver_license_front"`
	DriverLicenseBack  string             `json:"driver_license_back" bson:"driver_license_back"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}
