package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideRequestStatus string

const (
	StatusPending        RideRequestStatus = "pending"
	StatusDriverAccepted RideRequestStatus = "driver_accepted"
	StatusCarAccepted    RideRequestStatus = "car_accepted"
	StatusAccepted       RideRequestStatus = "accepted"
	StatusCompleted      RideRequestStatus = "completed"
	StatusCanceled       RideRequestStatus = "canceled"
)

// IsTerminal reports whether no further transitions are allowed.
func (s RideRequestStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// IsActiveAssignment reports whether at least one role is filled and the job
// is still running. Location updates only fan out in these states.
func (s RideRequestStatus) IsActiveAssignment() bool {
	return s == StatusDriverAccepted || s == StatusCarAccepted || s == StatusAccepted
}

type Requirements struct {
	PickupFloor         int    `json:"pickup_floor" bson:"pickup_floor"`
	DropoffFloor        int    `json:"dropoff_floor" bson:"dropoff_floor"`
	RequiredHelpers     int    `json:"required_helpers" bson:"required_helpers"`
	PeopleTaggingAlong  int    `json:"people_tagging_along" bson:"people_tagging_along"`
	SpecialRequirements string `json:"special_requirements" bson:"special_requirements"`
}

type PaymentState string

const (
	PaymentStateUnpaid  PaymentState = "unpaid"
	PaymentStatePending PaymentState = "pending"
	PaymentStatePaid    PaymentState = "paid"
)

// RolePayment tracks the payment sub-record for one role of the job.
type RolePayment struct {
	State           PaymentState `json:"state" bson:"state"`
	PaymentIntentID string       `json:"payment_intent_id,omitempty" bson:"payment_intent_id,omitempty"`
	Amount          float64      `json:"amount" bson:"amount"`
}

// RideRequest is the aggregate root of the matching flow. DriverID and
// CarDriverID are independently assignable, each at most once; assignment is
// an atomic conditional update keyed on the role field being null.
type RideRequest struct {
	ID                primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID            primitive.ObjectID  `json:"user_id" bson:"user_id"`
	VehicleCategoryID primitive.ObjectID  `json:"vehicle_category_id" bson:"vehicle_category_id"`
	CarCategoryID     *primitive.ObjectID `json:"car_category_id,omitempty" bson:"car_category_id,omitempty"`
	MoveType          string              `json:"move_type" bson:"move_type"`
	PickupLocation    Location            `json:"pickup_location" bson:"pickup_location"`
	DropoffLocation   Location            `json:"dropoff_location" bson:"dropoff_location"`
	Distance          string              `json:"distance" bson:"distance"` // distance-matrix text, e.g. "5.2 km"
	EstimatedTime     int                 `json:"estimated_time" bson:"estimated_time"` // minutes
	Items             []ItemRef           `json:"items" bson:"items"`
	CustomItems       []CustomItem        `json:"custom_items" bson:"custom_items"`
	Requirements      Requirements        `json:"requirements" bson:"requirements"`
	PassengersCount   int                 `json:"passengers_count" bson:"passengers_count"`
	IsRideAndMove     bool                `json:"is_ride_and_move" bson:"is_ride_and_move"`
	IsEventJob        bool                `json:"is_event_job" bson:"is_event_job"`
	Fare              Fare                `json:"fare" bson:"fare"`
	DriverID          *primitive.ObjectID `json:"driver_id,omitempty" bson:"driver_id,omitempty"`
	CarDriverID       *primitive.ObjectID `json:"car_driver_id,omitempty" bson:"car_driver_id,omitempty"`
	Status            RideRequestStatus   `json:"status" bson:"status"`
	VehiclePayment    RolePayment         `json:"vehicle_payment" bson:"vehicle_payment"`
	CarPayment        RolePayment         `json:"car_payment" bson:"car_payment"`
	PolylineID        *primitive.ObjectID `json:"polyline_id,omitempty" bson:"polyline_id,omitempty"`
	CreatedAt         time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at" bson:"updated_at"`

	// PopulatedItems carries the resolved catalog items on reads; never stored.
	PopulatedItems []*Item `json:"populated_items,omitempty" bson:"-"`
}

// HasCarRole reports whether the request needs a car driver in addition to the
// vehicle driver.
func (r *RideRequest) HasCarRole() bool {
	return r.CarCategoryID != nil && !r.CarCategoryID.IsZero()
}
