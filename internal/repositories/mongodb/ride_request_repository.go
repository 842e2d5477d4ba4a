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

type rideRequestRepository struct {
	collection *mongo.Collection
}

func NewRideRequestRepository(db *mongo.Database) interfaces.RideRequestRepository {
	return &rideRequestRepository{collection: db.Collection("ride_requests")}
}

func (r *rideRequestRepository) Create(ctx context.Context, request *models.RideRequest) error {
	request.ID = primitive.NewObjectID()
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	if request.Status == "" {
		request.Status = models.StatusPending
	}

	_, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to create ride request: %w", err)
	}

	return nil
}

func (r *rideRequestRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideRequest, error) {
	var request models.RideRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundf("ride request %s", id.Hex())
		}
		return nil, fmt.Errorf("failed to get ride request: %w", err)
	}

	return &request, nil
}

func (r *rideRequestRepository) GetAll(ctx context.Context) ([]*models.RideRequest, error) {
	return r.find(ctx, bson.M{})
}

func (r *rideRequestRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.RideRequest, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *rideRequestRepository) GetByDriver(ctx context.Context, driverID primitive.ObjectID) ([]*models.RideRequest, error) {
	return r.find(ctx, bson.M{"$or": []bson.M{
		{"driver_id": driverID},
		{"car_driver_id": driverID},
	}})
}

func (r *rideRequestRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update ride request: %w", err)
	}
	if result.MatchedCount == 0 {
		return utils.NotFoundf("ride request %s", id.Hex())
	}

	return nil
}

func (r *rideRequestRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete ride request: %w", err)
	}
	if result.DeletedCount == 0 {
		return utils.NotFoundf("ride request %s", id.Hex())
	}

	return nil
}

// AssignDriver sets driver_id with one conditional pipeline update. The filter
// only matches while the role is unfilled and the request is still open, so
// two concurrent accepts can never both commit. The pipeline computes the
// resulting status from the document being updated: a request whose car role
// is already filled (or that has no car role) goes straight to accepted.
func (r *rideRequestRepository) AssignDriver(ctx context.Context, id, driverID primitive.ObjectID) (*models.RideRequest, error) {
	filter := bson.M{
		"_id":       id,
		"driver_id": nil,
		"status":    bson.M{"$in": []models.RideRequestStatus{models.StatusPending, models.StatusCarAccepted}},
	}

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"driver_id":  driverID,
			"updated_at": "$$NOW",
			"status": bson.M{"$switch": bson.M{
				"branches": bson.A{
					bson.M{
						"case": bson.M{"$eq": bson.A{"$status", models.StatusCarAccepted}},
						"then": models.StatusAccepted,
					},
					bson.M{
						"case": bson.M{"$eq": bson.A{bson.M{"$ifNull": bson.A{"$car_category_id", nil}}, nil}},
						"then": models.StatusAccepted,
					},
				},
				"default": models.StatusDriverAccepted,
			}},
		}}},
	}

	return r.conditionalAssign(ctx, id, filter, update, "driver_id")
}

// AssignCarDriver is the symmetric conditional write for the car-driver role.
func (r *rideRequestRepository) AssignCarDriver(ctx context.Context, id, driverID primitive.ObjectID) (*models.RideRequest, error) {
	filter := bson.M{
		"_id":           id,
		"car_driver_id": nil,
		"status":        bson.M{"$in": []models.RideRequestStatus{models.StatusPending, models.StatusDriverAccepted}},
	}

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"car_driver_id": driverID,
			"updated_at":    "$$NOW",
			"status": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.StatusDriverAccepted}},
				models.StatusAccepted,
				models.StatusCarAccepted,
			}},
		}}},
	}

	return r.conditionalAssign(ctx, id, filter, update, "car_driver_id")
}

func (r *rideRequestRepository) conditionalAssign(ctx context.Context, id primitive.ObjectID, filter bson.M, update mongo.Pipeline, roleField string) (*models.RideRequest, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var request models.RideRequest
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&request)
	if err == nil {
		return &request, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to assign %s: %w", roleField, err)
	}

	// The conditional write matched nothing; load the document to tell the
	// caller why.
	existing, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	filled := existing.DriverID != nil
	if roleField == "car_driver_id" {
		filled = existing.CarDriverID != nil
	}
	if filled {
		return nil, fmt.Errorf("%s on request %s: %w", roleField, id.Hex(), utils.ErrAlreadyAssigned)
	}
	return nil, utils.InvalidArgumentf("request %s is %s", id.Hex(), existing.Status)
}

func (r *rideRequestRepository) UpdateStatusFrom(ctx context.Context, id primitive.ObjectID, allowed []models.RideRequestStatus, to models.RideRequestStatus) (bool, error) {
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$in": allowed},
	}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"status":     to,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return false, fmt.Errorf("failed to update ride request status: %w", err)
	}

	return result.MatchedCount > 0, nil
}

func (r *rideRequestRepository) SetRolePayment(ctx context.Context, id primitive.ObjectID, role string, payment models.RolePayment) error {
	field := "vehicle_payment"
	if role == "car" {
		field = "car_payment"
	}

	return r.Update(ctx, id, map[string]interface{}{field: payment})
}

func (r *rideRequestRepository) find(ctx context.Context, filter bson.M) ([]*models.RideRequest, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find ride requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*models.RideRequest
	for cursor.Next(ctx) {
		var request models.RideRequest
		if err := cursor.Decode(&request); err != nil {
			return nil, fmt.Errorf("failed to decode ride request: %w", err)
		}
		requests = append(requests, &request)
	}

	return requests, nil
}
