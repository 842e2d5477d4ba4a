package services

import (
	"context"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService is the thin directory surface over user records; account
// creation and login live in AuthService.
type UserService struct {
	userRepo interfaces.UserRepository
}

func NewUserService(userRepo interfaces.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return s.userRepo.Update(ctx, id, updates)
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.userRepo.Delete(ctx, id)
}
