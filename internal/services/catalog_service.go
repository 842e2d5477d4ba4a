package services

import (
	"context"

	"ambition/internal/models"
	"ambition/internal/repositories/interfaces"
	"ambition/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogService is the maintenance surface for the reference data the
// matching pipeline reads: items, vehicle categories and car categories.
type CatalogService struct {
	itemRepo        interfaces.ItemRepository
	categoryRepo    interfaces.VehicleCategoryRepository
	carCategoryRepo interfaces.CarCategoryRepository
}

func NewCatalogService(
	itemRepo interfaces.ItemRepository,
	categoryRepo interfaces.VehicleCategoryRepository,
	carCategoryRepo interfaces.CarCategoryRepository,
) *CatalogService {
	return &CatalogService{
		itemRepo:        itemRepo,
		categoryRepo:    categoryRepo,
		carCategoryRepo: carCategoryRepo,
	}
}

func (s *CatalogService) CreateItem(ctx context.Context, item *models.Item) error {
	if item.Name == "" {
		return utils.InvalidArgumentf("item name is required")
	}
	if !validBucket(item.ItemType) {
		return utils.InvalidArgumentf("unknown item type %q", item.ItemType)
	}
	return s.itemRepo.Create(ctx, item)
}

func (s *CatalogService) GetItem(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListItems(ctx context.Context) ([]*models.Item, error) {
	return s.itemRepo.GetAll(ctx)
}

func (s *CatalogService) UpdateItem(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return s.itemRepo.Update(ctx, id, updates)
}

func (s *CatalogService) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	return s.itemRepo.Delete(ctx, id)
}

func (s *CatalogService) CreateVehicleCategory(ctx context.Context, category *models.VehicleCategory) error {
	if category.Name == "" {
		return utils.InvalidArgumentf("category name is required")
	}
	for bucket := range category.Capacity {
		if !validBucket(bucket) {
			return utils.InvalidArgumentf("unknown capacity bucket %q", bucket)
		}
	}
	for bucket := range category.Pricing {
		if !validBucket(bucket) {
			return utils.InvalidArgumentf("unknown pricing bucket %q", bucket)
		}
	}
	return s.categoryRepo.Create(ctx, category)
}

func (s *CatalogService) GetVehicleCategory(ctx context.Context, id primitive.ObjectID) (*models.VehicleCategory, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListVehicleCategories(ctx context.Context) ([]*models.VehicleCategory, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *CatalogService) UpdateVehicleCategory(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return s.categoryRepo.Update(ctx, id, updates)
}

func (s *CatalogService) DeleteVehicleCategory(ctx context.Context, id primitive.ObjectID) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *CatalogService) CreateCarCategory(ctx context.Context, category *models.CarCategory) error {
	if category.Name == "" {
		return utils.InvalidArgumentf("category name is required")
	}
	return s.carCategoryRepo.Create(ctx, category)
}

func (s *CatalogService) GetCarCategory(ctx context.Context, id primitive.ObjectID) (*models.CarCategory, error) {
	return s.carCategoryRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListCarCategories(ctx context.Context) ([]*models.CarCategory, error) {
	return s.carCategoryRepo.GetAll(ctx)
}

func (s *CatalogService) UpdateCarCategory(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return s.carCategoryRepo.Update(ctx, id, updates)
}

func (s *CatalogService) DeleteCarCategory(ctx context.Context, id primitive.ObjectID) error {
	return s.carCategoryRepo.Delete(ctx, id)
}

func validBucket(bucket models.SizeBucket) bool {
	_, ok := models.BucketBounds[bucket]
	return ok
}
