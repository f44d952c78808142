package services

import (
	"context"
	"fmt"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryService struct {
	Stores StoreResolver
}

func NewCategoryService(stores StoreResolver) *CategoryService {
	return &CategoryService{Stores: stores}
}

func (s *CategoryService) Create(ctx context.Context, restaurantID primitive.ObjectID, cat entity.Category) (*entity.TenantRecord, error) {
	if cat.Name == "" {
		return nil, fmt.Errorf("category name is required: %w", entity.ErrInvalidInput)
	}
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return store.Create(ctx, entity.RecordCategory, cat, nil)
}

func (s *CategoryService) Get(ctx context.Context, restaurantID, id primitive.ObjectID) (*entity.TenantRecord, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return store.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context, restaurantID primitive.ObjectID) ([]entity.TenantRecord, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return store.GetByType(ctx, entity.RecordCategory)
}

func (s *CategoryService) Update(ctx context.Context, restaurantID, id primitive.ObjectID, cat entity.Category) (int64, error) {
	if cat.Name == "" {
		return 0, fmt.Errorf("category name is required: %w", entity.ErrInvalidInput)
	}
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return 0, err
	}
	return store.Update(ctx, id, cat)
}

// Delete removes the category and cascades to the menu items that
// reference it. The two deletes are separate writes, not a transaction.
func (s *CategoryService) Delete(ctx context.Context, restaurantID, id primitive.ObjectID) (int64, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return 0, err
	}

	deleted, err := store.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, fmt.Errorf("category %s: %w", id.Hex(), entity.ErrNotFound)
	}

	return store.DeleteMenuItemsByCategory(ctx, id)
}

func (s *CategoryService) Reorder(ctx context.Context, restaurantID primitive.ObjectID, req ReorderRequest) (*ReorderResult, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return reorderRecords(ctx, store, entity.RecordCategory, req)
}
