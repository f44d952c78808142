package services

import (
	"context"
	"fmt"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItemService struct {
	Stores StoreResolver
}

func NewMenuItemService(stores StoreResolver) *MenuItemService {
	return &MenuItemService{Stores: stores}
}

func (s *MenuItemService) Create(ctx context.Context, restaurantID primitive.ObjectID, item entity.MenuItem) (*entity.TenantRecord, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return store.Create(ctx, entity.RecordMenuItem, item, nil)
}

func (s *MenuItemService) Update(ctx context.Context, restaurantID, id primitive.ObjectID, item entity.MenuItem) (int64, error) {
	if err := validateMenuItem(item); err != nil {
		return 0, err
	}
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return 0, err
	}
	return store.Update(ctx, id, item)
}

// Delete removes one menu item. Unlike the category path there is nothing
// to cascade.
func (s *MenuItemService) Delete(ctx context.Context, restaurantID, id primitive.ObjectID) error {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return err
	}
	deleted, err := store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("menu item %s: %w", id.Hex(), entity.ErrNotFound)
	}
	return nil
}

func (s *MenuItemService) ListByCategory(ctx context.Context, restaurantID, categoryID primitive.ObjectID) ([]entity.TenantRecord, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return store.MenuItemsByCategory(ctx, categoryID)
}

func (s *MenuItemService) ListAll(ctx context.Context, restaurantID primitive.ObjectID) ([]entity.TenantRecord, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return store.GetByType(ctx, entity.RecordMenuItem)
}

func (s *MenuItemService) Reorder(ctx context.Context, restaurantID primitive.ObjectID, req ReorderRequest) (*ReorderResult, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return reorderRecords(ctx, store, entity.RecordMenuItem, req)
}

func validateMenuItem(item entity.MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("menu item name is required: %w", entity.ErrInvalidInput)
	}
	if item.CategoryID.IsZero() {
		return fmt.Errorf("menu item categoryId is required: %w", entity.ErrInvalidInput)
	}
	if item.Price < 0 {
		return fmt.Errorf("menu item price must not be negative: %w", entity.ErrInvalidInput)
	}
	return nil
}
