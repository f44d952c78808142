package services

import (
	"context"
	"time"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TenantStore is the generic record accessor over one restaurant's
// collection. The mongo implementation lives in repository; tests use
// in-memory fakes.
type TenantStore interface {
	Create(ctx context.Context, t entity.RecordType, data entity.RecordData, order *int) (*entity.TenantRecord, error)
	GetByType(ctx context.Context, t entity.RecordType) ([]entity.TenantRecord, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.TenantRecord, error)
	Update(ctx context.Context, id primitive.ObjectID, data entity.RecordData) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	UpdateOrder(ctx context.Context, items []entity.OrderUpdate) (int64, error)
	CountByType(ctx context.Context, t entity.RecordType) (int64, error)
	MenuItemsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]entity.TenantRecord, error)
	DeleteMenuItemsByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error)
	LatestUpdate(ctx context.Context, t entity.RecordType) (*time.Time, error)
}

// StoreResolver hands out a tenant store for a restaurant, either through
// the registry lookup (ByID) or directly when the slug is already known.
type StoreResolver interface {
	ByID(ctx context.Context, restaurantID primitive.ObjectID) (TenantStore, error)
	BySlug(slug string) TenantStore
}

// RestaurantRegistry is the central restaurants collection.
type RestaurantRegistry interface {
	Create(ctx context.Context, rest *entity.Restaurant) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Restaurant, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*entity.Restaurant, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Restaurant, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
}

// firstOfType returns the singleton record of a type, or nil when absent.
func firstOfType(ctx context.Context, store TenantStore, t entity.RecordType) (*entity.TenantRecord, error) {
	recs, err := store.GetByType(ctx, t)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// upsertSingleton updates the existing record of a type or creates it.
func upsertSingleton(ctx context.Context, store TenantStore, t entity.RecordType, data entity.RecordData) (*entity.TenantRecord, error) {
	rec, err := firstOfType(ctx, store, t)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return store.Create(ctx, t, data, nil)
	}
	if _, err := store.Update(ctx, rec.ID, data); err != nil {
		return nil, err
	}
	rec.Data = data
	rec.UpdatedAt = time.Now().UTC()
	return rec, nil
}
