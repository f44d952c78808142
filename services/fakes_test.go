package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory TenantStore used by the service tests.
type fakeStore struct {
	recs []entity.TenantRecord
}

func (f *fakeStore) Create(_ context.Context, t entity.RecordType, data entity.RecordData, order *int) (*entity.TenantRecord, error) {
	ord := 0
	if order != nil {
		ord = *order
	} else {
		count := 0
		for _, r := range f.recs {
			if r.RecordType == t {
				count++
			}
		}
		ord = count + 1
	}
	now := time.Now().UTC()
	rec := entity.TenantRecord{
		ID:         primitive.NewObjectID(),
		RecordType: t,
		Data:       data,
		Order:      ord,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.recs = append(f.recs, rec)
	return &rec, nil
}

func (f *fakeStore) GetByType(_ context.Context, t entity.RecordType) ([]entity.TenantRecord, error) {
	var out []entity.TenantRecord
	for _, r := range f.recs {
		if r.RecordType == t {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeStore) GetByID(_ context.Context, id primitive.ObjectID) (*entity.TenantRecord, error) {
	for _, r := range f.recs {
		if r.ID == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("record %s: %w", id.Hex(), entity.ErrNotFound)
}

func (f *fakeStore) Update(_ context.Context, id primitive.ObjectID, data entity.RecordData) (int64, error) {
	for i := range f.recs {
		if f.recs[i].ID == id {
			f.recs[i].Data = data
			f.recs[i].UpdatedAt = time.Now().UTC()
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	for i := range f.recs {
		if f.recs[i].ID == id {
			f.recs = append(f.recs[:i], f.recs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) UpdateOrder(_ context.Context, items []entity.OrderUpdate) (int64, error) {
	var modified int64
	now := time.Now().UTC()
	for _, it := range items {
		for i := range f.recs {
			if f.recs[i].ID == it.ID {
				f.recs[i].Order = it.Order
				f.recs[i].UpdatedAt = now
				modified++
			}
		}
	}
	return modified, nil
}

func (f *fakeStore) CountByType(_ context.Context, t entity.RecordType) (int64, error) {
	var count int64
	for _, r := range f.recs {
		if r.RecordType == t {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) MenuItemsByCategory(_ context.Context, categoryID primitive.ObjectID) ([]entity.TenantRecord, error) {
	var out []entity.TenantRecord
	for _, r := range f.recs {
		if r.RecordType != entity.RecordMenuItem {
			continue
		}
		if item, ok := r.Data.(entity.MenuItem); ok && item.CategoryID == categoryID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeStore) DeleteMenuItemsByCategory(_ context.Context, categoryID primitive.ObjectID) (int64, error) {
	var kept []entity.TenantRecord
	var deleted int64
	for _, r := range f.recs {
		if r.RecordType == entity.RecordMenuItem {
			if item, ok := r.Data.(entity.MenuItem); ok && item.CategoryID == categoryID {
				deleted++
				continue
			}
		}
		kept = append(kept, r)
	}
	f.recs = kept
	return deleted, nil
}

func (f *fakeStore) LatestUpdate(_ context.Context, t entity.RecordType) (*time.Time, error) {
	var latest *time.Time
	for _, r := range f.recs {
		if r.RecordType != t {
			continue
		}
		if latest == nil || r.UpdatedAt.After(*latest) {
			u := r.UpdatedAt
			latest = &u
		}
	}
	return latest, nil
}

// fakeRegistry is an in-memory RestaurantRegistry.
type fakeRegistry struct {
	rests []*entity.Restaurant
}

func (f *fakeRegistry) Create(_ context.Context, rest *entity.Restaurant) error {
	for _, r := range f.rests {
		if r.Slug == rest.Slug {
			return fmt.Errorf("slug %q: %w", rest.Slug, entity.ErrConflict)
		}
	}
	rest.ID = primitive.NewObjectID()
	rest.CreatedAt = time.Now().UTC()
	f.rests = append(f.rests, rest)
	return nil
}

func (f *fakeRegistry) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Restaurant, error) {
	for _, r := range f.rests {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("restaurant: %w", entity.ErrNotFound)
}

func (f *fakeRegistry) FindByUser(_ context.Context, userID primitive.ObjectID) (*entity.Restaurant, error) {
	for _, r := range f.rests {
		if r.UserID == userID {
			return r, nil
		}
	}
	return nil, fmt.Errorf("restaurant: %w", entity.ErrNotFound)
}

func (f *fakeRegistry) FindBySlug(_ context.Context, slug string) (*entity.Restaurant, error) {
	for _, r := range f.rests {
		if r.Slug == slug {
			return r, nil
		}
	}
	return nil, fmt.Errorf("restaurant: %w", entity.ErrNotFound)
}

func (f *fakeRegistry) IncrementViews(_ context.Context, id primitive.ObjectID) error {
	for _, r := range f.rests {
		if r.ID == id {
			r.ViewsCount++
			return nil
		}
	}
	return fmt.Errorf("restaurant: %w", entity.ErrNotFound)
}

// fakeResolver maps restaurants onto fake stores, one per slug.
type fakeResolver struct {
	registry *fakeRegistry
	stores   map[string]*fakeStore
}

func newFakeResolver(registry *fakeRegistry) *fakeResolver {
	return &fakeResolver{registry: registry, stores: map[string]*fakeStore{}}
}

func (f *fakeResolver) ByID(ctx context.Context, restaurantID primitive.ObjectID) (TenantStore, error) {
	rest, err := f.registry.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return f.BySlug(rest.Slug), nil
}

func (f *fakeResolver) BySlug(slug string) TenantStore {
	store, ok := f.stores[slug]
	if !ok {
		store = &fakeStore{}
		f.stores[slug] = store
	}
	return store
}

// newTestRestaurant seeds a registry entry plus its empty store.
func newTestRestaurant(reg *fakeRegistry, name, slug string) *entity.Restaurant {
	rest := &entity.Restaurant{
		ID:        primitive.NewObjectID(),
		UserID:    primitive.NewObjectID(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now().UTC(),
	}
	reg.rests = append(reg.rests, rest)
	return rest
}
