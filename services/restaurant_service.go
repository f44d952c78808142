package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantService struct {
	Restaurants RestaurantRegistry
	Stores      StoreResolver
}

func NewRestaurantService(restaurants RestaurantRegistry, stores StoreResolver) *RestaurantService {
	return &RestaurantService{Restaurants: restaurants, Stores: stores}
}

// Create registers a restaurant for an owner. One restaurant per owner:
// when the owner already has one, the existing record is returned together
// with a conflict error and nothing is created.
func (s *RestaurantService) Create(ctx context.Context, userID primitive.ObjectID, name string) (*entity.Restaurant, error) {
	if name == "" {
		return nil, fmt.Errorf("restaurant name is required: %w", entity.ErrInvalidInput)
	}

	existing, err := s.Restaurants.FindByUser(ctx, userID)
	if err == nil {
		return existing, fmt.Errorf("owner already has a restaurant: %w", entity.ErrConflict)
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	rest := &entity.Restaurant{
		UserID: userID,
		Name:   name,
		Slug:   slug.Make(name),
	}
	if err := s.Restaurants.Create(ctx, rest); err != nil {
		return nil, err
	}

	// seed the tenant collection so the public page has something to show
	store := s.Stores.BySlug(rest.Slug)
	if _, err := store.Create(ctx, entity.RecordRestaurantInfo, entity.RestaurantInfo{Name: name}, nil); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) Get(ctx context.Context, id primitive.ObjectID) (*entity.Restaurant, error) {
	return s.Restaurants.FindByID(ctx, id)
}

func (s *RestaurantService) GetByUser(ctx context.Context, userID primitive.ObjectID) (*entity.Restaurant, error) {
	return s.Restaurants.FindByUser(ctx, userID)
}

type RestaurantStats struct {
	Categories     int64      `json:"categories"`
	MenuItems      int64      `json:"menuItems"`
	Photos         int64      `json:"photos"`
	ViewsCount     int64      `json:"viewsCount"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastCategoryAt *time.Time `json:"lastCategoryUpdate,omitempty"`
	LastMenuItemAt *time.Time `json:"lastMenuItemUpdate,omitempty"`
}

func (s *RestaurantService) Stats(ctx context.Context, id primitive.ObjectID) (*RestaurantStats, error) {
	rest, err := s.Restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	store := s.Stores.BySlug(rest.Slug)

	stats := &RestaurantStats{
		ViewsCount: rest.ViewsCount,
		CreatedAt:  rest.CreatedAt,
	}
	if stats.Categories, err = store.CountByType(ctx, entity.RecordCategory); err != nil {
		return nil, err
	}
	if stats.MenuItems, err = store.CountByType(ctx, entity.RecordMenuItem); err != nil {
		return nil, err
	}
	if stats.Photos, err = store.CountByType(ctx, entity.RecordPhoto); err != nil {
		return nil, err
	}
	if stats.LastCategoryAt, err = store.LatestUpdate(ctx, entity.RecordCategory); err != nil {
		return nil, err
	}
	if stats.LastMenuItemAt, err = store.LatestUpdate(ctx, entity.RecordMenuItem); err != nil {
		return nil, err
	}
	return stats, nil
}

// DesignSettings returns the stored theme, or defaults when none is set.
func (s *RestaurantService) DesignSettings(ctx context.Context, restaurantID primitive.ObjectID) (entity.Theme, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return entity.Theme{}, err
	}
	rec, err := firstOfType(ctx, store, entity.RecordTheme)
	if err != nil {
		return entity.Theme{}, err
	}
	if rec == nil {
		return entity.Theme{ShowImages: true}, nil
	}
	return rec.Data.(entity.Theme), nil
}

func (s *RestaurantService) UpdateDesignSettings(ctx context.Context, restaurantID primitive.ObjectID, theme entity.Theme) (entity.Theme, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return entity.Theme{}, err
	}
	rec, err := upsertSingleton(ctx, store, entity.RecordTheme, theme)
	if err != nil {
		return entity.Theme{}, err
	}
	return rec.Data.(entity.Theme), nil
}

// QRSettings returns the stored QR rendering preferences, or defaults.
func (s *RestaurantService) QRSettings(ctx context.Context, restaurantID primitive.ObjectID) (entity.Settings, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return entity.Settings{}, err
	}
	rec, err := firstOfType(ctx, store, entity.RecordSettings)
	if err != nil {
		return entity.Settings{}, err
	}
	if rec == nil {
		return defaultQRSettings(), nil
	}
	return rec.Data.(entity.Settings), nil
}

func (s *RestaurantService) UpdateQRSettings(ctx context.Context, restaurantID primitive.ObjectID, settings entity.Settings) (entity.Settings, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return entity.Settings{}, err
	}
	rec, err := upsertSingleton(ctx, store, entity.RecordSettings, settings)
	if err != nil {
		return entity.Settings{}, err
	}
	return rec.Data.(entity.Settings), nil
}

func defaultQRSettings() entity.Settings {
	return entity.Settings{
		QRSize:       512,
		QRForeground: "#000000",
		QRBackground: "#ffffff",
	}
}
