package services

import (
	"context"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// MenuService assembles the full public menu payload for one restaurant.
type MenuService struct {
	Restaurants RestaurantRegistry
	Stores      StoreResolver
}

func NewMenuService(restaurants RestaurantRegistry, stores StoreResolver) *MenuService {
	return &MenuService{Restaurants: restaurants, Stores: stores}
}

type MenuPayload struct {
	Restaurant *entity.Restaurant     `json:"restaurant"`
	Info       *entity.RestaurantInfo `json:"info,omitempty"`
	Categories []entity.TenantRecord  `json:"categories"`
	Items      []entity.TenantRecord  `json:"items"`
	Theme      *entity.Theme          `json:"theme,omitempty"`
	Banner     *entity.Banner         `json:"banner,omitempty"`
}

// Render serves the public menu by slug and counts the view. The counter
// is bumped only after the payload assembled successfully, exactly once
// per call.
func (s *MenuService) Render(ctx context.Context, slug string) (*MenuPayload, error) {
	rest, err := s.Restaurants.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	payload, err := s.assemble(ctx, rest)
	if err != nil {
		return nil, err
	}
	if err := s.Restaurants.IncrementViews(ctx, rest.ID); err != nil {
		return nil, err
	}
	return payload, nil
}

// Preview serves the same payload by restaurant id without touching the
// view counter.
func (s *MenuService) Preview(ctx context.Context, restaurantID primitive.ObjectID) (*MenuPayload, error) {
	rest, err := s.Restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, rest)
}

// assemble fetches the five record groups with a fixed-arity fan-out.
func (s *MenuService) assemble(ctx context.Context, rest *entity.Restaurant) (*MenuPayload, error) {
	store := s.Stores.BySlug(rest.Slug)
	payload := &MenuPayload{Restaurant: rest}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rec, err := firstOfType(gctx, store, entity.RecordRestaurantInfo)
		if err != nil {
			return err
		}
		if rec != nil {
			info := rec.Data.(entity.RestaurantInfo)
			payload.Info = &info
		}
		return nil
	})
	g.Go(func() error {
		recs, err := store.GetByType(gctx, entity.RecordCategory)
		if err != nil {
			return err
		}
		payload.Categories = recs
		return nil
	})
	g.Go(func() error {
		recs, err := store.GetByType(gctx, entity.RecordMenuItem)
		if err != nil {
			return err
		}
		payload.Items = recs
		return nil
	})
	g.Go(func() error {
		rec, err := firstOfType(gctx, store, entity.RecordTheme)
		if err != nil {
			return err
		}
		if rec != nil {
			theme := rec.Data.(entity.Theme)
			payload.Theme = &theme
		}
		return nil
	})
	g.Go(func() error {
		rec, err := firstOfType(gctx, store, entity.RecordBanner)
		if err != nil {
			return err
		}
		if rec != nil {
			banner := rec.Data.(entity.Banner)
			payload.Banner = &banner
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if payload.Categories == nil {
		payload.Categories = []entity.TenantRecord{}
	}
	if payload.Items == nil {
		payload.Items = []entity.TenantRecord{}
	}
	return payload, nil
}
