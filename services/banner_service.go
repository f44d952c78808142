package services

import (
	"context"
	"fmt"

	"github.com/Vitnet1814/qrmenu-sub000/entity"
	"github.com/Vitnet1814/qrmenu-sub000/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BannerService stores at most one banner per restaurant. Images pass
// through the normalizer before they are persisted.
type BannerService struct {
	Stores    StoreResolver
	Normalize func(data []byte) (*utils.NormalizedImage, error)
}

func NewBannerService(stores StoreResolver) *BannerService {
	return &BannerService{Stores: stores, Normalize: utils.NormalizeImage}
}

func (s *BannerService) Set(ctx context.Context, restaurantID primitive.ObjectID, imagePayload, alt string) (*entity.Banner, error) {
	if imagePayload == "" {
		return nil, fmt.Errorf("banner image is required: %w", entity.ErrInvalidInput)
	}

	raw, err := utils.DecodeImagePayload(imagePayload)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, entity.ErrInvalidInput)
	}
	img, err := s.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, entity.ErrInvalidInput)
	}

	banner := entity.Banner{
		Image:     utils.EncodeJPEGDataURL(img.Data),
		Alt:       alt,
		Width:     img.Width,
		Height:    img.Height,
		SizeBytes: int64(len(img.Data)),
		Format:    "image/jpeg",
	}

	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if _, err := upsertSingleton(ctx, store, entity.RecordBanner, banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (s *BannerService) Get(ctx context.Context, restaurantID primitive.ObjectID) (*entity.Banner, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	rec, err := firstOfType(ctx, store, entity.RecordBanner)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("banner: %w", entity.ErrNotFound)
	}
	banner := rec.Data.(entity.Banner)
	return &banner, nil
}

// Remove deletes the banner when present. Removing an absent banner is
// success with zero deleted, not an error.
func (s *BannerService) Remove(ctx context.Context, restaurantID primitive.ObjectID) (int64, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return 0, err
	}
	rec, err := firstOfType(ctx, store, entity.RecordBanner)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		return 0, nil
	}
	return store.Delete(ctx, rec.ID)
}
