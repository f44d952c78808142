package services

import (
	"context"
	"fmt"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PhotoService manages the restaurant's gallery records.
type PhotoService struct {
	Stores StoreResolver
}

func NewPhotoService(stores StoreResolver) *PhotoService {
	return &PhotoService{Stores: stores}
}

func (s *PhotoService) Add(ctx context.Context, restaurantID primitive.ObjectID, photo entity.Photo) (*entity.TenantRecord, error) {
	if photo.Image == "" {
		return nil, fmt.Errorf("photo image is required: %w", entity.ErrInvalidInput)
	}
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return store.Create(ctx, entity.RecordPhoto, photo, nil)
}

func (s *PhotoService) List(ctx context.Context, restaurantID primitive.ObjectID) ([]entity.TenantRecord, error) {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return store.GetByType(ctx, entity.RecordPhoto)
}

func (s *PhotoService) Remove(ctx context.Context, restaurantID, photoID primitive.ObjectID) error {
	store, err := s.Stores.ByID(ctx, restaurantID)
	if err != nil {
		return err
	}
	deleted, err := store.Delete(ctx, photoID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("photo %s: %w", photoID.Hex(), entity.ErrNotFound)
	}
	return nil
}
