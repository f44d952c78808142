package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RestaurantRepository is the central registry of restaurants. It is the
// only collection whose name is fixed; everything else lives in per-slug
// collections.
type RestaurantRepository struct {
	col *mongo.Collection
}

func NewRestaurantRepository(db *mongo.Database) *RestaurantRepository {
	return &RestaurantRepository{col: db.Collection("restaurants")}
}

func (r *RestaurantRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}},
		},
	})
	return err
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *entity.Restaurant) error {
	rest.CreatedAt = time.Now().UTC()
	res, err := r.col.InsertOne(ctx, rest)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("slug %q: %w", rest.Slug, entity.ErrConflict)
		}
		return err
	}
	rest.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Restaurant, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *RestaurantRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*entity.Restaurant, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *RestaurantRepository) FindBySlug(ctx context.Context, slug string) (*entity.Restaurant, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

// ResolveSlug maps a restaurant id to its tenant collection name.
func (r *RestaurantRepository) ResolveSlug(ctx context.Context, id primitive.ObjectID) (string, error) {
	rest, err := r.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return rest.Slug, nil
}

func (r *RestaurantRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"viewsCount": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("restaurant %s: %w", id.Hex(), entity.ErrNotFound)
	}
	return nil
}

func (r *RestaurantRepository) findOne(ctx context.Context, filter bson.M) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.col.FindOne(ctx, filter).Decode(&rest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("restaurant: %w", entity.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}
