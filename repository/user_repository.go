package repository

import (
	"context"
	"time"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// Upsert creates or refreshes the user identified by the OAuth subject id.
func (r *UserRepository) Upsert(ctx context.Context, subject, email, name, picture string) (*entity.User, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	update := bson.M{
		"$set": bson.M{
			"email":   email,
			"name":    name,
			"picture": picture,
		},
		"$setOnInsert": bson.M{
			"subject":   subject,
			"createdAt": time.Now().UTC(),
		},
	}

	var user entity.User
	err := r.col.FindOneAndUpdate(ctx, bson.M{"subject": subject}, update, opts).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
