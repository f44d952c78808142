package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Restaurant is the central registry document. Its slug doubles as the
// name of the restaurant's own collection of tenant records.
type Restaurant struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Name       string             `bson:"name" json:"name"`
	Slug       string             `bson:"slug" json:"slug"`
	ViewsCount int64              `bson:"viewsCount" json:"viewsCount"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
