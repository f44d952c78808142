package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Subject   string             `bson:"subject" json:"-"` // OAuth provider subject id
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Picture   string             `bson:"picture,omitempty" json:"picture,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
