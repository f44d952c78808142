package controllers

import (
	"github.com/Vitnet1814/qrmenu-sub000/pkg/resp"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectID converts a hex id from path/query/body, answering 400 on
// malformed input. The bool reports whether the caller should continue.
func parseObjectID(c *gin.Context, name, value string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}
