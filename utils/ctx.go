package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get("userId")
	if id, ok := v.(string); ok {
		return id
	}
	return ""
}
