package resp

import (
	"errors"
	"net/http"

	"github.com/Vitnet1814/qrmenu-sub000/entity"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string, extra gin.H) {
	body := gin.H{"ok": false, "error": msg}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusConflict, body)
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps domain errors onto status codes; anything unrecognized is a 500.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		BadRequest(c, err.Error())
	case errors.Is(err, entity.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, entity.ErrConflict):
		Conflict(c, err.Error(), nil)
	default:
		ServerError(c, err)
	}
}
