package controllers

import (
	"github.com/Vitnet1814/qrmenu-sub000/pkg/resp"
	"github.com/Vitnet1814/qrmenu-sub000/prometheus"
	"github.com/Vitnet1814/qrmenu-sub000/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// GET /api/menu/:restaurantSlug
func (ctl *MenuController) Render(c *gin.Context) {
	slug := c.Param("restaurantSlug")

	payload, err := ctl.Service.Render(c.Request.Context(), slug)
	if err != nil {
		resp.Error(c, err)
		return
	}
	prometheus.RecordMenuView(slug)
	resp.OK(c, payload)
}

// GET /api/menu-preview/:restaurantId
func (ctl *MenuController) Preview(c *gin.Context) {
	id, ok := parseObjectID(c, "restaurantId", c.Param("restaurantId"))
	if !ok {
		return
	}

	payload, err := ctl.Service.Preview(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, payload)
}
