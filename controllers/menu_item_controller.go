package controllers

import (
	"github.com/Vitnet1814/qrmenu-sub000/entity"
	"github.com/Vitnet1814/qrmenu-sub000/pkg/resp"
	"github.com/Vitnet1814/qrmenu-sub000/prometheus"
	"github.com/Vitnet1814/qrmenu-sub000/services"

	"github.com/gin-gonic/gin"
)

type MenuItemController struct {
	Service *services.MenuItemService
}

func NewMenuItemController(s *services.MenuItemService) *MenuItemController {
	return &MenuItemController{Service: s}
}

type menuItemRequest struct {
	RestaurantID string  `json:"restaurantId" binding:"required"`
	CategoryID   string  `json:"categoryId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Weight       string  `json:"weight"`
	Image        string  `json:"image"`
	Hidden       bool    `json:"hidden"`
}

// POST /api/menu-items
func (ctl *MenuItemController) Create(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	restID, ok := parseObjectID(c, "restaurantId", req.RestaurantID)
	if !ok {
		return
	}
	catID, ok := parseObjectID(c, "categoryId", req.CategoryID)
	if !ok {
		return
	}

	item := entity.MenuItem{
		CategoryID:  catID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Weight:      req.Weight,
		Image:       req.Image,
		Hidden:      req.Hidden,
	}
	rec, err := ctl.Service.Create(c.Request.Context(), restID, item)
	if err != nil {
		resp.Error(c, err)
		return
	}
	prometheus.RecordOperation(string(entity.RecordMenuItem), "create")
	resp.Created(c, rec)
}

// PUT /api/menu-items/:id
func (ctl *MenuItemController) Update(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	restID, ok := parseObjectID(c, "restaurantId", req.RestaurantID)
	if !ok {
		return
	}
	catID, ok := parseObjectID(c, "categoryId", req.CategoryID)
	if !ok {
		return
	}
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	item := entity.MenuItem{
		CategoryID:  catID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Weight:      req.Weight,
		Image:       req.Image,
		Hidden:      req.Hidden,
	}
	modified, err := ctl.Service.Update(c.Request.Context(), restID, id, item)
	if err != nil {
		resp.Error(c, err)
		return
	}
	prometheus.RecordOperation(string(entity.RecordMenuItem), "update")
	resp.OK(c, gin.H{"modified": modified})
}

// DELETE /api/menu-items/:id?restaurantId=
func (ctl *MenuItemController) Delete(c *gin.Context) {
	restID, ok := parseObjectID(c, "restaurantId", c.Query("restaurantId"))
	if !ok {
		return
	}
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	if err := ctl.Service.Delete(c.Request.Context(), restID, id); err != nil {
		resp.Error(c, err)
		return
	}
	prometheus.RecordOperation(string(entity.RecordMenuItem), "delete")
	resp.OK(c, gin.H{"message": "menu item deleted"})
}

// GET /api/menu-items/category/:categoryId?restaurantId=
func (ctl *MenuItemController) ListByCategory(c *gin.Context) {
	restID, ok := parseObjectID(c, "restaurantId", c.Query("restaurantId"))
	if !ok {
		return
	}
	catID, ok := parseObjectID(c, "categoryId", c.Param("categoryId"))
	if !ok {
		return
	}

	recs, err := ctl.Service.ListByCategory(c.Request.Context(), restID, catID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if recs == nil {
		recs = []entity.TenantRecord{}
	}
	resp.OK(c, gin.H{"items": recs})
}

// GET /api/menu-items/restaurant/:restaurantId
func (ctl *MenuItemController) ListByRestaurant(c *gin.Context) {
	restID, ok := parseObjectID(c, "restaurantId", c.Param("restaurantId"))
	if !ok {
		return
	}

	recs, err := ctl.Service.ListAll(c.Request.Context(), restID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if recs == nil {
		recs = []entity.TenantRecord{}
	}
	resp.OK(c, gin.H{"items": recs})
}

// PUT /api/menu-items/reorder
func (ctl *MenuItemController) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	restID, ok := parseObjectID(c, "restaurantId", req.RestaurantID)
	if !ok {
		return
	}

	result, err := ctl.Service.Reorder(c.Request.Context(), restID, req.ReorderRequest)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if result.Moved && result.Modified != result.Expected {
		resp.OK(c, gin.H{"message": "reorder partially applied", "result": result})
		return
	}
	resp.OK(c, gin.H{"message": "order updated", "result": result})
}
