package controllers

import (
	"github.com/Vitnet1814/qrmenu-sub000/entity"
	"github.com/Vitnet1814/qrmenu-sub000/pkg/resp"
	"github.com/Vitnet1814/qrmenu-sub000/prometheus"
	"github.com/Vitnet1814/qrmenu-sub000/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Service *services.CategoryService
}

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Service: s}
}

type categoryRequest struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Hidden       bool   `json:"hidden"`
}

func (req categoryRequest) payload() entity.Category {
	return entity.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Hidden:      req.Hidden,
	}
}

// POST /api/categories/post
func (ctl *CategoryController) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	restID, ok := parseObjectID(c, "restaurantId", req.RestaurantID)
	if !ok {
		return
	}

	rec, err := ctl.Service.Create(c.Request.Context(), restID, req.payload())
	if err != nil {
		resp.Error(c, err)
		return
	}
	prometheus.RecordOperation(string(entity.RecordCategory), "create")
	resp.Created(c, rec)
}

// GET /api/categories/:id/get?restaurantId=
func (ctl *CategoryController) Get(c *gin.Context) {
	restID, ok := parseObjectID(c, "restaurantId", c.Query("restaurantId"))
	if !ok {
		return
	}
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	rec, err := ctl.Service.Get(c.Request.Context(), restID, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rec)
}

// PUT /api/categories/:id/put
func (ctl *CategoryController) Update(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	restID, ok := parseObjectID(c, "restaurantId", req.RestaurantID)
	if !ok {
		return
	}
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	modified, err := ctl.Service.Update(c.Request.Context(), restID, id, req.payload())
	if err != nil {
		resp.Error(c, err)
		return
	}
	prometheus.RecordOperation(string(entity.RecordCategory), "update")
	resp.OK(c, gin.H{"modified": modified})
}

// DELETE /api/categories/:id/delete?restaurantId=
func (ctl *CategoryController) Delete(c *gin.Context) {
	restID, ok := parseObjectID(c, "restaurantId", c.Query("restaurantId"))
	if !ok {
		return
	}
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	deletedItems, err := ctl.Service.Delete(c.Request.Context(), restID, id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	prometheus.RecordOperation(string(entity.RecordCategory), "delete")
	resp.OK(c, gin.H{"message": "category deleted", "deletedItems": deletedItems})
}

// GET /api/categories/restaurant/:restaurantId
func (ctl *CategoryController) ListByRestaurant(c *gin.Context) {
	restID, ok := parseObjectID(c, "restaurantId", c.Param("restaurantId"))
	if !ok {
		return
	}

	recs, err := ctl.Service.List(c.Request.Context(), restID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if recs == nil {
		recs = []entity.TenantRecord{}
	}
	resp.OK(c, gin.H{"items": recs})
}

type reorderRequest struct {
	RestaurantID string `json:"restaurantId" binding:"required"`
	services.ReorderRequest
}

// PUT /api/categories/reorder
func (ctl *CategoryController) Reorder(c *gin.Context) {
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
