package controllers

import (
	"errors"

	"github.com/Vitnet1814/qrmenu-sub000/entity"
	"github.com/Vitnet1814/qrmenu-sub000/pkg/resp"
	"github.com/Vitnet1814/qrmenu-sub000/services"
	"github.com/Vitnet1814/qrmenu-sub000/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
	Banners *services.BannerService
	Photos  *services.PhotoService
	QR      *services.QRService
}

func NewRestaurantController(s *services.RestaurantService, banners *services.BannerService, photos *services.PhotoService, qr *services.QRService) *RestaurantController {
	return &RestaurantController{Service: s, Banners: banners, Photos: photos, QR: qr}
}

// POST /api/restaurants
func (ctl *RestaurantController) Create(c *gin.Context) {
	userID, ok := parseObjectID(c, "userId", utils.CurrentUserID(c))
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Service.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		if errors.Is(err, entity.ErrConflict) && rest != nil {
			resp.Conflict(c, "restaurant already exists", gin.H{"restaurantId": rest.ID.Hex()})
			return
		}
		resp.Error(c, err)
		return
	}
	resp.Created(c, rest)
}

// GET /api/restaurants/id/:restaurantId
func (ctl *RestaurantController) GetByID(c *gin.Context) {
	id, ok := parseObjectID(c, "restaurantId", c.Param("restaurantId"))
	if !ok {
		return
	}

	rest, err := ctl.Service.Get(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": rest.ID.Hex(), "name": rest.Name, "slug": rest.Slug})
}

// GET /api/restaurants/user/:userId
func (ctl *RestaurantController) GetByUser(c *gin.Context) {
	userID, ok := parseObjectID(c, "userId", c.Param("userId"))
	if !ok {
		return
	}

	rest, err := ctl.Service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurantId": rest.ID.Hex()})
}

// GET /api/restaurants/stats/:restaurantId
func (ctl *RestaurantController) Stats(c *gin.Context) {
	id, ok := parseObjectID(c, "restaurantId", c.Param("restaurantId"))
	if !ok {
		return
	}

	stats, err := ctl.Service.Stats(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /api/restaurants/:id/banner
func (ctl *RestaurantController) GetBanner(c *gin.Context) {
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	banner, err := ctl.Banners.Get(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, banner)
}

// POST /api/restaurants/:id/banner
func (ctl *RestaurantController) SetBanner(c *gin.Context) {
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	var req struct {
		Image string `json:"image" binding:"required"`
		Alt   string `json:"alt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	banner, err := ctl.Banners.Set(c.Request.Context(), id, req.Image, req.Alt)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, banner)
}

// DELETE /api/restaurants/:id/banner
func (ctl *RestaurantController) RemoveBanner(c *gin.Context) {
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	deleted, err := ctl.Banners.Remove(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": deleted})
}

// GET /api/restaurants/:id/design-settings
func (ctl *RestaurantController) GetDesignSettings(c *gin.Context) {
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	theme, err := ctl.Service.DesignSettings(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, theme)
}

// PUT /api/restaurants/:id/design-settings
func (ctl *RestaurantController) UpdateDesignSettings(c *gin.Context) {
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	var theme entity.Theme
	if err := c.ShouldBindJSON(&theme); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updated, err := ctl.Service.UpdateDesignSettings(c.Request.Context(), id, theme)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, updated)
}

// GET /api/restaurants/:id/qr-settings
func (ctl *RestaurantController) GetQRSettings(c *gin.Context) {
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	settings, err := ctl.Service.QRSettings(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, settings)
}

// PUT /api/restaurants/:id/qr-settings
func (ctl *RestaurantController) UpdateQRSettings(c *gin.Context) {
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	var settings entity.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updated, err := ctl.Service.UpdateQRSettings(c.Request.Context(), id, settings)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, updated)
}

// GET /api/restaurants/:id/qr
func (ctl *RestaurantController) RenderQR(c *gin.Context) {
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	png, err := ctl.QR.Render(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.Data(200, "image/png", png)
}

// GET /api/restaurants/:id/photos
func (ctl *RestaurantController) ListPhotos(c *gin.Context) {
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	recs, err := ctl.Photos.List(c.Request.Context(), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if recs == nil {
		recs = []entity.TenantRecord{}
	}
	resp.OK(c, gin.H{"items": recs})
}

// POST /api/restaurants/:id/photos
func (ctl *RestaurantController) AddPhoto(c *gin.Context) {
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	var photo entity.Photo
	if err := c.ShouldBindJSON(&photo); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rec, err := ctl.Photos.Add(c.Request.Context(), id, photo)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rec)
}

// DELETE /api/restaurants/:id/photos/:photoId
func (ctl *RestaurantController) RemovePhoto(c *gin.Context) {
	id, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}
	photoID, ok := parseObjectID(c, "photoId", c.Param("photoId"))
	if !ok {
		return
	}

	if err := ctl.Photos.Remove(c.Request.Context(), id, photoID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "photo deleted"})
}
