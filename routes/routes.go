package routes

import (
	"context"

	"github.com/Vitnet1814/qrmenu-sub000/configs"
	"github.com/Vitnet1814/qrmenu-sub000/controllers"
	"github.com/Vitnet1814/qrmenu-sub000/middlewares"
	"github.com/Vitnet1814/qrmenu-sub000/repository"
	"github.com/Vitnet1814/qrmenu-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// storeResolver adapts the repositories to the services' resolver
// contract: restaurant id -> slug -> per-slug collection store.
type storeResolver struct {
	db          *mongo.Database
	restaurants *repository.RestaurantRepository
}

func (r *storeResolver) ByID(ctx context.Context, restaurantID primitive.ObjectID) (services.TenantStore, error) {
	slug, err := r.restaurants.ResolveSlug(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return repository.NewTenantStore(r.db, slug), nil
}

func (r *storeResolver) BySlug(slug string) services.TenantStore {
	return repository.NewTenantStore(r.db, slug)
}

func RegisterRoutes(r *gin.Engine, db *mongo.Database, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)
	stores := &storeResolver{db: db, restaurants: restaurantRepo}

	// Services
	restaurantSvc := services.NewRestaurantService(restaurantRepo, stores)
	categorySvc := services.NewCategoryService(stores)
	menuItemSvc := services.NewMenuItemService(stores)
	menuSvc := services.NewMenuService(restaurantRepo, stores)
	bannerSvc := services.NewBannerService(stores)
	photoSvc := services.NewPhotoService(stores)
	qrSvc := services.NewQRService(restaurantRepo, stores, cfg.PublicBaseURL)
	authSvc := services.NewAuthService(cfg, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restaurantSvc, bannerSvc, photoSvc, qrSvc)
	catCtrl := controllers.NewCategoryController(categorySvc)
	itemCtrl := controllers.NewMenuItemController(menuItemSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	uploadCtrl := controllers.NewUploadController(cfg.UploadDir)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.GET("/login", authCtrl.Login)
		a.GET("/callback", authCtrl.Callback)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Public menu
	api.GET("/menu/:restaurantSlug", menuCtrl.Render)
	api.GET("/menu-preview/:restaurantId", menuCtrl.Preview)

	// Categories
	cat := api.Group("/categories")
	{
		cat.POST("/post", auth, catCtrl.Create)
		cat.GET("/:id/get", catCtrl.Get)
		cat.PUT("/:id/put", auth, catCtrl.Update)
		cat.DELETE("/:id/delete", auth, catCtrl.Delete)
		cat.GET("/restaurant/:restaurantId", catCtrl.ListByRestaurant)
		cat.PUT("/reorder", auth, catCtrl.Reorder)
	}

	// Menu items
	items := api.Group("/menu-items")
	{
		items.POST("", auth, itemCtrl.Create)
		items.PUT("/reorder", auth, itemCtrl.Reorder)
		items.PUT("/:id", auth, itemCtrl.Update)
		items.DELETE("/:id", auth, itemCtrl.Delete)
		items.GET("/category/:categoryId", itemCtrl.ListByCategory)
		items.GET("/restaurant/:restaurantId", itemCtrl.ListByRestaurant)
	}

	// Restaurants
	rest := api.Group("/restaurants")
	{
		rest.POST("", auth, restCtrl.Create)
		rest.GET("/id/:restaurantId", restCtrl.GetByID)
		rest.GET("/user/:userId", restCtrl.GetByUser)
		rest.GET("/stats/:restaurantId", restCtrl.Stats)

		rest.GET("/:id/banner", restCtrl.GetBanner)
		rest.POST("/:id/banner", auth, restCtrl.SetBanner)
		rest.DELETE("/:id/banner", auth, restCtrl.RemoveBanner)

		rest.GET("/:id/design-settings", restCtrl.GetDesignSettings)
		rest.PUT("/:id/design-settings", auth, restCtrl.UpdateDesignSettings)

		rest.GET("/:id/qr-settings", restCtrl.GetQRSettings)
		rest.PUT("/:id/qr-settings", auth, restCtrl.UpdateQRSettings)
		rest.GET("/:id/qr", restCtrl.RenderQR)

		rest.GET("/:id/photos", restCtrl.ListPhotos)
		rest.POST("/:id/photos", auth, restCtrl.AddPhoto)
		rest.DELETE("/:id/photos/:photoId", auth, restCtrl.RemovePhoto)
	}

	// Uploads
	api.POST("/upload-image", auth, uploadCtrl.UploadImage)
}
