package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Vitnet1814/qrmenu-sub000/configs"
	"github.com/Vitnet1814/qrmenu-sub000/middlewares"
	"github.com/Vitnet1814/qrmenu-sub000/pkg/logger"
	"github.com/Vitnet1814/qrmenu-sub000/prometheus"
	"github.com/Vitnet1814/qrmenu-sub000/repository"
	"github.com/Vitnet1814/qrmenu-sub000/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	if err := logger.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	prometheus.InitMetrics(cfg.MetricsPrefix)

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repository.NewRestaurantRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestIDMiddleware())
	r.Use(middlewares.MetricsMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// Serve normalized uploads
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
