package configs

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

func DB() *mongo.Database {
	return database
}

// ConnectionDB dials MongoDB once per process; subsequent calls reuse the handle.
func ConnectionDB(cfg *Config) {
	if client != nil {
		return
	}
	if cfg.MongoURI == "" || cfg.MongoDB == "" {
		log.Fatal("MONGODB_URI and MONGODB_DB must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	if err := c.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping mongodb: %v", err)
	}

	client = c
	database = c.Database(cfg.MongoDB)
}

func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
