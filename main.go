// Backend for the tasty kitchen web app. Gin web framework in Go with
// MongoDB as the document store.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ahmed-shaon/tasty-kitchen-server/config"
	"github.com/ahmed-shaon/tasty-kitchen-server/database"
	helper "github.com/ahmed-shaon/tasty-kitchen-server/helpers"
	"github.com/ahmed-shaon/tasty-kitchen-server/repository"
	"github.com/ahmed-shaon/tasty-kitchen-server/routes"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server startup failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Fail fast when the store is unreachable; serving traffic against a
	// dead database helps nobody.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			slog.Error("mongodb disconnect failed", "error", err)
		}
	}()
	slog.Info("connected to mongodb")

	menuRepo := repository.NewMongoMenuRepository(database.OpenCollection(client, cfg.DBName, "menu"))
	reviewRepo := repository.NewMongoReviewRepository(database.OpenCollection(client, cfg.DBName, "reviews"))
	tokenMaker := helper.NewTokenMaker(cfg.SecretKey)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "tasty kitchen server is running.")
	})

	routes.MenuRoutes(router, menuRepo)
	routes.ReviewRoutes(router, reviewRepo, tokenMaker)
	routes.TokenRoutes(router, tokenMaker)

	slog.Info("server listening", "port", cfg.Port)
	return router.Run(":" + cfg.Port)
}
