package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"homechef/internal/config"
	"homechef/internal/database"
	"homechef/internal/repository"
	"homechef/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)

	if err := repository.EnsureProductIndexes(context.Background(), db); err != nil {
		log.Fatal("failed to create product indexes:", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	router := gin.Default()
	routes.RegisterRoutes(router, db, logger)

	log.Println("server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
