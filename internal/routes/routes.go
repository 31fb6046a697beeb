package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"homechef/internal/handlers"
	"homechef/internal/repository"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database, logger *slog.Logger) {
	productRepo := repository.NewProductRepository(db)
	chefRepo := repository.NewChefRepository(db)
	h := handlers.NewProductHandler(productRepo, chefRepo, logger)

	router.GET("/health", handlers.Health)

	api := router.Group("/api")
	{
		products := api.Group("/products")
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}
