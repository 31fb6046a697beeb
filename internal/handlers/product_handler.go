package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"homechef/internal/models"
	"homechef/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

type ProductHandler struct {
	products repository.ProductRepository
	chefs    repository.ChefRepository
	logger   *slog.Logger
}

func NewProductHandler(products repository.ProductRepository, chefs repository.ChefRepository, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		chefs:    chefs,
		logger:   logger,
	}
}

// ProductWithChef is a catalog entry enriched with its chef's summary.
type ProductWithChef struct {
	models.Product
	Chef *models.ChefSummary `json:"chef,omitempty"`
}

// ProductWithChefDetail carries the larger chef projection used on the
// single-product view.
type ProductWithChefDetail struct {
	models.Product
	Chef *models.ChefDetail `json:"chef,omitempty"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// ListProducts handles GET /api/products. Only active, available
// products are returned; category and cuisine accept "All" as no-op.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}

	query := repository.ListQuery{
		Category: c.Query("category"),
		Cuisine:  c.Query("cuisine"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	}

	ctx := c.Request.Context()

	products, total, err := h.products.List(ctx, query)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	enriched, err := h.withChefSummaries(ctx, products)
	if err != nil {
		h.logger.Error("failed to resolve chef summaries", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	pages := (total + int64(limit) - 1) / int64(limit)

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: gin.H{
			"products": enriched,
			"pagination": Pagination{
				Page:  page,
				Limit: limit,
				Total: total,
				Pages: pages,
			},
		},
	})
}

// GetProduct handles GET /api/products/:id. Inactive or unavailable
// products are still returned here so owners can inspect them.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	ctx := c.Request.Context()

	product, err := h.products.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("failed to fetch product", "id", c.Param("id"), "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	enriched := ProductWithChefDetail{Product: *product}

	chef, err := h.chefs.FindByID(ctx, product.ChefID.Hex())
	switch {
	case err == nil:
		detail := chef.Detail()
		enriched.Chef = &detail
	case errors.Is(err, repository.ErrNotFound):
		// Dangling chef reference; return the product without a projection.
	default:
		h.logger.Error("failed to fetch chef", "chefId", product.ChefID.Hex(), "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    gin.H{"product": enriched},
	})
}

// CreateProduct handles POST /api/products. The owning chef must exist
// before validation and persistence run.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := c.Request.Context()

	chef, err := h.chefs.FindByID(ctx, input.ChefID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Chef not found")
			return
		}
		h.logger.Error("failed to look up chef", "chefId", input.ChefID, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	if errs := models.ValidateProductInput(&input); len(errs) > 0 {
		respondValidationErrors(c, http.StatusUnprocessableEntity, errs)
		return
	}

	product := input.ToProduct(chef.ID)
	if err := h.products.Create(ctx, product); err != nil {
		h.logger.Error("failed to create product", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    gin.H{"product": product},
	})
}

// UpdateProduct handles PUT /api/products/:id. Only the fields present
// in the payload are written, re-validated with the creation rules.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := models.ValidateProductUpdate(&update); len(errs) > 0 {
		respondValidationErrors(c, http.StatusUnprocessableEntity, errs)
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("failed to update product", "id", c.Param("id"), "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    gin.H{"product": product},
	})
}

// DeleteProduct handles DELETE /api/products/:id. This is a hard delete.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	err := h.products.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Error("failed to delete product", "id", c.Param("id"), "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// withChefSummaries joins one page of products against their chefs in a
// single batched lookup.
func (h *ProductHandler) withChefSummaries(ctx context.Context, products []models.Product) ([]ProductWithChef, error) {
	seen := make(map[primitive.ObjectID]bool, len(products))
	ids := make([]primitive.ObjectID, 0, len(products))
	for i := range products {
		if !seen[products[i].ChefID] {
			seen[products[i].ChefID] = true
			ids = append(ids, products[i].ChefID)
		}
	}

	summaries, err := h.chefs.Summaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	enriched := make([]ProductWithChef, 0, len(products))
	for i := range products {
		entry := ProductWithChef{Product: products[i]}
		if summary, ok := summaries[products[i].ChefID]; ok {
			entry.Chef = &summary
		}
		enriched = append(enriched, entry)
	}

	return enriched, nil
}
