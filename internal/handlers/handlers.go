package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxcopy/maxcopy-backend/internal/models"
	"github.com/maxcopy/maxcopy-backend/internal/service"
)

// ProductService is the service surface the HTTP layer depends on.
type ProductService interface {
	ListProducts(ctx context.Context, skip, limit int) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, in models.CreateProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, in models.UpdateProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetAIContent(ctx context.Context, id int64) (*models.AIContent, error)
	ListAIContentsForProduct(ctx context.Context, productID int64, channel, contentType string) ([]models.AIContent, error)
	CreateAIContent(ctx context.Context, in models.CreateAIContentInput) (*models.AIContent, error)
	GenerateListing(ctx context.Context, productID int64, channel, modelName string) (*models.AIContent, error)
}

// Handlers holds the dependencies shared by all HTTP handlers.
type Handlers struct {
	Service ProductService
}

// HealthCheck is the liveness endpoint.
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// idParam parses the :id path parameter. A non-numeric id never reaches the
// service layer.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id parameter"})
		return 0, false
	}
	return id, true
}

// respondError maps service-level failures to status codes. Handlers do no
// business logic of their own.
func (h *Handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound), errors.Is(err, service.ErrAIContentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicateSKU):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrGenerationFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
