package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxcopy/maxcopy-backend/internal/models"
)

const (
	defaultSkip  = 0
	defaultLimit = 50
)

// ListProducts handles GET /api/v1/products/?skip=&limit=
func (h *Handlers) ListProducts(c *gin.Context) {
	skip := defaultSkip
	limit := defaultLimit

	if s := c.Query("skip"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid skip parameter"})
			return
		}
		skip = v
	}
	if l := c.Query("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v < 1 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid limit parameter"})
			return
		}
		limit = v
	}

	products, err := h.Service.ListProducts(c.Request.Context(), skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	product, err := h.Service.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/v1/products/
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input models.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if input.Price != nil && input.Price.IsNegative() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "price must not be negative"})
		return
	}

	product, err := h.Service.CreateProduct(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/v1/products/:id with merge-patch semantics:
// only fields present in the body are applied.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if input.Price != nil && input.Price.IsNegative() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "price must not be negative"})
		return
	}

	product, err := h.Service.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/:id
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteProduct(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
