package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxcopy/maxcopy-backend/internal/ai"
	"github.com/maxcopy/maxcopy-backend/internal/models"
)

// ListAIContentsForProduct handles
// GET /api/v1/products/:id/ai-contents?channel=&content_type=
func (h *Handlers) ListAIContentsForProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	contents, err := h.Service.ListAIContentsForProduct(
		c.Request.Context(), id, c.Query("channel"), c.Query("content_type"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contents)
}

// GetAIContent handles GET /api/v1/ai-contents/:id
func (h *Handlers) GetAIContent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	content, err := h.Service.GetAIContent(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// CreateAIContent handles POST /api/v1/products/:id/ai-contents. The
// product_id always comes from the path; a mismatching body value is
// ignored.
func (h *Handlers) CreateAIContent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.CreateAIContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	input.ProductID = id

	content, err := h.Service.CreateAIContent(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, content)
}

// GenerateListing handles POST /api/v1/products/:id/generate/:channel
func (h *Handlers) GenerateListing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	channel := c.Param("channel")
	if !ai.KnownChannel(channel) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown channel: " + channel})
		return
	}

	content, err := h.Service.GenerateListing(c.Request.Context(), id, channel, c.Query("model"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, content)
}
