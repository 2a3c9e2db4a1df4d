package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

// ListIngredients returns ingredients filtered by the optional term
// parameter, paged when pagination parameters are present.
// GET /ingredients?term=&page=&pageSize=&sortBy=&sortDirection=
func (h *Handler) ListIngredients(c *gin.Context) {
	ctx := c.Request.Context()
	term := c.Query("term")

	if opts, ok := pageOptionsFromQuery(c); ok {
		c.JSON(http.StatusOK, h.ingredients.SearchPage(ctx, term, opts))
		return
	}

	c.JSON(http.StatusOK, h.ingredients.Search(ctx, term))
}

// GetIngredient returns one ingredient by id.
// GET /ingredients/:id
func (h *Handler) GetIngredient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient id"})
		return
	}

	ingredient := h.ingredients.Find(c.Request.Context(), id)
	if ingredient == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}

	c.JSON(http.StatusOK, ingredient)
}

// CreateIngredient saves a new ingredient.
// POST /ingredients
func (h *Handler) CreateIngredient(c *gin.Context) {
	ctx := c.Request.Context()

	var ingredient domain.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient.ID = 0
	if err := h.ingredients.Save(ctx, &ingredient); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Ingredient create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, ingredient)
}

// UpdateIngredient updates an existing ingredient by id.
// PUT /ingredients/:id
func (h *Handler) UpdateIngredient(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient id"})
		return
	}
	if h.ingredients.Find(ctx, id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}

	var ingredient domain.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient.ID = id
	if err := h.ingredients.Save(ctx, &ingredient); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("ingredient_id", id).Msg("Ingredient update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteIngredient removes an ingredient and its recipe references.
// DELETE /ingredients/:id
func (h *Handler) DeleteIngredient(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient id"})
		return
	}

	if err := h.ingredients.Delete(ctx, id); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("ingredient_id", id).Msg("Ingredient delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
