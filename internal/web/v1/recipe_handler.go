package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/chefbook/recipe-service/internal/core/domain"
	"github.com/chefbook/recipe-service/middleware"
)

// ListRecipes returns recipes matching the optional term against name or
// instructions, paged when pagination parameters are present. An empty
// unpaged result is reported as not found.
// GET /recipes?term=&page=&pageSize=&sortBy=&sortDirection=
func (h *Handler) ListRecipes(c *gin.Context) {
	ctx := c.Request.Context()
	term := c.Query("term")

	if opts, ok := pageOptionsFromQuery(c); ok {
		c.JSON(http.StatusOK, h.recipes.SearchPage(ctx, term, opts))
		return
	}

	recipes := h.recipes.Search(ctx, term)
	if len(recipes) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No recipes found"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipe returns one recipe by id, author included.
// GET /recipes/:id
func (h *Handler) GetRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
		return
	}

	recipe := h.recipes.Find(c.Request.Context(), id)
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe saves a new recipe authored by the authenticated chef.
// POST /recipes
// Authorization: Bearer <token>
func (h *Handler) CreateRecipe(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "recipe.create", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	author, ok := h.auth.ResolveChef(bearerToken(c.GetHeader("Authorization")))
	if !ok {
		span.SetAttributes(attribute.Bool("auth.valid", false))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
		return
	}

	var recipe domain.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe.ID = 0
	recipe.Author = *author
	if err := h.recipes.Save(ctx, &recipe); err != nil {
		span.RecordError(err)
		zerolog.Ctx(ctx).Error().Err(err).Msg("Recipe create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	span.SetAttributes(attribute.Int("recipe.id", recipe.ID))
	recipe.Author.Password = ""
	c.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe updates instructions and author of an existing recipe.
// The name is never mutated by an update, and a reassigned author must be
// an existing chef.
// PUT /recipes/:id
func (h *Handler) UpdateRecipe(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
		return
	}

	existing := h.recipes.Find(ctx, id)
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	var body domain.Recipe
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing.Instructions = body.Instructions
	if body.Author.ID != 0 {
		author := h.chefs.Find(ctx, body.Author.ID)
		if author == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Author not found"})
			return
		}
		existing.Author = *author
	}
	if err := h.recipes.Save(ctx, existing); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("recipe_id", id).Msg("Recipe update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	existing.Author.Password = ""
	c.JSON(http.StatusOK, existing)
}

// DeleteRecipe removes a recipe and its ingredient references.
// DELETE /recipes/:id
func (h *Handler) DeleteRecipe(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id"})
		return
	}
	if h.recipes.Find(ctx, id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	if err := h.recipes.Delete(ctx, id); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("recipe_id", id).Msg("Recipe delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
