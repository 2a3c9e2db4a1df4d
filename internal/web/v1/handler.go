package v1

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chefbook/recipe-service/internal/core/domain"
	logicv1 "github.com/chefbook/recipe-service/internal/logic/v1"
)

// Handler groups the HTTP handlers for API v1.
// Dependencies are injected via the constructor — no global state.
type Handler struct {
	auth        *logicv1.AuthService
	chefs       *logicv1.ChefService
	ingredients *logicv1.IngredientService
	recipes     *logicv1.RecipeService
}

// NewHandler creates a new Handler with the given services.
func NewHandler(auth *logicv1.AuthService, chefs *logicv1.ChefService, ingredients *logicv1.IngredientService, recipes *logicv1.RecipeService) *Handler {
	return &Handler{
		auth:        auth,
		chefs:       chefs,
		ingredients: ingredients,
		recipes:     recipes,
	}
}

// RegisterRoutes registers all API v1 routes on the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", h.GetMe)

	rg.GET("/chefs", h.ListChefs)

	rg.GET("/ingredients", h.ListIngredients)
	rg.GET("/ingredients/:id", h.GetIngredient)
	rg.POST("/ingredients", h.CreateIngredient)
	rg.PUT("/ingredients/:id", h.UpdateIngredient)
	rg.DELETE("/ingredients/:id", h.DeleteIngredient)

	rg.GET("/recipes", h.ListRecipes)
	rg.GET("/recipes/:id", h.GetRecipe)
	rg.POST("/recipes", h.CreateRecipe)
	rg.PUT("/recipes/:id", h.UpdateRecipe)
	rg.DELETE("/recipes/:id", h.DeleteRecipe)
}

const bearerPrefix = "Bearer "

// bearerToken extracts the session token from an Authorization header value.
// The "Bearer " prefix is optional and matched case-insensitively; the core
// only ever sees the bare token.
func bearerToken(header string) string {
	token := strings.TrimSpace(header)
	if len(token) >= len(bearerPrefix) && strings.EqualFold(token[:len(bearerPrefix)], bearerPrefix) {
		token = strings.TrimSpace(token[len(bearerPrefix):])
	}
	return token
}

// pageOptionsFromQuery reads pagination and sorting query parameters.
// Pagination is requested iff the page parameter is present; without it
// callers get the flat, unpaged listing.
func pageOptionsFromQuery(c *gin.Context) (domain.PageOptions, bool) {
	raw, ok := c.GetQuery("page")
	if !ok {
		return domain.PageOptions{}, false
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil {
		size = 10
	}

	opts := domain.PageOptions{
		PageNumber:    page,
		PageSize:      size,
		SortBy:        c.Query("sortBy"),
		SortDirection: c.Query("sortDirection"),
	}
	return opts.Normalize(), true
}

// pathID parses the :id path parameter. The second return is false when the
// parameter is not an integer.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
