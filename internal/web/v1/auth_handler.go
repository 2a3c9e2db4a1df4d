package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/chefbook/recipe-service/internal/core/domain"
	logicv1 "github.com/chefbook/recipe-service/internal/logic/v1"
	"github.com/chefbook/recipe-service/middleware"
)

// Register handles HTTP request for chef registration.
// POST /register
func (h *Handler) Register(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "auth.register", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var chef domain.Chef
	if err := c.ShouldBindJSON(&chef); err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Msg("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.Register(ctx, &chef); err != nil {
		span.RecordError(err)
		logger.Error().Err(err).Str("username", chef.Username).Msg("Registration failed")

		switch {
		case errors.Is(err, logicv1.ErrUsernameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		case errors.Is(err, logicv1.ErrPasswordRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		case errors.Is(err, logicv1.ErrChefExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	span.SetAttributes(attribute.Int("chef.id", chef.ID))
	logger.Info().Int("chef_id", chef.ID).Msg("Registration successful")

	chef.Password = ""
	c.JSON(http.StatusCreated, chef)
}

// Login handles HTTP request for chef login. On success the token is
// returned in the body and echoed in the Authorization response header.
// POST /login
func (h *Handler) Login(c *gin.Context) {
	ctx, span := middleware.StartSpan(c.Request.Context(), "auth.login", trace.WithAttributes(
		attribute.String("layer", "web"),
	))
	defer span.End()

	logger := zerolog.Ctx(ctx)

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("auth.success", false))
		// One message for unknown user and wrong password alike.
		logger.Warn().Err(err).Msg("Login failed")

		if errors.Is(err, logicv1.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	span.SetAttributes(attribute.Bool("auth.success", true))
	logger.Info().Msg("Login successful")

	c.Header("Authorization", token)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout invalidates the presented session token.
// POST /logout
// Authorization: Bearer <token>
func (h *Handler) Logout(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" || !h.auth.IsValid(token) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
		return
	}

	h.auth.Logout(token)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// GetMe resolves the chef behind the presented session token.
// GET /me
// Authorization: Bearer <token>
func (h *Handler) GetMe(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return
	}

	chef, ok := h.auth.ResolveChef(token)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	chef.Password = ""
	c.JSON(http.StatusOK, chef)
}
