package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/middleware"
	"github.com/healthyrecipehub/backend/internal/service"
	"github.com/healthyrecipehub/backend/internal/types"
)

type RecipeHandler struct {
	recipeService     *service.RecipeService
	recommendService  *service.RecommendationService
	authService       *service.AuthService
	processingLimiter *middleware.RateLimiter
}

func NewRecipeHandler(recipeService *service.RecipeService, recommendService *service.RecommendationService, authService *service.AuthService, processingLimiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipeService:     recipeService,
		recommendService:  recommendService,
		authService:       authService,
		processingLimiter: processingLimiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/analytics", h.GetAnalytics)
		recipes.POST("/:id/view", h.RecordView)
		recipes.POST("/:id/like", middleware.AuthMiddleware(h.authService), h.RecordLike)

		process := recipes.Group("/process")
		process.Use(middleware.AuthMiddleware(h.authService))
		if h.processingLimiter != nil {
			process.Use(h.processingLimiter.RateLimitMiddleware())
		}
		process.POST("", h.ProcessRecipe)
	}

	recommendations := router.Group("/recommendations")
	recommendations.Use(middleware.AuthMiddleware(h.authService))
	recommendations.GET("", h.GetRecommendations)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperr.New(apperr.InvalidArgument, "invalid recipe id"))
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) GetAnalytics(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperr.New(apperr.InvalidArgument, "invalid recipe id"))
		return
	}

	analytics, err := h.recipeService.Analytics(c.Request.Context(), id, time.Now())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *RecipeHandler) RecordView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperr.New(apperr.InvalidArgument, "invalid recipe id"))
		return
	}

	if err := h.recipeService.RecordView(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

func (h *RecipeHandler) RecordLike(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperr.New(apperr.InvalidArgument, "invalid recipe id"))
		return
	}

	if err := h.recipeService.RecordLike(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "recorded"})
}

func (h *RecipeHandler) ProcessRecipe(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req types.ProcessRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.recipeService.ProcessRecipe(c.Request.Context(), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) GetRecommendations(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var maxCalories float64
	if raw := c.Query("max_calories"); raw != "" {
		maxCalories, err = strconv.ParseFloat(raw, 64)
		if err != nil || maxCalories < 0 {
			c.Error(apperr.New(apperr.InvalidArgument, "invalid max_calories"))
			return
		}
	}

	ranked, err := h.recommendService.Recommend(c.Request.Context(), userID, maxCalories)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": ranked})
}
