package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/middleware"
	"github.com/healthyrecipehub/backend/internal/models"
	"github.com/healthyrecipehub/backend/internal/service"
	"github.com/healthyrecipehub/backend/internal/types"
)

type AdminHandler struct {
	bulkService   *service.BulkService
	userService   *service.UserService
	reportService *service.ReportService
	exportService service.IExportService
	authService   *service.AuthService
	bulkLimiter   *middleware.RateLimiter
}

func NewAdminHandler(bulkService *service.BulkService, userService *service.UserService, reportService *service.ReportService, exportService service.IExportService, authService *service.AuthService, bulkLimiter *middleware.RateLimiter) *AdminHandler {
	return &AdminHandler{
		bulkService:   bulkService,
		userService:   userService,
		reportService: reportService,
		exportService: exportService,
		authService:   authService,
		bulkLimiter:   bulkLimiter,
	}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(h.authService), middleware.RequireRole(models.RoleAdmin))
	{
		bulk := admin.Group("/recipes/bulk")
		if h.bulkLimiter != nil {
			bulk.Use(h.bulkLimiter.RateLimitMiddleware())
		}
		bulk.POST("", h.BulkProcess)

		admin.PUT("/users/:id/role", h.UpdateUserRole)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.GET("/reports", h.ListReports)
		admin.POST("/exports/recipes", h.ExportRecipes)
	}
}

func (h *AdminHandler) BulkProcess(c *gin.Context) {
	actorID, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req types.BulkProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	results, processed, err := h.bulkService.Process(c.Request.Context(), actorID, req.Operation, req.RecipeIDs)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "processed": processed})
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	actorID, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperr.New(apperr.InvalidArgument, "invalid user id"))
		return
	}

	var req types.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.userService.UpdateRole(c.Request.Context(), actorID, targetID, models.Role(req.Role))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperr.New(apperr.InvalidArgument, "invalid user id"))
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), actorID, targetID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *AdminHandler) ListReports(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.Error(apperr.New(apperr.InvalidArgument, "invalid limit"))
			return
		}
		limit = parsed
	}

	reports, err := h.reportService.List(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *AdminHandler) ExportRecipes(c *gin.Context) {
	if h.exportService == nil {
		c.Error(apperr.New(apperr.Internal, "export service not configured"))
		return
	}

	url, err := h.exportService.ExportRecipesCSV(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
