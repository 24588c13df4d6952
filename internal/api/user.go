package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/middleware"
	"github.com/healthyrecipehub/backend/internal/service"
)

type UserHandler struct {
	userService  *service.UserService
	emailService service.IEmailService
	authService  *service.AuthService
}

func NewUserHandler(userService *service.UserService, emailService service.IEmailService, authService *service.AuthService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		emailService: emailService,
		authService:  authService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.Use(middleware.AuthMiddleware(h.authService))
	{
		users.GET("/stats", h.GetStats)
		users.POST("/welcome-email", h.SendWelcomeEmail)
	}
}

func (h *UserHandler) GetStats(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	stats, err := h.userService.Stats(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *UserHandler) SendWelcomeEmail(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.emailService.SendWelcomeEmail(user.Email, user.DisplayName); err != nil {
		c.Error(apperr.Wrap(apperr.Internal, "failed to send welcome email", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
