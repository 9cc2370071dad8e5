package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AccessHandler struct {
	*BaseHandler
	accessService *services.AccessService
}

func NewAccessHandler(base *BaseHandler, accessService *services.AccessService) *AccessHandler {
	return &AccessHandler{
		BaseHandler:   base,
		accessService: accessService,
	}
}

func (h *AccessHandler) RegisterRoutes(r *gin.RouterGroup) {
	access := r.Group("/access")
	access.Use(middleware.OptionalAuthMiddleware())
	{
		access.GET("/role", h.GetCallerRole)
		access.GET("/is-admin", h.IsCallerAdmin)
	}

	protected := r.Group("/access")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/initialize", h.Initialize)
		protected.POST("/roles", h.AssignRole)
	}
}

// AssignRoleRequest - тело запроса назначения роли.
type AssignRoleRequest struct {
	Principal string `json:"principal" validate:"required"`
	Role      string `json:"role" validate:"required,is-user-role"`
}

func (h *AccessHandler) Initialize(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	if err := h.accessService.Initialize(c.Request.Context(), caller); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Access control initialized"})
}

func (h *AccessHandler) AssignRole(c *gin.Context) {
	var req AssignRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	if err := h.accessService.AssignRole(c.Request.Context(), caller, req.Principal, models.UserRole(req.Role)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role assigned"})
}

func (h *AccessHandler) GetCallerRole(c *gin.Context) {
	role, err := h.accessService.GetCallerRole(c.Request.Context(), h.OptionalCaller(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role})
}

func (h *AccessHandler) IsCallerAdmin(c *gin.Context) {
	isAdmin, err := h.accessService.IsAdmin(c.Request.Context(), h.OptionalCaller(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}
