package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.POST("", h.Apply)
		applications.PUT("/:id/status", h.UpdateStatus)
		applications.GET("/job/:jobId", h.GetJobApplications)
		applications.GET("/my", h.GetMyApplications)
		applications.GET("", h.GetAllApplications)
	}
}

// UpdateStatusRequest - тело запроса смены статуса отклика.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var application models.JobApplication
	if !h.BindAndValidate_JSON(c, &application) {
		return
	}

	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	if err := h.applicationService.Apply(c.Request.Context(), caller, &application); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	if err := h.applicationService.UpdateStatus(c.Request.Context(), caller, c.Param("id"), req.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application status updated"})
}

func (h *ApplicationHandler) GetJobApplications(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByJob(c.Request.Context(), caller, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListMine(c.Request.Context(), caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) GetAllApplications(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListAll(c.Request.Context(), caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}
