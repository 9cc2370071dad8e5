package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService *services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	profiles := r.Group("/profiles")
	{
		profiles.GET("/:principal", h.GetUserProfile)
	}
	companies := r.Group("/companies")
	{
		companies.GET("", h.GetAllCompanyProfiles)
		companies.GET("/:principal", h.GetCompanyProfile)
	}

	// Protected routes
	myProfiles := r.Group("/profiles")
	myProfiles.Use(middleware.AuthMiddleware())
	{
		myProfiles.PUT("/me", h.SaveMyProfile)
		myProfiles.GET("/me", h.GetMyProfile)
	}
	myCompanies := r.Group("/companies")
	myCompanies.Use(middleware.AuthMiddleware())
	{
		myCompanies.POST("", h.CreateCompanyProfile)
		myCompanies.PUT("/me", h.UpdateMyCompanyProfile)
		myCompanies.GET("/me", h.GetMyCompanyProfile)
	}
}

// --- User profiles ---

func (h *ProfileHandler) SaveMyProfile(c *gin.Context) {
	var profile models.UserProfile
	if !h.BindAndValidate_JSON(c, &profile) {
		return
	}

	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	if err := h.profileService.SaveUserProfile(c.Request.Context(), caller, &profile); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetCallerProfile(c.Request.Context(), caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Отсутствующий профиль - это null, а не 404
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetUserProfile(c *gin.Context) {
	profile, err := h.profileService.GetUserProfile(c.Request.Context(), c.Param("principal"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// --- Company profiles ---

func (h *ProfileHandler) CreateCompanyProfile(c *gin.Context) {
	var profile models.CompanyProfile
	if !h.BindAndValidate_JSON(c, &profile) {
		return
	}

	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	if err := h.profileService.CreateCompanyProfile(c.Request.Context(), caller, &profile); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) UpdateMyCompanyProfile(c *gin.Context) {
	var profile models.CompanyProfile
	if !h.BindAndValidate_JSON(c, &profile) {
		return
	}

	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	if err := h.profileService.UpdateCompanyProfile(c.Request.Context(), caller, &profile); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetMyCompanyProfile(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetCallerCompanyProfile(c.Request.Context(), caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetCompanyProfile(c *gin.Context) {
	profile, err := h.profileService.GetCompanyProfile(c.Request.Context(), c.Param("principal"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetAllCompanyProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListCompanyProfiles(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}
