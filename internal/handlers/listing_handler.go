package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	*BaseHandler
	listingService *services.ListingService
}

func NewListingHandler(base *BaseHandler, listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

func (h *ListingHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.GetAllListings)
		jobs.GET("/:id", h.GetListing)
	}

	// Protected routes
	protected := r.Group("/jobs")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.PostListing)
		protected.PUT("/:id", h.UpdateListing)
		protected.DELETE("/:id", h.DeleteListing)
		protected.GET("/mine", h.GetMyListings)
	}
}

func (h *ListingHandler) PostListing(c *gin.Context) {
	var listing models.JobListing
	if !h.BindAndValidate_JSON(c, &listing) {
		return
	}

	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	if err := h.listingService.PostListing(c.Request.Context(), caller, &listing); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (h *ListingHandler) UpdateListing(c *gin.Context) {
	var listing models.JobListing
	if !h.BindAndValidate_JSON(c, &listing) {
		return
	}
	// id в пути имеет приоритет над id в теле
	listing.ID = c.Param("id")

	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	if err := h.listingService.UpdateListing(c.Request.Context(), caller, &listing); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) DeleteListing(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	if err := h.listingService.DeleteListing(c.Request.Context(), caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job listing deleted"})
}

func (h *ListingHandler) GetListing(c *gin.Context) {
	listing, err := h.listingService.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) GetAllListings(c *gin.Context) {
	listings, err := h.listingService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) GetMyListings(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	listings, err := h.listingService.ListByCompany(c.Request.Context(), caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}
