package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService *services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("", h.Process)
		payments.GET("/my", h.GetMyPayments)
		payments.GET("", h.GetAllPayments)
	}
}

func (h *PaymentHandler) Process(c *gin.Context) {
	var tx models.PaymentTransaction
	if !h.BindAndValidate_JSON(c, &tx) {
		return
	}

	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	if err := h.paymentService.Process(c.Request.Context(), caller, &tx); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

func (h *PaymentHandler) GetMyPayments(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListMine(c.Request.Context(), caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetAllPayments(c *gin.Context) {
	caller, ok := h.GetCaller(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListAll(c.Request.Context(), caller)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
