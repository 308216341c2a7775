package controllers

import (
	"net/http"

	apperrors "marketplace/errors"
	"marketplace/kafka"
	"marketplace/middleware"
	"marketplace/repository"
	"marketplace/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentController struct {
	Checkout *services.CheckoutService
	Stripe   *services.StripeService
	Orders   repository.OrderRepository
	Producer kafka.ProducerAPI
	Logger   *zap.Logger
}

func NewPaymentController(checkout *services.CheckoutService, stripe *services.StripeService, orders repository.OrderRepository, producer kafka.ProducerAPI, logger *zap.Logger) *PaymentController {
	return &PaymentController{
		Checkout: checkout,
		Stripe:   stripe,
		Orders:   orders,
		Producer: producer,
		Logger:   logger,
	}
}

// CreateSession opens a checkout session for the authenticated caller.
func (pc *PaymentController) CreateSession(c *gin.Context) {
	var req struct {
		ProductIDs []string `json:"productIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.GetUserID(c)

	url, svcErr := pc.Checkout.CreateCheckoutSession(c.Request.Context(), userID, req.ProductIDs)
	if svcErr != nil {
		apperrors.Respond(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// PollOrderStatus reports whether an order has been paid.
func (pc *PaymentController) PollOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	isPaid, svcErr := pc.Checkout.GetOrderStatus(c.Request.Context(), orderID)
	if svcErr != nil {
		apperrors.Respond(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isPaid": isPaid})
}
