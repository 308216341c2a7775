package routes

import (
	"marketplace/controllers"
	"marketplace/middleware"

	"github.com/gin-gonic/gin"
)

func Register(r *gin.Engine, pc *controllers.PaymentController, ac *controllers.AuthController, jwtSecret string) {
	r.Use(middleware.RateLimitMiddleware())

	payments := r.Group("/api/payments")
	payments.Use(middleware.AuthMiddleware(jwtSecret))
	payments.POST("/session", pc.CreateSession)
	payments.GET("/orders/:id/status", pc.PollOrderStatus)

	// Stripe webhook (no auth, signature-verified)
	r.POST("/api/payments/webhook", pc.StripeWebhook)

	auth := r.Group("/api/auth")
	auth.POST("/register", ac.Register)
	auth.GET("/verify-email", ac.VerifyEmail)
}
