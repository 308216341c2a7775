package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"marketplace/models"
	"marketplace/repository"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// StripeWebhook receives and dispatches Stripe webhook events. This is the
// only writer of an order's paid flag.
func (pc *PaymentController) StripeWebhook(c *gin.Context) {
	event, err := pc.Stripe.ParseWebhook(c.Request)
	if err != nil {
		pc.Logger.Warn("Stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook"})
		return
	}

	pc.Logger.Info("Processing Stripe webhook",
		zap.String("event_type", string(event.Type)),
		zap.String("event_id", event.ID),
	)

	switch event.Type {
	case "checkout.session.completed":
		// A transient persistence failure must not be acked, or the
		// gateway never redelivers and the settlement is lost.
		if err := pc.handleCheckoutCompleted(c, event); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record settlement"})
			return
		}
	default:
		pc.Logger.Info("Unhandled webhook event type", zap.String("event_type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

func (pc *PaymentController) handleCheckoutCompleted(c *gin.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		pc.Logger.Error("Failed to unmarshal checkout session", zap.Error(err))
		return nil
	}

	orderID := sess.Metadata["orderId"]
	userID := sess.Metadata["userId"]
	if orderID == "" || userID == "" {
		pc.Logger.Warn("Missing metadata in checkout session",
			zap.String("session_id", sess.ID),
			zap.Any("metadata", sess.Metadata),
		)
		return nil
	}

	if err := pc.Orders.MarkPaid(c.Request.Context(), orderID); err != nil {
		if err == repository.ErrNotFound {
			// Retrying will not conjure the order; ack and move on.
			pc.Logger.Error("Order not found for completed session",
				zap.String("session_id", sess.ID),
				zap.String("order_id", orderID),
			)
			return nil
		}
		pc.Logger.Error("Failed to mark order paid",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return err
	}

	// Best-effort fan-out; the webhook still acks if Kafka is down.
	if pc.Producer != nil {
		if err := pc.Producer.SendPaymentEvent(models.PaymentEvent{
			Type:      "order_paid",
			OrderID:   orderID,
			UserID:    userID,
			SessionID: sess.ID,
			Timestamp: time.Now().UTC(),
		}); err != nil {
			pc.Logger.Warn("Failed to publish payment event",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
	}
	return nil
}
