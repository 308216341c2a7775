package services

import (
	"context"
	"fmt"

	apperrors "marketplace/errors"
	"marketplace/models"
	"marketplace/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutService orchestrates checkout-session creation and order status
// polling. No retries, no rollback: a gateway failure after order creation
// leaves the pending order in place for external reconciliation.
type CheckoutService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	gateway  PaymentGateway

	serverURL  string
	feePriceID string

	logger *zap.Logger
}

func NewCheckoutService(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	gateway PaymentGateway,
	serverURL, feePriceID string,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		products:   products,
		orders:     orders,
		gateway:    gateway,
		serverURL:  serverURL,
		feePriceID: feePriceID,
		logger:     logger,
	}
}

// CreateCheckoutSession validates the requested product ids, creates a
// pending order for the user and opens a hosted checkout session. Returns
// the session URL.
func (s *CheckoutService) CreateCheckoutSession(ctx context.Context, userID string, productIDs []string) (string, *apperrors.Error) {
	if len(productIDs) == 0 {
		return "", apperrors.InvalidArgument("No product IDs provided")
	}

	products, err := s.products.FindByIDs(ctx, productIDs)
	if err != nil {
		return "", apperrors.Internal("Failed to look up products", err)
	}
	if len(products) == 0 {
		return "", apperrors.NotFound("No products found")
	}

	purchasable := make([]models.Product, 0, len(products))
	for _, prod := range products {
		if prod.Purchasable() {
			purchasable = append(purchasable, prod)
		}
	}
	if len(purchasable) == 0 {
		return "", apperrors.InvalidArgument("No valid products with price IDs found")
	}

	order := &models.Order{
		ID:     uuid.NewString(),
		IsPaid: false,
		UserID: userID,
	}
	for _, prod := range purchasable {
		order.Products = append(order.Products, prod.ID)
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return "", apperrors.Internal("Failed to create order", err)
	}

	lineItems := make([]SessionLineItem, 0, len(purchasable)+1)
	for _, prod := range purchasable {
		lineItems = append(lineItems, SessionLineItem{
			PriceID:  prod.PriceID,
			Quantity: 1,
		})
	}
	// Flat transaction fee, one per order, quantity locked.
	adjustable := false
	lineItems = append(lineItems, SessionLineItem{
		PriceID:            s.feePriceID,
		Quantity:           1,
		AdjustableQuantity: &adjustable,
	})

	url, err := s.gateway.CreateCheckoutSession(ctx, &SessionParams{
		SuccessURL: fmt.Sprintf("%s/thank-you?orderId=%s", s.serverURL, order.ID),
		CancelURL:  s.serverURL + "/cart",
		Metadata: map[string]string{
			"userId":  userID,
			"orderId": order.ID,
		},
		LineItems: lineItems,
	})
	if err != nil {
		s.logger.Warn("Checkout session creation failed, order left pending",
			zap.String("order_id", order.ID),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return "", apperrors.Internal("Failed to create checkout session", err)
	}

	return url, nil
}

// GetOrderStatus reports the paid flag of an order.
func (s *CheckoutService) GetOrderStatus(ctx context.Context, orderID string) (bool, *apperrors.Error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if err == repository.ErrNotFound {
			return false, apperrors.NotFound("Order not found")
		}
		return false, apperrors.Internal("Failed to look up order", err)
	}
	return order.IsPaid, nil
}
