package services

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
)

// SessionLineItem is one priced entry in a checkout session.
type SessionLineItem struct {
	PriceID  string
	Quantity int64
	// AdjustableQuantity toggles quantity editing on the hosted page.
	// nil leaves the gateway default.
	AdjustableQuantity *bool
}

// SessionParams is everything needed to open a hosted checkout session.
type SessionParams struct {
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
	LineItems  []SessionLineItem
}

// PaymentGateway is the payment collaborator seen by the checkout service.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params *SessionParams) (string, error)
}

type StripeService struct {
	SecretKey  string
	WebhookKey string
}

func NewStripeService(secretKey, webhookKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{SecretKey: secretKey, WebhookKey: webhookKey}
}

// CreateCheckoutSession opens a one-time card payment session and returns
// its hosted URL.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, params *SessionParams) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(params.LineItems))
	for _, item := range params.LineItems {
		li := &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(item.PriceID),
			Quantity: stripe.Int64(item.Quantity),
		}
		if item.AdjustableQuantity != nil {
			li.AdjustableQuantity = &stripe.CheckoutSessionLineItemAdjustableQuantityParams{
				Enabled: stripe.Bool(*item.AdjustableQuantity),
			}
		}
		lineItems = append(lineItems, li)
	}

	p := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		SuccessURL:         stripe.String(params.SuccessURL),
		CancelURL:          stripe.String(params.CancelURL),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          lineItems,
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}

	sess, err := session.New(p)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

// ParseWebhook verifies the Stripe signature and decodes the event.
func (s *StripeService) ParseWebhook(r *http.Request) (stripe.Event, error) {
	var event stripe.Event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return event, err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(payload))
	sigHeader := r.Header.Get("Stripe-Signature")
	return webhook.ConstructEvent(payload, sigHeader, s.WebhookKey)
}
