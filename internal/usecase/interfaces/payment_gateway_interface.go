package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway charges garage subscriptions through an external provider
// (Mercado Pago). The raw provider response is returned for troubleshooting.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	// GetPayment reads the current status of a payment created earlier.
	GetPayment(ctx context.Context, providerPaymentID string) (providerStatus string, providerResponse json.RawMessage, err error)
}
