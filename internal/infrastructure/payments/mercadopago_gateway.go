package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"garage_manager/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrNotConfigured      = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges garage subscriptions. In mock mode every
// payment is approved locally without calling the provider.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if MockEnabled() {
		log.Printf("[garage][payment-gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrMissingAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[garage][payment-gateway] sdk config failed err=%v", err)
		return nil, err
	}
	log.Printf("[garage][payment-gateway] client initialized sandbox=%t", strings.HasPrefix(accessToken, "TEST-"))
	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g == nil {
		return "", "", nil, ErrNotConfigured
	}
	if g.mockMode {
		return g.approveLocally(requestPayload)
	}
	if g.client == nil {
		return "", "", nil, ErrNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[garage][payment-gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[garage][payment-gateway] create failed payload_len=%d err=%v", len(requestPayload), err)
		return "", "", nil, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	id := fmt.Sprintf("%d", resp.ID)
	log.Printf("[garage][payment-gateway] create done payment_id=%s status=%s", id, resp.Status)
	return id, resp.Status, raw, nil
}

// GetPayment reads back a payment, used to settle renewals that were still
// pending when they were created. Mock mode reports every payment approved.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (string, json.RawMessage, error) {
	if g == nil {
		return "", nil, ErrNotConfigured
	}
	if g.mockMode {
		raw, err := json.Marshal(map[string]any{"id": providerPaymentID, "status": "approved"})
		if err != nil {
			return "", nil, err
		}
		return "approved", raw, nil
	}
	if g.client == nil {
		return "", nil, ErrNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return "", nil, fmt.Errorf("invalid payment id %q: %w", providerPaymentID, err)
	}
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[garage][payment-gateway] get failed payment_id=%d err=%v", id, err)
		return "", nil, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", nil, err
	}
	log.Printf("[garage][payment-gateway] get done payment_id=%d status=%s", id, resp.Status)
	return resp.Status, raw, nil
}

// approveLocally echoes the request back as an approved payment.
func (g *MercadoPagoGateway) approveLocally(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = stamp
	resp["date_approved"] = stamp

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[garage][payment-gateway] mock approved payment_id=%s", id)
	return id, "approved", raw, nil
}

// MockEnabled reads PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK.
func MockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
