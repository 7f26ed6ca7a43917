package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		if _, err := NewMercadoPagoGateway(" "); !errors.Is(err, ErrMissingAccessToken) {
			t.Fatalf("expected ErrMissingAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_MOCK", "yes")
		g, err := NewMercadoPagoGateway("")
		if err != nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v %v", g, err)
		}
	})
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("nil gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, _, _, err := g.CreatePayment(context.Background(), nil); !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("unconfigured client", func(t *testing.T) {
		g := &MercadoPagoGateway{}
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("mock approves and echoes payload", func(t *testing.T) {
		fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		g := &MercadoPagoGateway{mockMode: true, now: func() time.Time { return fixed }}

		id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":999,"external_reference":"a@b.com"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != "approved" || id == "" {
			t.Fatalf("unexpected result id=%s status=%s", id, status)
		}
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		if body["transaction_amount"] != 999.0 || body["external_reference"] != "a@b.com" || body["status_detail"] != "accredited" {
			t.Fatalf("unexpected body: %s", raw)
		}
	})

	t.Run("mock keeps invalid payload raw", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true, now: time.Now}
		_, _, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`[1,2]`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		if body["request_payload_raw"] != "[1,2]" {
			t.Fatalf("expected raw payload echo, got %s", raw)
		}
	})
}

func TestMercadoPagoGateway_GetPayment(t *testing.T) {
	t.Run("nil gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		if _, _, err := g.GetPayment(context.Background(), "1"); !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("unconfigured client", func(t *testing.T) {
		g := &MercadoPagoGateway{}
		if _, _, err := g.GetPayment(context.Background(), "1"); !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("mock reports approved", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true, now: time.Now}
		status, raw, err := g.GetPayment(context.Background(), "12345")
		if err != nil || status != "approved" {
			t.Fatalf("unexpected result status=%s err=%v", status, err)
		}
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		if body["id"] != "12345" {
			t.Fatalf("unexpected body: %s", raw)
		}
	})
}
