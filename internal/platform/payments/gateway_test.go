package payments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stripe/stripe-go/v76"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{25, 2500},
		{19.99, 1999},
		{0.1, 10},
		{100.005, 10001},
		{0, 0},
	}
	for _, tt := range tests {
		if got := ToMinorUnits(tt.price); got != tt.want {
			t.Errorf("ToMinorUnits(%v) = %d, want %d", tt.price, got, tt.want)
		}
	}
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeGatewayWithBackends("sk_test_123", &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
}

func TestStripeGateway_CreateCardIntent(t *testing.T) {
	var gotAmount, gotCurrency, gotMethod, gotPath string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotAmount = r.PostForm.Get("amount")
		gotCurrency = r.PostForm.Get("currency")
		gotMethod = r.PostForm.Get("payment_method_types[0]")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":2500,"currency":"usd","client_secret":"pi_123_secret_abc"}`))
	})

	intent, err := gw.CreateCardIntent(context.Background(), 2500, "usd")
	if err != nil {
		t.Fatalf("CreateCardIntent() error: %v", err)
	}
	if intent.ClientSecret != "pi_123_secret_abc" {
		t.Errorf("expected client secret pi_123_secret_abc, got %q", intent.ClientSecret)
	}
	if intent.ID != "pi_123" || intent.Amount != 2500 || intent.Currency != "usd" {
		t.Errorf("unexpected intent %+v", intent)
	}
	if gotPath != "/v1/payment_intents" {
		t.Errorf("expected POST to /v1/payment_intents, got %s", gotPath)
	}
	if gotAmount != "2500" || gotCurrency != "usd" || gotMethod != "card" {
		t.Errorf("unexpected form: amount=%s currency=%s method=%s", gotAmount, gotCurrency, gotMethod)
	}
}

func TestStripeGateway_ProcessorError(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Amount must be at least 50 cents"}}`))
	})

	_, err := gw.CreateCardIntent(context.Background(), 10, "usd")
	if err == nil {
		t.Fatal("expected error from processor")
	}
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		t.Fatalf("expected wrapped *stripe.Error, got %T", err)
	}
	if stripeErr.HTTPStatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 from processor, got %d", stripeErr.HTTPStatusCode)
	}
}

func TestUnconfigured(t *testing.T) {
	_, err := Unconfigured{}.CreateCardIntent(context.Background(), 100, "usd")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
