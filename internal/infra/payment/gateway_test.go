//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinepass/internal/infra/payment"
	"cinepass/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGateway_Charge(t *testing.T) {
	t.Run("confirmed charge", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/charges", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status":          "confirmed",
				"transaction_ref": "txn_42",
			})
		}))
		defer srv.Close()

		gw := payment.NewHTTPGateway(config.PaymentConfig{GatewayURL: srv.URL, Timeout: 2 * time.Second})
		result, err := gw.Charge(context.Background(), 4697, "tok_test_visa")
		require.NoError(t, err)

		assert.True(t, result.Confirmed)
		assert.Equal(t, "txn_42", result.TransactionRef)
		assert.Equal(t, float64(4697), gotBody["amount_cents"])
		assert.Equal(t, "tok_test_visa", gotBody["token"])
	})

	t.Run("declined charge is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "declined"})
		}))
		defer srv.Close()

		gw := payment.NewHTTPGateway(config.PaymentConfig{GatewayURL: srv.URL, Timeout: 2 * time.Second})
		result, err := gw.Charge(context.Background(), 4697, "tok_test_declined")
		require.NoError(t, err)
		assert.False(t, result.Confirmed)
	})

	t.Run("gateway error status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		gw := payment.NewHTTPGateway(config.PaymentConfig{GatewayURL: srv.URL, Timeout: 2 * time.Second})
		_, err := gw.Charge(context.Background(), 4697, "tok_test_visa")
		assert.Error(t, err)
	})
}
