// Package payment talks to the external payment gateway. Card data never
// reaches this service; the gateway is called with an opaque token minted
// on the client side.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"cinepass/internal/pkg/config"
	"cinepass/internal/pkg/errs"
	"cinepass/internal/usecase/commands"
)

type chargeRequest struct {
	AmountCents int32  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Token       string `json:"token"`
}

type chargeResponse struct {
	Status         string `json:"status"`
	TransactionRef string `json:"transaction_ref"`
}

type httpGateway struct {
	client  *http.Client
	baseURL string
}

func NewHTTPGateway(cfg config.PaymentConfig) commands.PaymentGateway {
	return &httpGateway{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.GatewayURL,
	}
}

func (g *httpGateway) Charge(ctx context.Context, amountCents int32, token string) (*commands.PaymentResult, error) {
	body, err := json.Marshal(chargeRequest{
		AmountCents: amountCents,
		Currency:    "USD",
		Token:       token,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode charge request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build charge request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "charge request failed")
	}
	defer resp.Body.Close()

	// The gateway signals a declined card with a 200 and status "declined";
	// non-2xx means the charge may not have been attempted at all.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errs.New("gateway returned status " + resp.Status)
	}

	var out chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Wrap(err, "failed to decode charge response")
	}

	return &commands.PaymentResult{
		Confirmed:      out.Status == "confirmed",
		TransactionRef: out.TransactionRef,
	}, nil
}
