package gateway

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Intent is the slice of a Stripe payment intent this service cares about
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"` // requires_payment_method, succeeded, ...
	Amount       int64  `json:"amount"`
}

// Client creates and re-verifies payment intents
type Client interface {
	CreateIntent(amountCents int64, currency string) (*Intent, error)
	VerifyIntent(id string) (*Intent, error)
}

// StripeClient talks to the Stripe REST API
type StripeClient struct {
	http      *resty.Client
	secretKey string
}

func NewStripeClient(apiURL, secretKey string) *StripeClient {
	return &StripeClient{
		http:      resty.New().SetBaseURL(apiURL),
		secretKey: secretKey,
	}
}

// CreateIntent creates a card payment intent for the given amount in cents
func (s *StripeClient) CreateIntent(amountCents int64, currency string) (*Intent, error) {
	resp, err := s.http.R().
		SetBasicAuth(s.secretKey, "").
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amountCents, 10),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		Post("/payment_intents")
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("create payment intent: status %d: %s", resp.StatusCode(), resp.String())
	}

	var intent Intent
	if err := json.Unmarshal(resp.Body(), &intent); err != nil {
		return nil, fmt.Errorf("parse payment intent response: %w", err)
	}
	return &intent, nil
}

// VerifyIntent fetches the current state of an intent from the gateway
func (s *StripeClient) VerifyIntent(id string) (*Intent, error) {
	resp, err := s.http.R().
		SetBasicAuth(s.secretKey, "").
		Get("/payment_intents/" + id)
	if err != nil {
		return nil, fmt.Errorf("verify payment intent: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("verify payment intent: status %d: %s", resp.StatusCode(), resp.String())
	}

	var intent Intent
	if err := json.Unmarshal(resp.Body(), &intent); err != nil {
		return nil, fmt.Errorf("parse payment intent response: %w", err)
	}
	return &intent, nil
}
