// Package paystack is a thin client for the three gateway calls the
// core needs: subaccount creation, transaction initialize and verify.
// The gateway is authoritative for verification but never trusted from
// client-supplied state.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrGatewayFailure = errors.New("payment gateway request failed")

type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type VerifyResult struct {
	Status string
	Amount int
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) CreateSubaccount(ctx context.Context, businessName, bankName, accountNumber, email string) (string, error) {
	payload := map[string]any{
		"business_name":     businessName,
		"settlement_bank":   bankName,
		"account_number":    accountNumber,
		"percentage_charge": 100,
		"email":             email,
	}

	data, err := c.post(ctx, "/subaccount", payload)
	if err != nil {
		return "", err
	}

	var result struct {
		SubaccountCode string `json:"subaccount_code"`
	}
	if err = json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode subaccount response -> %w", err)
	}

	return result.SubaccountCode, nil
}

// Initialize returns the authorization URL the payer is redirected to.
// amount is in the gateway's minor unit.
func (c *Client) Initialize(ctx context.Context, email string, amount int, reference, subaccountCode string) (string, error) {
	payload := map[string]any{
		"email":      email,
		"amount":     amount,
		"reference":  reference,
		"subaccount": subaccountCode,
		"bearer":     "subaccount",
	}

	data, err := c.post(ctx, "/transaction/initialize", payload)
	if err != nil {
		return "", err
	}

	var result struct {
		AuthorizationURL string `json:"authorization_url"`
	}
	if err = json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode initialize response -> %w", err)
	}

	return result.AuthorizationURL, nil
}

func (c *Client) Verify(ctx context.Context, reference string) (VerifyResult, error) {
	data, err := c.get(ctx, "/transaction/verify/"+reference)
	if err != nil {
		return VerifyResult{}, err
	}

	var result struct {
		Status string `json:"status"`
		Amount int    `json:"amount"`
	}
	if err = json.Unmarshal(data, &result); err != nil {
		return VerifyResult{}, fmt.Errorf("decode verify response -> %w", err)
	}

	return VerifyResult{
		Status: result.Status,
		Amount: result.Amount,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request -> %w", err)
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode response -> %v", ErrGatewayFailure, err)
	}

	if resp.StatusCode != http.StatusOK || !env.Status {
		return nil, fmt.Errorf("%w: %v (%v)", ErrGatewayFailure, env.Message, resp.StatusCode)
	}

	return env.Data, nil
}
