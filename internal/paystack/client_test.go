package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreateSubaccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/subaccount", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_key", r.Header.Get("Authorization"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Cater Co Ltd", payload["business_name"])
		assert.Equal(t, "Test Bank", payload["settlement_bank"])
		assert.Equal(t, "0123456789", payload["account_number"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"message":"Subaccount created","data":{"subaccount_code":"ACCT_abc123"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key")

	code, err := client.CreateSubaccount(context.Background(), "Cater Co Ltd", "Test Bank", "0123456789", "cater@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ACCT_abc123", code)
}

func TestClient_Initialize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/initialize", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(250000), payload["amount"])
		assert.Equal(t, "subaccount", payload["bearer"])
		assert.Equal(t, "ACCT_abc123", payload["subaccount"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/xyz"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key")

	url, err := client.Initialize(context.Background(), "owner@example.com", 250000, "ref-1", "ACCT_abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/xyz", url)
}

func TestClient_Verify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/ref-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success","amount":250000}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_key")

	result, err := client.Verify(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, 250000, result.Amount)
}

func TestClient_GatewayErrors(t *testing.T) {
	t.Run("declined envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "sk_bad_key")

		_, err := client.Verify(context.Background(), "ref-1")
		assert.ErrorIs(t, err, ErrGatewayFailure)
	})

	t.Run("unreachable gateway", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "sk_test_key")

		_, err := client.Verify(context.Background(), "ref-1")
		assert.ErrorIs(t, err, ErrGatewayFailure)
	})
}
