package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	API_KEY   = "key-123"
	SENDER_ID = "POLYMER"
	PHONE     = "+15551234567"
	TEXT      = "Your order is ready"
	REF       = "a1b2c3d4e5f6g7h8"
)

func smslineCfg(url string) SmslineConfig {
	return SmslineConfig{ApiUrl: url, ApiKey: API_KEY, SenderId: SENDER_ID}
}

func TestSmsline_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "Bearer "+API_KEY, r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req smslineRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, SENDER_ID, req.Sender)
		require.Equal(t, TEXT, req.Body)
		require.Equal(t, []string{PHONE}, req.Recipients)
		require.Equal(t, REF, req.Reference)

		_ = json.NewEncoder(w).Encode(smslineResponse{Status: 0, MessageId: "gw-42"})
	}))
	defer server.Close()

	p := NewSmsline(smslineCfg(server.URL), nil, zap.NewNop())

	res := p.Send(context.Background(), PHONE, TEXT, REF)

	require.True(t, res.Success)
	require.Equal(t, "smsline", res.Provider)
	require.Equal(t, "gw-42", res.ProviderMsgId)
	require.Empty(t, res.ErrorDetail)
}

func TestSmsline_SendHttpError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(smslineResponse{Status: 7, Message: "rate limited"})
	}))
	defer server.Close()

	p := NewSmsline(smslineCfg(server.URL), nil, zap.NewNop())

	res := p.Send(context.Background(), PHONE, TEXT, REF)

	require.False(t, res.Success)
	require.Contains(t, res.ErrorDetail, "http 500")
	require.Contains(t, res.ErrorDetail, "rate limited")
}

func TestSmsline_SendGatewayRejection(t *testing.T) {
	//2xx transport with a non-zero gateway status code is still a failure
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(smslineResponse{Status: 3, Message: "unknown recipient"})
	}))
	defer server.Close()

	p := NewSmsline(smslineCfg(server.URL), nil, zap.NewNop())

	res := p.Send(context.Background(), PHONE, TEXT, REF)

	require.False(t, res.Success)
	require.Contains(t, res.ErrorDetail, "gateway status 3")
	require.Contains(t, res.ErrorDetail, "unknown recipient")
}

func TestSmsline_SendTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	p := NewSmsline(smslineCfg(server.URL), nil, zap.NewNop())

	res := p.Send(context.Background(), PHONE, TEXT, REF)

	require.False(t, res.Success)
	require.NotEmpty(t, res.ErrorDetail)
}

type countingClient struct {
	calls int
}

func (c *countingClient) Do(req *http.Request) (*http.Response, error) {
	c.calls++
	return nil, http.ErrHandlerTimeout
}

func TestSmsline_SendNotConfigured(t *testing.T) {
	client := &countingClient{}
	p := NewSmsline(SmslineConfig{}, client, zap.NewNop())

	res := p.Send(context.Background(), PHONE, TEXT, REF)

	require.False(t, res.Success)
	require.Contains(t, res.ErrorDetail, "not configured")
	//fail fast, no network call
	require.Equal(t, 0, client.calls)
}

func TestSmsline_Name(t *testing.T) {
	p := NewSmsline(SmslineConfig{}, nil, zap.NewNop())
	require.Equal(t, "smsline", p.Name())
}
