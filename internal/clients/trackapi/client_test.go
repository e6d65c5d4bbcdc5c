package trackapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insiderwatch/tracker/internal/models"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(WithBaseURL(server.URL), WithRateLimit(1000))
	return client, server
}

func TestSearchTickers(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "AAP", r.URL.Query().Get("q"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`{"result":[{"symbol":"AAPL","description":"APPLE INC"},{"symbol":"AAP","description":"ADVANCE AUTO PARTS"}]}`))
	})
	defer server.Close()

	items, err := client.SearchTickers(context.Background(), "AAP")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "AAPL", items[0].Symbol)
	assert.Equal(t, "APPLE INC", items[0].Description)
}

func TestSearchTickers_MissingResultPayload(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":0}`))
	})
	defer server.Close()

	items, err := client.SearchTickers(context.Background(), "ZZZZ")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetInsiderTrades(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/insider-trades", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("ticker"))
		assert.Equal(t, "12m", r.URL.Query().Get("period"))
		assert.Equal(t, "PS_ONLY", r.URL.Query().Get("filter"))
		w.Write([]byte(`{
			"transactionsResponse": {"transactions": [
				{"id":"f1","issuer":{"tradingSymbol":"AAPL"},"reportingOwner":{"name":"COOK"},
				 "nonDerivativeTable":{"transactions":[
					{"transactionDate":"2026-08-01","coding":{"code":"P"},"amounts":{"shares":100,"pricePerShare":150.25}}
				 ]}}
			]},
			"quote": {"c":229.5,"d":1.2,"dp":0.52,"h":231.0,"l":228.1}
		}`))
	})
	defer server.Close()

	result, err := client.GetInsiderTrades(context.Background(), models.NewQuery("AAPL", models.Period12M, models.FilterPSOnly))
	require.NoError(t, err)
	require.Len(t, result.Documents, 1)
	assert.Equal(t, "f1", result.Documents[0].ID)
	require.NotNil(t, result.Quote)
	assert.Equal(t, 229.5, result.Quote.CurrentPrice.Float64())
}

func TestGetInsiderTrades_QuoteOmitted(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transactionsResponse":{"transactions":[]}}`))
	})
	defer server.Close()

	result, err := client.GetInsiderTrades(context.Background(), models.NewQuery("AAPL", models.Period12M, models.FilterAll))
	require.NoError(t, err)
	assert.Empty(t, result.Documents)
	assert.Nil(t, result.Quote)
}

func TestGetInsiderTrades_BackendErrorVerbatim(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"ticker not found"}`))
	})
	defer server.Close()

	_, err := client.GetInsiderTrades(context.Background(), models.NewQuery("NOPE", models.Period3M, models.FilterAll))
	require.Error(t, err)
	assert.Equal(t, "ticker not found", err.Error(), "backend error message must surface verbatim")
}

func TestGetInsiderTrades_BackendErrorOn200(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"upstream quota exceeded"}`))
	})
	defer server.Close()

	_, err := client.GetInsiderTrades(context.Background(), models.NewQuery("AAPL", models.Period12M, models.FilterPSOnly))
	require.Error(t, err)
	assert.Equal(t, "upstream quota exceeded", err.Error())
}

func TestGetDailyFeed(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/daily-feed", r.URL.Path)
		w.Write([]byte(`{"transactions":[{"id":"f9","issuer":{"tradingSymbol":"NVDA"},"reportingOwner":{"name":"HUANG"}}]}`))
	})
	defer server.Close()

	docs, err := client.GetDailyFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "NVDA", docs[0].Issuer.TradingSymbol)
}

func TestGet_NonJSONErrorBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream timeout`))
	})
	defer server.Close()

	_, err := client.GetDailyFeed(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "/daily-feed", apiErr.Endpoint)
}

func TestGet_ContextCancelled(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetDailyFeed(ctx)
	assert.Error(t, err)
}
