package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/last/GEL-USD", r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestConvert(t *testing.T) {
	server := rateServer(t, http.StatusOK, `{"GELUSD":{"ask":"0.37","bid":"0.36"}}`)
	client := NewClient(server.URL, time.Second)

	amount, err := client.Convert(context.Background(), 10000, "GEL", "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(3700), amount)
}

func TestConvert_RoundsToNearestCent(t *testing.T) {
	server := rateServer(t, http.StatusOK, `{"GELUSD":{"ask":"0.333","bid":"0.33"}}`)
	client := NewClient(server.URL, time.Second)

	amount, err := client.Convert(context.Background(), 100, "GEL", "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(33), amount)
}

func TestConvert_RateSourceDown(t *testing.T) {
	server := rateServer(t, http.StatusBadGateway, `{}`)
	client := NewClient(server.URL, time.Second)

	_, err := client.Convert(context.Background(), 100, "GEL", "USD")
	require.Error(t, err)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "GEL", convErr.From)
	assert.Equal(t, "USD", convErr.To)
}

func TestConvert_UnknownPair(t *testing.T) {
	server := rateServer(t, http.StatusOK, `{"GELEUR":{"ask":"0.34","bid":"0.33"}}`)
	client := NewClient(server.URL, time.Second)

	_, err := client.Convert(context.Background(), 100, "GEL", "USD")
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, convErr.Reason, "invalid currency pair")
}

func TestConvert_InvalidAskRate(t *testing.T) {
	server := rateServer(t, http.StatusOK, `{"GELUSD":{"ask":"not-a-number","bid":"0.36"}}`)
	client := NewClient(server.URL, time.Second)

	_, err := client.Convert(context.Background(), 100, "GEL", "USD")
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, convErr.Reason, "invalid ask rate")
}

func TestConvert_MalformedBody(t *testing.T) {
	server := rateServer(t, http.StatusOK, `not json`)
	client := NewClient(server.URL, time.Second)

	_, err := client.Convert(context.Background(), 100, "GEL", "USD")
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
}
