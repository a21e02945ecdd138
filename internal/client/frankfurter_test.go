package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayout-app/backend/internal/client"
	"github.com/wayout-app/backend/internal/domain"
)

func TestFrankfurter_Latest_InjectsBaseRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		w.Write([]byte(`{"base":"USD","rates":{"INR":83.2,"EUR":0.92}}`))
	}))
	defer srv.Close()

	f := client.NewFrankfurter(srv.URL)

	rates, err := f.Latest(context.Background(), "USD")

	require.NoError(t, err)
	assert.InDelta(t, 83.2, rates["INR"], 1e-9)
	assert.InDelta(t, 0.92, rates["EUR"], 1e-9)
	assert.InDelta(t, 1.0, rates["USD"], 1e-9, "base currency rate is always 1")
}

func TestFrankfurter_Latest_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := client.NewFrankfurter(srv.URL)

	_, err := f.Latest(context.Background(), "XXX")

	assert.ErrorIs(t, err, domain.ErrUpstream)
}
