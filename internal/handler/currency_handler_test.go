package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayout-app/backend/internal/domain"
	"github.com/wayout-app/backend/internal/service"
)

func TestConvertCurrency_OK(t *testing.T) {
	d := defaultDeps()
	d.currency.convert = func(_ context.Context, amount float64, from, to string) (service.Conversion, error) {
		assert.InDelta(t, 100.0, amount, 1e-9)
		assert.Equal(t, "USD", from)
		assert.Equal(t, "INR", to)
		return service.Conversion{Amount: amount, From: from, To: to, Rate: 83.2, Converted: 8320}, nil
	}
	h := d.build(t)

	rec := doJSON(t, h, http.MethodGet, "/api/currency/convert?amount=100&from=USD&to=INR", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body service.Conversion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 8320.0, body.Converted, 1e-9)
}

func TestConvertCurrency_BadAmount(t *testing.T) {
	h := defaultDeps().build(t)

	rec := doJSON(t, h, http.MethodGet, "/api/currency/convert?amount=lots&from=USD&to=INR", "", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestConvertCurrency_MissingCodes(t *testing.T) {
	h := defaultDeps().build(t)

	rec := doJSON(t, h, http.MethodGet, "/api/currency/convert?amount=1", "", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestConvertCurrency_UpstreamError(t *testing.T) {
	d := defaultDeps()
	d.currency.convert = func(_ context.Context, _ float64, _, _ string) (service.Conversion, error) {
		return service.Conversion{}, domain.ErrUpstream
	}
	h := d.build(t)

	rec := doJSON(t, h, http.MethodGet, "/api/currency/convert?amount=1&from=USD&to=INR", "", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetDestinationPhoto_OK(t *testing.T) {
	d := defaultDeps()
	d.photos.destinationPhoto = func(_ context.Context, query string) string {
		assert.Equal(t, "Kyoto", query)
		return "https://img/kyoto"
	}
	h := d.build(t)

	rec := doJSON(t, h, http.MethodGet, "/api/photos?query=Kyoto", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://img/kyoto", body["url"])
}

func TestGetDestinationPhoto_MissingQuery(t *testing.T) {
	h := defaultDeps().build(t)

	rec := doJSON(t, h, http.MethodGet, "/api/photos", "", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
