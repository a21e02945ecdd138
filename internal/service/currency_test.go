package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayout-app/backend/internal/domain"
	"github.com/wayout-app/backend/internal/service"
)

// mockRateFetcher is a test double for service.RateFetcher.
type mockRateFetcher struct {
	latest func(ctx context.Context, base string) (map[string]float64, error)
}

func (m *mockRateFetcher) Latest(ctx context.Context, base string) (map[string]float64, error) {
	return m.latest(ctx, base)
}

var _ service.RateFetcher = (*mockRateFetcher)(nil)

// eurTable mimics a Frankfurter response for base EUR, base injected at 1.
func eurTable() map[string]float64 {
	return map[string]float64{"EUR": 1, "USD": 1.10, "INR": 91.0}
}

func fixedRates() *mockRateFetcher {
	return &mockRateFetcher{
		latest: func(_ context.Context, base string) (map[string]float64, error) {
			return eurTable(), nil
		},
	}
}

// ---- Convert tests ---------------------------------------------------------

func TestCurrencyService_Convert_CrossRate(t *testing.T) {
	svc := service.NewCurrencyService(fixedRates())

	got, err := svc.Convert(context.Background(), 100, "USD", "INR")

	require.NoError(t, err)
	// 100 USD -> EUR -> INR: 100 / 1.10 * 91.0
	assert.InDelta(t, 100/1.10*91.0, got.Converted, 1e-9)
	assert.InDelta(t, 91.0/1.10, got.Rate, 1e-9)
	assert.Equal(t, "USD", got.From)
	assert.Equal(t, "INR", got.To)
}

func TestCurrencyService_Convert_SameCurrencySkipsFetch(t *testing.T) {
	rates := &mockRateFetcher{
		latest: func(_ context.Context, _ string) (map[string]float64, error) {
			t.Fatal("no fetch expected for a same-currency conversion")
			return nil, nil
		},
	}
	svc := service.NewCurrencyService(rates)

	got, err := svc.Convert(context.Background(), 42, "usd", "USD")

	require.NoError(t, err)
	assert.InDelta(t, 42.0, got.Converted, 1e-9)
	assert.InDelta(t, 1.0, got.Rate, 1e-9)
}

func TestCurrencyService_Convert_LowercaseCodesAccepted(t *testing.T) {
	svc := service.NewCurrencyService(fixedRates())

	got, err := svc.Convert(context.Background(), 10, "eur", "usd")

	require.NoError(t, err)
	assert.Equal(t, "EUR", got.From)
	assert.Equal(t, "USD", got.To)
	assert.InDelta(t, 11.0, got.Converted, 1e-9)
}

func TestCurrencyService_Convert_CachesRateTable(t *testing.T) {
	fetches := 0
	rates := &mockRateFetcher{
		latest: func(_ context.Context, _ string) (map[string]float64, error) {
			fetches++
			return eurTable(), nil
		},
	}
	svc := service.NewCurrencyService(rates)

	_, err := svc.Convert(context.Background(), 1, "USD", "INR")
	require.NoError(t, err)
	_, err = svc.Convert(context.Background(), 2, "INR", "EUR")
	require.NoError(t, err)

	assert.Equal(t, 1, fetches, "second conversion must hit the cache")
}

func TestCurrencyService_Convert_InvalidCode(t *testing.T) {
	svc := service.NewCurrencyService(fixedRates())

	_, err := svc.Convert(context.Background(), 1, "NOPE", "USD")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCurrencyService_Convert_UnquotedCurrency(t *testing.T) {
	svc := service.NewCurrencyService(fixedRates())

	// CHF is valid ISO 4217 but absent from the mocked table.
	_, err := svc.Convert(context.Background(), 1, "CHF", "USD")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCurrencyService_Convert_NegativeAmount(t *testing.T) {
	svc := service.NewCurrencyService(fixedRates())

	_, err := svc.Convert(context.Background(), -5, "USD", "EUR")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCurrencyService_Convert_UpstreamError(t *testing.T) {
	rates := &mockRateFetcher{
		latest: func(_ context.Context, _ string) (map[string]float64, error) {
			return nil, domain.ErrUpstream
		},
	}
	svc := service.NewCurrencyService(rates)

	_, err := svc.Convert(context.Background(), 1, "USD", "EUR")

	assert.ErrorIs(t, err, domain.ErrUpstream)
}
