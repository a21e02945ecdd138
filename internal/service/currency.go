package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/text/currency"

	"github.com/wayout-app/backend/internal/domain"
)

// RateFetcher returns exchange rates keyed by ISO-4217 code, relative to the
// requested base (which appears in the map with rate 1).
// Satisfied by *client.Frankfurter.
type RateFetcher interface {
	Latest(ctx context.Context, base string) (map[string]float64, error)
}

// ratesBase is the single base every rate table is fetched against. Fixing
// the base means one cached table serves every currency pair.
const ratesBase = "EUR"

const (
	ratesCacheKey = "rates:" + ratesBase
	ratesCacheTTL = time.Hour
)

// Conversion is the result of one currency conversion.
type Conversion struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Rate      float64 `json:"rate"` // units of To per unit of From
	Converted float64 `json:"converted"`
}

// CurrencyService converts amounts between currencies using cached
// Frankfurter rate tables.
type CurrencyService struct {
	rates RateFetcher
	cache *gocache.Cache
}

// NewCurrencyService constructs a CurrencyService with an hourly rate cache.
func NewCurrencyService(rates RateFetcher) *CurrencyService {
	return &CurrencyService{
		rates: rates,
		cache: gocache.New(ratesCacheTTL, 2*ratesCacheTTL),
	}
}

// Convert turns amount units of from into to. Currency codes must be valid
// ISO 4217; codes the rate provider does not quote map to ErrValidation.
// A negative amount is rejected. Only a same-currency conversion skips the
// rate-table lookup.
func (s *CurrencyService) Convert(ctx context.Context, amount float64, from, to string) (Conversion, error) {
	from, err := normalizeCurrency(from)
	if err != nil {
		return Conversion{}, err
	}
	to, err = normalizeCurrency(to)
	if err != nil {
		return Conversion{}, err
	}
	if amount < 0 {
		return Conversion{}, fmt.Errorf("service.CurrencyService.Convert: %w: amount must not be negative", domain.ErrValidation)
	}

	result := Conversion{Amount: amount, From: from, To: to}
	if from == to {
		result.Rate = 1
		result.Converted = amount
		return result, nil
	}

	table, err := s.table(ctx)
	if err != nil {
		return Conversion{}, err
	}

	fromRate, ok := table[from]
	if !ok {
		return Conversion{}, fmt.Errorf("service.CurrencyService.Convert: %w: unsupported currency %q", domain.ErrValidation, from)
	}
	toRate, ok := table[to]
	if !ok {
		return Conversion{}, fmt.Errorf("service.CurrencyService.Convert: %w: unsupported currency %q", domain.ErrValidation, to)
	}

	result.Rate = toRate / fromRate
	result.Converted = amount / fromRate * toRate
	return result, nil
}

// table returns the cached rate table, fetching a fresh one on expiry.
func (s *CurrencyService) table(ctx context.Context) (map[string]float64, error) {
	if cached, ok := s.cache.Get(ratesCacheKey); ok {
		return cached.(map[string]float64), nil
	}

	table, err := s.rates.Latest(ctx, ratesBase)
	if err != nil {
		return nil, fmt.Errorf("service.CurrencyService: fetch rates: %w", err)
	}
	s.cache.SetDefault(ratesCacheKey, table)
	return table, nil
}

// normalizeCurrency upper-cases and validates an ISO-4217 code.
func normalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, err := currency.ParseISO(code); err != nil {
		return "", fmt.Errorf("service.CurrencyService.Convert: %w: invalid currency code %q", domain.ErrValidation, code)
	}
	return code, nil
}
