package coinbase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go-btc-converter"
	"golang.org/x/time/rate"
)

const ApiUrlBase = "https://api.coinbase.com/v2"

// Service wraps the coinbase REST API
type Service interface {
	// ExchangeRates loads the price of one unit of base in every currency coinbase quotes.
	ExchangeRates(ctx context.Context, base btc.Currency) (btc.Rates, error)
}

// Option configures the coinbase Service
type Option func(*service)

// WithURL points the service at another API base url
func WithURL(url string) Option {
	return func(s *service) {
		s.url = url
	}
}

// WithTimeout bounds each HTTP request
func WithTimeout(timeout time.Duration) Option {
	return func(s *service) {
		s.client.Timeout = timeout
	}
}

// WithLimiter throttles outgoing requests
func WithLimiter(limiter *rate.Limiter) Option {
	return func(s *service) {
		s.limiter = limiter
	}
}

// service coinbase API
type service struct {
	// url base API url
	url string

	// client for HTTP requests
	client http.Client

	// limiter keeps request rate under the public API limit
	limiter *rate.Limiter
}

// NewService constructs a valid coinbase Service.
func NewService(opts ...Option) Service {
	s := &service{
		url: ApiUrlBase,
		client: http.Client{
			Timeout: 5 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(10), 10),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExchangeRates loads the current exchange rates for a given currency.
// Rates change every minute.
func (s *service) ExchangeRates(ctx context.Context, base btc.Currency) (btc.Rates, error) {
	type Response struct {
		Data struct {
			Currency string
			Rates    map[string]string // maps currency codes to rates
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	url := fmt.Sprintf("%v/exchange-rates?currency=%v", s.url, base)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coinbase api [%v]: status %d: %s", base, httpResponse.StatusCode, bytes)
	}

	var response Response
	err = json.Unmarshal(bytes, &response)
	if err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	rates := btc.Rates{}
	for k, v := range response.Data.Rates {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("bad rate value [%v]: %w", k, err)
		}
		rates[btc.Currency(k)] = btc.Rate(f)
	}

	return rates, nil
}
