package convert

import (
	"context"
	"math"
	"strconv"
	"strings"

	"go-btc-converter"
)

// RateProvider looks up the price of one unit of the base asset in a currency.
// Implementations must be concurrency-safe.
type RateProvider interface {
	Rate(ctx context.Context, currency btc.Currency) (btc.Rate, error)
}

// RateFunc adapts a function to a RateProvider
type RateFunc func(ctx context.Context, currency btc.Currency) (btc.Rate, error)

func (f RateFunc) Rate(ctx context.Context, currency btc.Currency) (btc.Rate, error) {
	return f(ctx, currency)
}

// Classifier tells crypto codes from fiat codes
type Classifier interface {
	IsCrypto(currency btc.Currency) bool
	IsFiat(currency btc.Currency) bool
}

// Service converts amounts of the base asset to and from other currencies
type Service interface {
	// ToCurrency converts an amount of the base asset into currency.
	ToCurrency(ctx context.Context, currency btc.Currency, amount btc.Amount) (btc.Amount, error)

	// ToBtc converts an amount of currency into the base asset.
	ToBtc(ctx context.Context, amount btc.Amount, currency btc.Currency) (btc.Amount, error)

	// Format rounds value to the precision of currency.
	Format(currency btc.Currency, value btc.Amount) (btc.Amount, error)

	IsCryptoCurrency(currency btc.Currency) bool
	IsFiatCurrency(currency btc.Currency) bool

	// Base is the asset ToCurrency converts from and ToBtc converts into.
	Base() btc.Currency
}

// Option configures a Service
type Option func(*service)

// WithBase sets the base asset amounts are converted from. Defaults to BTC.
func WithBase(base btc.Currency) Option {
	return func(s *service) {
		s.base = base
	}
}

type service struct {
	// rates to look up the base asset price
	rates RateProvider

	// classifier to pick rounding precision
	classifier Classifier

	// base the asset being converted
	base btc.Currency
}

// NewService constructs a valid Service
func NewService(rates RateProvider, classifier Classifier, opts ...Option) Service {
	s := &service{
		rates:      rates,
		classifier: classifier,
		base:       btc.BTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Base() btc.Currency {
	return s.base
}

// ToCurrency multiplies amount by the current rate of currency.
// Errors from the RateProvider are returned as is.
func (s *service) ToCurrency(ctx context.Context, currency btc.Currency, amount btc.Amount) (btc.Amount, error) {
	rate, err := s.rates.Rate(ctx, currency)
	if err != nil {
		return 0, err
	}

	if err := checkAmount("btcAmount", amount); err != nil {
		return 0, err
	}
	if err := checkRate(currency, rate); err != nil {
		return 0, err
	}

	return s.Format(currency, amount*btc.Amount(rate))
}

// ToBtc divides amount by the current rate of currency and rounds to the base asset.
// Errors from the RateProvider are returned as is.
func (s *service) ToBtc(ctx context.Context, amount btc.Amount, currency btc.Currency) (btc.Amount, error) {
	rate, err := s.rates.Rate(ctx, currency)
	if err != nil {
		return 0, err
	}

	if err := checkAmount("amount", amount); err != nil {
		return 0, err
	}
	if err := checkRate(currency, rate); err != nil {
		return 0, err
	}

	return s.Format(s.base, amount/btc.Amount(rate))
}

// Format rounds half away from zero: 8 places for crypto, 2 for fiat.
func (s *service) Format(currency btc.Currency, value btc.Amount) (btc.Amount, error) {
	switch {
	case s.classifier.IsCrypto(currency):
		return Round(value, CryptoPlaces), nil
	case s.classifier.IsFiat(currency):
		return Round(value, FiatPlaces), nil
	}
	return 0, &CurrencyError{Code: currency}
}

func (s *service) IsCryptoCurrency(currency btc.Currency) bool {
	return s.classifier.IsCrypto(currency)
}

func (s *service) IsFiatCurrency(currency btc.Currency) bool {
	return s.classifier.IsFiat(currency)
}

// ParseAmount reads a decimal amount such as "0.5" or "-1e3".
func ParseAmount(s string) (btc.Amount, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || checkAmount("amount", btc.Amount(f)) != nil {
		return 0, &AmountError{Name: "amount", Value: s}
	}
	return btc.Amount(f), nil
}

func checkAmount(name string, amount btc.Amount) error {
	f := float64(amount)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return &AmountError{Name: name, Value: strconv.FormatFloat(f, 'g', -1, 64)}
	}
	return nil
}

func checkRate(currency btc.Currency, rate btc.Rate) error {
	f := float64(rate)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return &RateError{Currency: currency, Rate: rate}
	}
	return nil
}
