package coinbase

import (
	"context"
	"fmt"
	"strings"

	"go-btc-converter"
)

// RateProvider quotes the price of one unit of a base asset using a coinbase Service.
type RateProvider struct {
	service Service
	base    btc.Currency
}

// NewRateProvider returns a provider quoting base through s
func NewRateProvider(s Service, base btc.Currency) *RateProvider {
	return &RateProvider{
		service: s,
		base:    base,
	}
}

// Rate looks up the price of one unit of the base asset in currency.
// Every call hits the coinbase API.
func (p *RateProvider) Rate(ctx context.Context, currency btc.Currency) (btc.Rate, error) {
	rates, err := p.service.ExchangeRates(ctx, p.base)
	if err != nil {
		return 0, fmt.Errorf("rate [%v/%v]: %w", p.base, currency, err)
	}

	code := btc.Currency(strings.ToUpper(strings.TrimSpace(string(currency))))
	rate, ok := rates[code]
	if !ok {
		return 0, fmt.Errorf("rate [%v/%v]: %w", p.base, currency, btc.ErrUnsupportedCurrency)
	}
	return rate, nil
}
