package convert

import (
	"errors"
	"fmt"

	"go-btc-converter"
)

var (
	// ErrInvalidAmount matches any *AmountError
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCurrencyCode matches any *CurrencyError
	ErrInvalidCurrencyCode = errors.New("invalid currency code")

	// ErrInvalidRate matches any *RateError
	ErrInvalidRate = errors.New("invalid rate")
)

// AmountError reports an argument that is not a valid number.
type AmountError struct {
	Name  string // argument name
	Value string // offending literal
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("argument %s should be numeric, '%s' given", e.Name, e.Value)
}

func (e *AmountError) Is(target error) bool { return target == ErrInvalidAmount }

// CurrencyError reports a code that is neither crypto nor fiat.
type CurrencyError struct {
	Code btc.Currency
}

func (e *CurrencyError) Error() string {
	return fmt.Sprintf("argument currency not valid currency code, '%s' given", e.Code)
}

func (e *CurrencyError) Is(target error) bool { return target == ErrInvalidCurrencyCode }

// RateError reports a rate that cannot be used for conversion: zero, negative or not a number.
type RateError struct {
	Currency btc.Currency
	Rate     btc.Rate
}

func (e *RateError) Error() string {
	return fmt.Sprintf("rate for %s should be a positive number, '%v' given", e.Currency, float64(e.Rate))
}

func (e *RateError) Is(target error) bool { return target == ErrInvalidRate }
