package convert

import (
	"math"

	"github.com/shopspring/decimal"
	"go-btc-converter"
)

const (
	CryptoPlaces int32 = 8
	FiatPlaces   int32 = 2
)

// Round rounds value to places decimal places, ties away from zero.
// The float is read as its shortest decimal form, so 2.005 rounds to 2.01.
// NaN and infinities are returned unchanged.
func Round(value btc.Amount, places int32) btc.Amount {
	if math.IsNaN(float64(value)) || math.IsInf(float64(value), 0) {
		return value
	}
	f, _ := decimal.NewFromFloat(float64(value)).Round(places).Float64()
	return btc.Amount(f)
}
