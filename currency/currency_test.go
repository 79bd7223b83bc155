package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-btc-converter"
)

func TestTable_Kind(t *testing.T) {
	tests := []struct {
		name string
		code btc.Currency
		want Kind
	}{
		{"btc", "BTC", Crypto},
		{"eth", "ETH", Crypto},
		{"usd", "USD", Fiat},
		{"gbp", "GBP", Fiat},
		{"lower case", "usd", Fiat},
		{"padded", " btc ", Crypto},
		{"unknown", "XYZ", Unknown},
		{"empty", "", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Default.Kind(tt.code))
		})
	}
}

func TestDefault_MutuallyExclusive(t *testing.T) {
	crypto := Default.Codes(Crypto)
	fiat := Default.Codes(Fiat)
	require.NotEmpty(t, crypto)
	require.NotEmpty(t, fiat)

	for _, code := range append(crypto, fiat...) {
		assert.NotEqual(t, Default.IsCrypto(code), Default.IsFiat(code), "code %v", code)
	}
}

func TestNewTable_RejectsOverlap(t *testing.T) {
	_, err := NewTable([]btc.Currency{"BTC", "FOO"}, []btc.Currency{"USD", "foo"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FOO")
}

func TestTable_Codes(t *testing.T) {
	table := MustNewTable([]btc.Currency{"ETH", "BTC"}, []btc.Currency{"USD"})

	assert.Equal(t, []btc.Currency{"BTC", "ETH"}, table.Codes(Crypto))
	assert.Equal(t, []btc.Currency{"USD"}, table.Codes(Fiat))
	assert.Empty(t, table.Codes(Unknown))
}
