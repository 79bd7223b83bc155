// Package currency classifies currency codes as crypto or fiat.
package currency

import (
	"fmt"
	"sort"
	"strings"

	"go-btc-converter"
)

// Kind of a currency code
type Kind string

const (
	Unknown Kind = "UNKNOWN" // Unknown code, neither crypto nor fiat
	Crypto  Kind = "CRYPTO"  // Crypto represents crypto currency
	Fiat    Kind = "FIAT"    // Fiat represents physical currency
)

// Table is a read-only classification of currency codes.
// A Table is safe for concurrent use once constructed.
type Table struct {
	kinds map[btc.Currency]Kind
}

// NewTable builds a Table. A code listed as both crypto and fiat is rejected.
func NewTable(crypto, fiat []btc.Currency) (*Table, error) {
	kinds := make(map[btc.Currency]Kind, len(crypto)+len(fiat))
	for _, c := range crypto {
		kinds[normalize(c)] = Crypto
	}
	for _, c := range fiat {
		code := normalize(c)
		if kinds[code] == Crypto {
			return nil, fmt.Errorf("currency %v is both crypto and fiat", code)
		}
		kinds[code] = Fiat
	}
	return &Table{kinds: kinds}, nil
}

// MustNewTable is like NewTable but panics on error
func MustNewTable(crypto, fiat []btc.Currency) *Table {
	t, err := NewTable(crypto, fiat)
	if err != nil {
		panic(err)
	}
	return t
}

// Kind reports how code is classified.
func (t *Table) Kind(code btc.Currency) Kind {
	k, ok := t.kinds[normalize(code)]
	if !ok {
		return Unknown
	}
	return k
}

// IsCrypto reports whether code is a known crypto currency
func (t *Table) IsCrypto(code btc.Currency) bool {
	return t.Kind(code) == Crypto
}

// IsFiat reports whether code is a known fiat currency
func (t *Table) IsFiat(code btc.Currency) bool {
	return t.Kind(code) == Fiat
}

// Codes lists the codes of one kind in sorted order.
func (t *Table) Codes(k Kind) []btc.Currency {
	var codes []btc.Currency
	for code, v := range t.kinds {
		if v == k {
			codes = append(codes, code)
		}
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

func normalize(code btc.Currency) btc.Currency {
	return btc.Currency(strings.ToUpper(strings.TrimSpace(string(code))))
}
