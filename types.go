package btc

import "errors"

// Currency a currency code, crypto or fiat
type Currency string

// BTC the default base asset
const BTC Currency = "BTC"

// Amount a quantity of some currency
type Amount float64

// Rate price of one unit of the base asset in another currency
type Rate float64

// Rates maps currency codes to the price of one unit of a base currency
type Rates map[Currency]Rate

// ErrUnsupportedCurrency is returned by rate sources that do not quote a currency.
var ErrUnsupportedCurrency = errors.New("unsupported currency")
