package currency

import "go-btc-converter"

// Default is the shared classification table used when no other is configured.
var Default = MustNewTable(cryptoCodes, fiatCodes)

var cryptoCodes = []btc.Currency{
	"AAVE", "ADA", "ALGO", "APE", "ATOM", "AVAX", "BAT", "BCH", "BNB", "BTC",
	"COMP", "CRV", "DAI", "DASH", "DOGE", "DOT", "EOS", "ETC", "ETH", "FIL",
	"GRT", "ICP", "LINK", "LTC", "MANA", "MATIC", "MKR", "NEAR", "OXT", "REP",
	"SHIB", "SNX", "SOL", "SUSHI", "UNI", "USDC", "USDT", "XLM", "XMR", "XRP",
	"XTZ", "YFI", "ZEC", "ZRX",
}

// ISO 4217 codes in circulation
var fiatCodes = []btc.Currency{
	"AED", "AFN", "ALL", "AMD", "ANG", "AOA", "ARS", "AUD", "AWG", "AZN",
	"BAM", "BBD", "BDT", "BGN", "BHD", "BIF", "BMD", "BND", "BOB", "BRL",
	"BSD", "BTN", "BWP", "BYN", "BZD", "CAD", "CDF", "CHF", "CLP", "CNY",
	"COP", "CRC", "CUP", "CVE", "CZK", "DJF", "DKK", "DOP", "DZD", "EGP",
	"ERN", "ETB", "EUR", "FJD", "FKP", "GBP", "GEL", "GHS", "GIP", "GMD",
	"GNF", "GTQ", "GYD", "HKD", "HNL", "HTG", "HUF", "IDR", "ILS", "INR",
	"IQD", "IRR", "ISK", "JMD", "JOD", "JPY", "KES", "KGS", "KHR", "KMF",
	"KPW", "KRW", "KWD", "KYD", "KZT", "LAK", "LBP", "LKR", "LRD", "LSL",
	"LYD", "MAD", "MDL", "MGA", "MKD", "MMK", "MNT", "MOP", "MRU", "MUR",
	"MVR", "MWK", "MXN", "MYR", "MZN", "NAD", "NGN", "NIO", "NOK", "NPR",
	"NZD", "OMR", "PAB", "PEN", "PGK", "PHP", "PKR", "PLN", "PYG", "QAR",
	"RON", "RSD", "RUB", "RWF", "SAR", "SBD", "SCR", "SDG", "SEK", "SGD",
	"SHP", "SLE", "SOS", "SRD", "SSP", "STN", "SYP", "SZL", "THB", "TJS",
	"TMT", "TND", "TOP", "TRY", "TTD", "TWD", "TZS", "UAH", "UGX", "USD",
	"UYU", "UZS", "VES", "VND", "VUV", "WST", "XAF", "XCD", "XOF", "XPF",
	"YER", "ZAR", "ZMW", "ZWL",
}
