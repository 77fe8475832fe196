package ratessaver

// QuoteCurrencies is the fixed allow-list of ISO 4217 codes eligible to
// appear in output files. Codes returned by the service but not listed here
// are dropped.
var QuoteCurrencies = []string{
	"AUD",
	"CAD",
	"CHF",
	"CNY",
	"CZK",
	"EUR",
	"GBP",
	"JPY",
	"NOK",
	"PLN",
	"SEK",
	"USD",
}
