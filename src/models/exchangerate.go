package models

// CurrencyQuote is one record of the rates fragment embedded in the source page.
// Values are kept as text because the page publishes them as strings.
type CurrencyQuote struct {
	Name string `json:"nombre"` // e.g. "USD", "EUR"
	Buy  string `json:"compra"`
	Sell string `json:"venta"`
}

// RatesFragment is the JSON object the source page embeds in a script tag.
type RatesFragment struct {
	Currencies []CurrencyQuote `json:"monedas"`
}

// ExtractedRate is a strictly positive DOP per USD rate read from a document.
type ExtractedRate struct {
	Value    float64 `json:"rate"`
	Raw      string  `json:"raw"`      // text the value was parsed from
	Strategy string  `json:"strategy"` // parser that produced it
}
