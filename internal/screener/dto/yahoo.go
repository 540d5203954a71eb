package dto

// YahooChartResponse is the envelope returned by the Yahoo Finance chart endpoint.
type YahooChartResponse struct {
	Chart YahooChart `json:"chart"`
}

type YahooChart struct {
	Result []YahooChartResult `json:"result"`
	Error  *YahooChartError   `json:"error"`
}

type YahooChartResult struct {
	Meta YahooChartMeta `json:"meta"`
}

type YahooChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// YahooChartMeta holds the subset of chart metadata the quote proxy exposes.
// Pointers distinguish an absent field from a zero value.
type YahooChartMeta struct {
	Symbol             string   `json:"symbol"`
	Currency           string   `json:"currency"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
	PreviousClose      *float64 `json:"previousClose"`
	ChartPreviousClose *float64 `json:"chartPreviousClose"`
	PreMarketPrice     *float64 `json:"preMarketPrice"`
	PreMarketChange    *float64 `json:"preMarketChange"`
	PostMarketPrice    *float64 `json:"postMarketPrice"`
	PostMarketChange   *float64 `json:"postMarketChange"`
	MarketState        *string  `json:"marketState"`
}

// GetQuoteParam holds the query parameters of a chart request.
type GetQuoteParam struct {
	Ticker   string
	Interval string
	Range    string
}
