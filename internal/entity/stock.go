package entity

// MarketState is the trading session reported by the quote service.
type MarketState string

const (
	MarketStatePre     MarketState = "PRE"
	MarketStateRegular MarketState = "REGULAR"
	MarketStatePost    MarketState = "POST"
	MarketStateClosed  MarketState = "CLOSED"
)

// Quote is one ticker's current market snapshot.
type Quote struct {
	Ticker             string   `json:"ticker"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
	PreviousClose      *float64 `json:"previousClose"`
	PreMarketPrice     *float64 `json:"preMarketPrice"`
	PreMarketChange    *float64 `json:"preMarketChange"`
	PostMarketPrice    *float64 `json:"postMarketPrice"`
	PostMarketChange   *float64 `json:"postMarketChange"`
	MarketState        *string  `json:"marketState"`
}

// StockRecord is one evaluated candidate of a scan.
type StockRecord struct {
	Ticker         string             `json:"ticker" validate:"required"`
	Name           string             `json:"name"`
	Sector         string             `json:"sector"`
	Price          float64            `json:"price"`
	MarketCap      float64            `json:"marketCap"`
	ChangePercent  float64            `json:"changePercent"`
	AgentScores    map[string]float64 `json:"agentScores"`
	CompositeScore float64            `json:"compositeScore"`
}

// ScanStats summarises one scan run.
type ScanStats struct {
	TotalScanned  int      `json:"totalScanned"`
	Succeeded     int      `json:"succeeded"`
	Failed        int      `json:"failed"`
	FailedTickers []string `json:"failedTickers,omitempty"`
	AverageScore  float64  `json:"averageScore"`
	TopTicker     string   `json:"topTicker,omitempty"`
	DurationMs    int64    `json:"durationMs"`
}

// ScanResult is the typed outcome of a scan, before it is persisted as a snapshot.
type ScanResult struct {
	Stocks    []StockRecord `json:"stocks"`
	ScanStats ScanStats     `json:"scanStats"`
}
