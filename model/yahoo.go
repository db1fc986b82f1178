package model

// YahooChartResponse is the top-level container
type YahooChartResponse struct {
	Chart ChartData `json:"chart"`
}

type ChartData struct {
	Result []ChartResult `json:"result"`
	Error  any           `json:"error"`
}

type ChartResult struct {
	Meta       ChartMeta       `json:"meta"`
	Timestamp  []int64         `json:"timestamp"`
	Indicators ChartIndicators `json:"indicators"`
}

// ChartMeta carries the per-ticker header block; Currency feeds the
// currency resolution fallback chain.
type ChartMeta struct {
	Currency             string  `json:"currency"`
	Symbol               string  `json:"symbol"`
	ExchangeName         string  `json:"exchangeName"`
	ExchangeTimezoneName string  `json:"exchangeTimezoneName"`
	RegularMarketPrice   float64 `json:"regularMarketPrice"`
}

type ChartIndicators struct {
	Quote []ChartQuote `json:"quote"`
}

// ChartQuote holds the parallel OHLCV arrays. Yahoo fills holidays and
// halted intervals with null, which decodes to zero and is skipped.
type ChartQuote struct {
	Low    []float64 `json:"low"`
	High   []float64 `json:"high"`
	Open   []float64 `json:"open"`
	Volume []int64   `json:"volume"`
	Close  []float64 `json:"close"`
}
