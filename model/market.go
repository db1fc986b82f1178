package model

import "time"

// Bar is a single OHLCV observation, with Time localized to the exchange
// display zone (America/New_York).
type Bar struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Series is the fetched price table for one ticker plus the derived indicator
// columns appended in place. Every derived column has len == len(Bars); positions
// inside an indicator's warm-up window hold NaN.
type Series struct {
	Ticker   string
	Currency string
	Period   Period
	Interval string
	Bars     []Bar

	SMA20      []float64
	SMA50      []float64
	EMA20      []float64
	RSI        []float64
	MACD       []float64
	MACDSignal []float64
	MACDHist   []float64
	BBUpper    []float64
	BBMiddle   []float64
	BBLower    []float64
}

// Closes extracts the close column.
func (s *Series) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Metrics summarizes the fetched window for the dashboard cards.
type Metrics struct {
	LastClose float64 `json:"lastClose"`
	Change    float64 `json:"change"`
	PctChange float64 `json:"pctChange"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Volume    float64 `json:"volume"`
}

// Tone selects the badge styling for an analysis signal.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneDanger  Tone = "danger"
	ToneWarning Tone = "warning"
	ToneInfo    Tone = "info"
	ToneNeutral Tone = "neutral"
)

// Signal is one analysis-summary badge (trend, RSI state, MA cross, volume).
type Signal struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
}

// Quote is the quick watchlist snapshot: last close of the 1d/5m window and
// its change against the first open. Err marks symbols whose fetch failed.
type Quote struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	PctChange float64 `json:"pctChange"`
	Err       bool    `json:"error,omitempty"`
}
