package model

// Period is a dashboard time window. Values map 1:1 onto Yahoo range tokens,
// except Range1wk which Yahoo does not accept and is fetched via period1/period2.
type Period string

const (
	Range1d  Period = "1d"
	Range1wk Period = "1wk"
	Range1mo Period = "1mo"
	Range3mo Period = "3mo"
	Range6mo Period = "6mo"
	Range1y  Period = "1y"
	Range2y  Period = "2y"
	Range5y  Period = "5y"
)

// Periods lists the selectable windows in display order.
var Periods = []Period{Range1d, Range1wk, Range1mo, Range3mo, Range6mo, Range1y, Range2y, Range5y}

// intervals pins the sampling interval used for each period.
var intervals = map[Period]string{
	Range1d:  "5m",
	Range1wk: "30m",
	Range1mo: "1d",
	Range3mo: "1d",
	Range6mo: "1wk",
	Range1y:  "1wk",
	Range2y:  "1wk",
	Range5y:  "1mo",
}

// Interval returns the Yahoo interval token for the period.
func (p Period) Interval() string {
	if iv, ok := intervals[p]; ok {
		return iv
	}
	return "1d"
}

// Valid reports whether the period is one of the selectable windows.
func (p Period) Valid() bool {
	_, ok := intervals[p]
	return ok
}

// Intraday reports whether bars carry a time-of-day component worth displaying.
func (p Period) Intraday() bool {
	return p == Range1d || p == Range1wk
}

type ChartType string

const (
	ChartCandlestick ChartType = "candlestick"
	ChartLine        ChartType = "line"
)

// Indicator identifies a selectable overlay or oscillator.
type Indicator string

const (
	IndicatorSMA20 Indicator = "sma20"
	IndicatorSMA50 Indicator = "sma50"
	IndicatorEMA20 Indicator = "ema20"
	IndicatorBB    Indicator = "bb"
	IndicatorRSI   Indicator = "rsi"
	IndicatorMACD  Indicator = "macd"
)

// Indicators lists the selectable indicators in display order.
var Indicators = []Indicator{IndicatorSMA20, IndicatorSMA50, IndicatorEMA20, IndicatorBB, IndicatorRSI, IndicatorMACD}

var indicatorLabels = map[Indicator]string{
	IndicatorSMA20: "SMA 20",
	IndicatorSMA50: "SMA 50",
	IndicatorEMA20: "EMA 20",
	IndicatorBB:    "Bollinger Bands",
	IndicatorRSI:   "RSI",
	IndicatorMACD:  "MACD",
}

// Label returns the human-readable indicator name.
func (i Indicator) Label() string {
	if l, ok := indicatorLabels[i]; ok {
		return l
	}
	return string(i)
}

// Valid reports whether the indicator key is known.
func (i Indicator) Valid() bool {
	_, ok := indicatorLabels[i]
	return ok
}
