package chart

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/dafahentra/stocks-dashboard/indicator"
	"github.com/dafahentra/stocks-dashboard/model"

	"github.com/stretchr/testify/require"
)

func testSeries(t *testing.T) *model.Series {
	t.Helper()
	start := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	bars := make([]model.Bar, 60)
	for i := range bars {
		price := 100 + math.Sin(float64(i)/5)*8
		bars[i] = model.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   price - 1,
			High:   price + 2,
			Low:    price - 2,
			Close:  price,
			Volume: 1000 + float64(i%7)*100,
		}
	}
	s := &model.Series{Ticker: "AAPL", Currency: "USD", Period: model.Range3mo, Bars: bars}
	indicator.Annotate(s)
	return s
}

func TestPriceCandlestickWithOverlays(t *testing.T) {
	s := testSeries(t)
	html := string(Price(s, model.ChartCandlestick, []model.Indicator{model.IndicatorSMA20, model.IndicatorEMA20}))

	require.Contains(t, html, "AAPL - USD")
	require.Contains(t, html, "SMA 20")
	require.Contains(t, html, "EMA 20")
	require.Contains(t, html, colorUp)
	require.Contains(t, html, colorDown)
	require.NotContains(t, html, "NaN")
}

func TestPriceLineWithBollinger(t *testing.T) {
	s := testSeries(t)
	html := string(Price(s, model.ChartLine, []model.Indicator{model.IndicatorBB}))

	require.Contains(t, html, "AAPL Close")
	require.Contains(t, html, "BB Upper")
	require.Contains(t, html, "BB Middle")
	require.Contains(t, html, "BB Lower")
	require.NotContains(t, html, "NaN")
}

func TestVolumeChart(t *testing.T) {
	s := testSeries(t)
	html := string(Volume(s))

	require.Contains(t, html, "Trading Volume")
	require.Contains(t, html, colorUp)
}

func TestRSIChart(t *testing.T) {
	s := testSeries(t)
	html := string(RSI(s))

	require.Contains(t, html, "RSI (14)")
	require.Contains(t, html, "Overbought")
	require.Contains(t, html, "Oversold")
	require.NotContains(t, html, "NaN")
}

func TestMACDChart(t *testing.T) {
	s := testSeries(t)
	html := string(MACD(s))

	require.Contains(t, html, "MACD")
	require.Contains(t, html, "Signal")
	require.Contains(t, html, "Histogram")
	require.NotContains(t, html, "NaN")
}

func TestSnippetsAreEmbeddable(t *testing.T) {
	s := testSeries(t)
	html := string(Volume(s))

	// Snippets carry their own container and init script, not a full page.
	require.Contains(t, html, "<div")
	require.Contains(t, html, "<script")
	require.False(t, strings.Contains(html, "<html"))
}
