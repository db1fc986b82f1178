package service

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dafahentra/stocks-dashboard/client"
	"github.com/dafahentra/stocks-dashboard/config"
	"github.com/dafahentra/stocks-dashboard/model"

	"github.com/stretchr/testify/require"
)

func fakeYahoo(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}

		n := 60
		base := time.Date(2025, 3, 3, 14, 30, 0, 0, time.UTC)
		timestamps := make([]int64, n)
		opens := make([]float64, n)
		highs := make([]float64, n)
		lows := make([]float64, n)
		closes := make([]float64, n)
		volumes := make([]int64, n)
		for i := 0; i < n; i++ {
			price := 100 + float64(i)
			timestamps[i] = base.Add(time.Duration(i) * 24 * time.Hour).Unix()
			opens[i] = price - 1
			highs[i] = price + 2
			lows[i] = price - 2
			closes[i] = price
			volumes[i] = 1000
		}

		resp := model.YahooChartResponse{Chart: model.ChartData{
			Result: []model.ChartResult{{
				Meta:      model.ChartMeta{Currency: "USD"},
				Timestamp: timestamps,
				Indicators: model.ChartIndicators{Quote: []model.ChartQuote{{
					Open: opens, High: highs, Low: lows, Close: closes, Volume: volumes,
				}}},
			}},
		}}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestService(baseURL string) MarketService {
	cfg := &config.SystemConfigs{Config: &model.AppConfig{
		YahooBaseUrl:        baseURL,
		YahooTimeoutSeconds: 5,
		HistoryTTLSeconds:   30,
	}}
	return NewMarketService(client.NewYahooClient(cfg))
}

func TestGetHistoryAnnotatedAndOrdered(t *testing.T) {
	server := fakeYahoo(t, nil)
	defer server.Close()

	svc := newTestService(server.URL)
	series, err := svc.GetHistory(context.Background(), "HIST1", model.Range1mo)

	require.NoError(t, err)
	require.NotEmpty(t, series.Bars)
	for i := 1; i < len(series.Bars); i++ {
		require.True(t, series.Bars[i-1].Time.Before(series.Bars[i].Time))
	}

	require.Equal(t, "USD", series.Currency)
	require.Len(t, series.SMA20, len(series.Bars))
	require.Len(t, series.RSI, len(series.Bars))
	require.Len(t, series.BBUpper, len(series.Bars))
}

func TestGetHistoryCaches(t *testing.T) {
	var hits atomic.Int64
	server := fakeYahoo(t, &hits)
	defer server.Close()

	svc := newTestService(server.URL)
	_, err := svc.GetHistory(context.Background(), "HIST2", model.Range1mo)
	require.NoError(t, err)
	_, err = svc.GetHistory(context.Background(), "HIST2", model.Range1mo)
	require.NoError(t, err)

	require.Equal(t, int64(1), hits.Load())
}

func TestGetHistoryFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found"}}}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL)
	_, err := svc.GetHistory(context.Background(), "BADTICK", model.Range1mo)
	require.Error(t, err)
}

func TestGetQuote(t *testing.T) {
	server := fakeYahoo(t, nil)
	defer server.Close()

	svc := newTestService(server.URL)
	quote := svc.GetQuote(context.Background(), "QUOTE1")

	require.False(t, quote.Err)
	require.Equal(t, "QUOTE1", quote.Symbol)
	// Last close 159 vs first open 99.
	require.InDelta(t, 159, quote.Price, 1e-9)
	require.InDelta(t, 60, quote.Change, 1e-9)
	require.InDelta(t, 60.0/99*100, quote.PctChange, 1e-6)
}

func TestGetQuoteDegradesOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestService(server.URL)
	quote := svc.GetQuote(context.Background(), "QUOTE2")

	require.True(t, quote.Err)
	require.Equal(t, "QUOTE2", quote.Symbol)
}

func TestMetrics(t *testing.T) {
	svc := newTestService("http://unused")
	series := &model.Series{Bars: []model.Bar{
		{Open: 10, High: 15, Low: 9, Close: 12, Volume: 100},
		{Open: 12, High: 18, Low: 11, Close: 14, Volume: 300},
		{Open: 14, High: 16, Low: 8, Close: 15, Volume: 200},
	}}

	m := svc.Metrics(series)

	require.InDelta(t, 15, m.LastClose, 1e-9)
	require.InDelta(t, 3, m.Change, 1e-9)
	require.InDelta(t, 25, m.PctChange, 1e-9)
	require.InDelta(t, 18, m.High, 1e-9)
	require.InDelta(t, 8, m.Low, 1e-9)
	require.InDelta(t, 600, m.Volume, 1e-9)
}

func TestSignalsThresholds(t *testing.T) {
	svc := newTestService("http://unused")

	series := &model.Series{
		Bars: []model.Bar{
			{Close: 10, Volume: 100},
			{Close: 12, Volume: 100},
			{Close: 14, Volume: 400}, // > 1.5x mean volume
		},
		RSI:   []float64{math.NaN(), math.NaN(), 75},
		SMA20: []float64{math.NaN(), math.NaN(), 13},
		SMA50: []float64{math.NaN(), math.NaN(), 11},
	}
	m := svc.Metrics(series)
	signals := svc.Signals(series, m)

	require.Len(t, signals, 4)
	require.Equal(t, "Bullish: +40.00%", signals[0].Label)
	require.Equal(t, model.ToneSuccess, signals[0].Tone)
	require.Equal(t, "RSI: 75.0 (Overbought)", signals[1].Label)
	require.Equal(t, model.ToneWarning, signals[1].Tone)
	require.Equal(t, "MA Signal: Bullish", signals[2].Label)
	require.Equal(t, "Volume: High", signals[3].Label)
	require.Equal(t, model.ToneInfo, signals[3].Tone)
}

func TestSignalsOversoldAndLowVolume(t *testing.T) {
	svc := newTestService("http://unused")

	series := &model.Series{
		Bars: []model.Bar{
			{Close: 14, Volume: 400},
			{Close: 12, Volume: 400},
			{Close: 10, Volume: 100}, // < 0.5x mean volume
		},
		RSI: []float64{math.NaN(), math.NaN(), 25},
	}
	m := svc.Metrics(series)
	signals := svc.Signals(series, m)

	require.Len(t, signals, 3)
	require.Equal(t, model.ToneDanger, signals[0].Tone)
	require.Equal(t, "RSI: 25.0 (Oversold)", signals[1].Label)
	require.Equal(t, model.ToneInfo, signals[1].Tone)
	require.Equal(t, "Volume: Low", signals[2].Label)
	require.Equal(t, model.ToneWarning, signals[2].Tone)
}
