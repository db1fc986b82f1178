package service

import (
	"context"
	"fmt"
	"math"

	localCache "github.com/dafahentra/stocks-dashboard/cache"
	"github.com/dafahentra/stocks-dashboard/client"
	"github.com/dafahentra/stocks-dashboard/indicator"
	"github.com/dafahentra/stocks-dashboard/metrics"
	"github.com/dafahentra/stocks-dashboard/model"
	"github.com/dafahentra/stocks-dashboard/util"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

type MarketService interface {
	GetHistory(ctx context.Context, ticker string, period model.Period) (*model.Series, error)
	GetQuote(ctx context.Context, symbol string) model.Quote
	Metrics(s *model.Series) model.Metrics
	Signals(s *model.Series, m model.Metrics) []model.Signal
}

type MarketServiceImpl struct {
	yahoo *client.YahooClient
}

func NewMarketService(yahoo *client.YahooClient) MarketService {
	return &MarketServiceImpl{yahoo: yahoo}
}

// GetHistory runs the fetch → annotate pipeline behind a short TTL cache
// keyed by ticker, period and interval.
func (s *MarketServiceImpl) GetHistory(ctx context.Context, ticker string, period model.Period) (*model.Series, error) {
	cacheKey := fmt.Sprintf("history_%s_%s_%s", ticker, period, period.Interval())
	if cached, found := localCache.HistoryCache.Get(cacheKey); found {
		metrics.CacheHits.Inc()
		return cached.(*model.Series), nil
	}
	metrics.CacheMisses.Inc()

	bars, meta, err := s.yahoo.GetChart(ctx, ticker, period)
	if err != nil {
		return nil, err
	}

	series := &model.Series{
		Ticker:   ticker,
		Currency: s.resolveCurrency(ticker, meta.Currency),
		Period:   period,
		Interval: period.Interval(),
		Bars:     bars,
	}
	indicator.Annotate(series)

	localCache.HistoryCache.Set(cacheKey, series, cache.DefaultExpiration)
	return series, nil
}

// GetQuote produces the quick watchlist snapshot from the 1d/5m window.
// Failures degrade to an error-marked quote rather than propagating.
func (s *MarketServiceImpl) GetQuote(ctx context.Context, symbol string) model.Quote {
	cacheKey := "quote_" + symbol
	if cached, found := localCache.QuoteCache.Get(cacheKey); found {
		metrics.CacheHits.Inc()
		return cached.(model.Quote)
	}
	metrics.CacheMisses.Inc()

	series, err := s.GetHistory(ctx, symbol, model.Range1d)
	if err != nil {
		log.Warn().Str("symbol", symbol).Err(err).Msg("watchlist quote fetch failed")
		return model.Quote{Symbol: symbol, Err: true}
	}

	first := series.Bars[0]
	last := series.Bars[len(series.Bars)-1]
	quote := model.Quote{
		Symbol: symbol,
		Price:  last.Close,
		Change: last.Close - first.Open,
	}
	if first.Open != 0 {
		quote.PctChange = quote.Change / first.Open * 100
	}

	localCache.QuoteCache.Set(cacheKey, quote, cache.DefaultExpiration)
	return quote
}

// Metrics summarizes the window: last close, change against the first close,
// window-wide high/low, and total volume.
func (s *MarketServiceImpl) Metrics(series *model.Series) model.Metrics {
	m := model.Metrics{}
	if len(series.Bars) == 0 {
		return m
	}

	first := series.Bars[0]
	last := series.Bars[len(series.Bars)-1]
	m.LastClose = last.Close
	m.Change = last.Close - first.Close
	if first.Close != 0 {
		m.PctChange = m.Change / first.Close * 100
	}

	m.High = math.Inf(-1)
	m.Low = math.Inf(1)
	for _, b := range series.Bars {
		if b.High > m.High {
			m.High = b.High
		}
		if b.Low < m.Low {
			m.Low = b.Low
		}
		m.Volume += b.Volume
	}
	return m
}

// Signals derives the analysis-summary badges: trend direction, RSI state,
// MA cross, and relative volume.
func (s *MarketServiceImpl) Signals(series *model.Series, m model.Metrics) []model.Signal {
	signals := make([]model.Signal, 0, 4)

	if m.PctChange > 0 {
		signals = append(signals, model.Signal{Label: fmt.Sprintf("Bullish: +%.2f%%", m.PctChange), Tone: model.ToneSuccess})
	} else {
		signals = append(signals, model.Signal{Label: fmt.Sprintf("Bearish: %.2f%%", m.PctChange), Tone: model.ToneDanger})
	}

	if rsi, ok := lastValue(series.RSI); ok {
		switch {
		case rsi > 70:
			signals = append(signals, model.Signal{Label: fmt.Sprintf("RSI: %.1f (Overbought)", rsi), Tone: model.ToneWarning})
		case rsi < 30:
			signals = append(signals, model.Signal{Label: fmt.Sprintf("RSI: %.1f (Oversold)", rsi), Tone: model.ToneInfo})
		default:
			signals = append(signals, model.Signal{Label: fmt.Sprintf("RSI: %.1f (Neutral)", rsi), Tone: model.ToneNeutral})
		}
	}

	sma20, ok20 := lastValue(series.SMA20)
	sma50, ok50 := lastValue(series.SMA50)
	if ok20 && ok50 {
		if sma20 > sma50 {
			signals = append(signals, model.Signal{Label: "MA Signal: Bullish", Tone: model.ToneSuccess})
		} else {
			signals = append(signals, model.Signal{Label: "MA Signal: Bearish", Tone: model.ToneDanger})
		}
	}

	if n := len(series.Bars); n > 0 {
		avg := m.Volume / float64(n)
		curr := series.Bars[n-1].Volume
		switch {
		case curr > avg*1.5:
			signals = append(signals, model.Signal{Label: "Volume: High", Tone: model.ToneInfo})
		case curr < avg*0.5:
			signals = append(signals, model.Signal{Label: "Volume: Low", Tone: model.ToneWarning})
		default:
			signals = append(signals, model.Signal{Label: "Volume: Normal", Tone: model.ToneNeutral})
		}
	}

	return signals
}

func (s *MarketServiceImpl) resolveCurrency(ticker, metaCurrency string) string {
	cacheKey := "currency_" + ticker
	if cached, found := localCache.CurrencyCache.Get(cacheKey); found {
		return cached.(string)
	}

	currency := util.ResolveCurrency(ticker, metaCurrency)
	localCache.CurrencyCache.Set(cacheKey, currency, cache.DefaultExpiration)
	return currency
}

func lastValue(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	v := values[len(values)-1]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
