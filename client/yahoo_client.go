package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dafahentra/stocks-dashboard/config"
	"github.com/dafahentra/stocks-dashboard/customerrors"
	"github.com/dafahentra/stocks-dashboard/database"
	"github.com/dafahentra/stocks-dashboard/metrics"
	"github.com/dafahentra/stocks-dashboard/middleware"
	"github.com/dafahentra/stocks-dashboard/model"
	"github.com/dafahentra/stocks-dashboard/util"

	"github.com/go-resty/resty/v2"
)

type YahooClient struct {
	client     *resty.Client
	historyTTL time.Duration
}

func NewYahooClient(cfg *config.SystemConfigs) *YahooClient {
	client := resty.New().
		SetBaseURL(cfg.Config.YahooBaseUrl).
		SetTimeout(time.Duration(cfg.Config.YahooTimeoutSeconds) * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetHeaders(map[string]string{
			"Accept":          "application/json",
			"Accept-Encoding": "gzip, deflate, br",
			"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		})

	client.OnAfterResponse(middleware.DecompressMiddleware)

	return &YahooClient{
		client:     client,
		historyTTL: time.Duration(cfg.Config.HistoryTTLSeconds) * time.Second,
	}
}

type chartPayload struct {
	Bars []model.Bar     `json:"bars"`
	Meta model.ChartMeta `json:"meta"`
}

// GetChart fetches the OHLCV window for one ticker. Bars come back ascending
// with null intervals dropped and timestamps localized to New York. A Redis
// second cache level is consulted when configured.
func (y *YahooClient) GetChart(ctx context.Context, ticker string, period model.Period) ([]model.Bar, model.ChartMeta, error) {
	cacheKey := "yahoo_chart_" + ticker + "_" + string(period)

	var cached chartPayload
	if database.RedisHelper != nil {
		if ok, _ := database.RedisHelper.GetAsStruct(cacheKey, &cached); ok {
			return cached.Bars, cached.Meta, nil
		}
	}

	var chartResponse model.YahooChartResponse
	req := y.client.R().
		SetContext(ctx).
		SetQueryParam("interval", period.Interval()).
		SetResult(&chartResponse).
		ForceContentType("application/json")

	// Yahoo rejects "1wk" as a range token; express it as an explicit window.
	if period == model.Range1wk {
		now := time.Now()
		req.SetQueryParams(map[string]string{
			"period1": strconv.FormatInt(now.AddDate(0, 0, -7).Unix(), 10),
			"period2": strconv.FormatInt(now.Unix(), 10),
		})
	} else {
		req.SetQueryParam("range", string(period))
	}

	metrics.YahooFetches.Inc()
	resp, err := req.Get("/" + ticker)

	if err != nil || !resp.IsSuccess() || chartResponse.Chart.Error != nil {
		metrics.FetchErrors.Inc()
		if err != nil {
			return nil, model.ChartMeta{}, fmt.Errorf("yahoo request failed for %s: %w", ticker, err)
		}
		return nil, model.ChartMeta{}, fmt.Errorf("yahoo returned no chart for %s: %w", ticker, customerrors.ErrTickerNotFound)
	}

	if len(chartResponse.Chart.Result) == 0 {
		metrics.FetchErrors.Inc()
		return nil, model.ChartMeta{}, fmt.Errorf("empty chart result for %s: %w", ticker, customerrors.ErrNoData)
	}

	result := chartResponse.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		metrics.FetchErrors.Inc()
		return nil, model.ChartMeta{}, fmt.Errorf("missing quote block for %s: %w", ticker, customerrors.ErrNoData)
	}

	quote := result.Indicators.Quote[0]
	bars := make([]model.Bar, 0, len(result.Timestamp))
	n := len(result.Timestamp)
	for _, col := range [][]float64{quote.Open, quote.High, quote.Low, quote.Close} {
		if len(col) < n {
			n = len(col)
		}
	}
	if len(quote.Volume) < n {
		n = len(quote.Volume)
	}
	for i := 0; i < n; i++ {
		// Null bars (holidays, halts) decode to zero.
		if quote.Open[i] == 0 || quote.Close[i] == 0 {
			continue
		}
		bars = append(bars, model.Bar{
			Time:   time.Unix(result.Timestamp[i], 0).In(util.NewYorkLocation),
			Open:   quote.Open[i],
			High:   quote.High[i],
			Low:    quote.Low[i],
			Close:  quote.Close[i],
			Volume: float64(quote.Volume[i]),
		})
	}

	if len(bars) == 0 {
		metrics.FetchErrors.Inc()
		return nil, model.ChartMeta{}, fmt.Errorf("no usable bars for %s: %w", ticker, customerrors.ErrNoData)
	}

	if database.RedisHelper != nil {
		database.RedisHelper.Set(cacheKey, chartPayload{Bars: bars, Meta: result.Meta}, y.historyTTL)
	}

	return bars, result.Meta, nil
}
