package controller

import (
	"math"
	"net/http"

	"github.com/dafahentra/stocks-dashboard/model"
	"github.com/dafahentra/stocks-dashboard/service"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type MarketController struct {
	marketService service.MarketService
}

func NewMarketController(ms service.MarketService) *MarketController {
	return &MarketController{
		marketService: ms,
	}
}

// RegisterRoutes sets up the route group for market data retrieval.
func (ctrl *MarketController) RegisterRoutes(router *gin.RouterGroup) {
	marketGroup := router.Group("/market")
	{
		marketGroup.GET("/history", ctrl.GetHistory)
		marketGroup.GET("/quote", ctrl.GetQuote)
	}
}

// HistoryDto is the JSON shape of an annotated series. Indicator columns
// use pointers so warm-up NaNs encode as null.
type HistoryDto struct {
	Ticker   string         `json:"ticker"`
	Currency string         `json:"currency"`
	Period   string         `json:"period"`
	Interval string         `json:"interval"`
	Bars     []model.Bar    `json:"bars"`
	Metrics  model.Metrics  `json:"metrics"`
	Signals  []model.Signal `json:"signals"`

	SMA20      []*float64 `json:"sma20,omitempty"`
	SMA50      []*float64 `json:"sma50,omitempty"`
	EMA20      []*float64 `json:"ema20,omitempty"`
	RSI        []*float64 `json:"rsi,omitempty"`
	MACD       []*float64 `json:"macd,omitempty"`
	MACDSignal []*float64 `json:"macdSignal,omitempty"`
	MACDHist   []*float64 `json:"macdHist,omitempty"`
	BBUpper    []*float64 `json:"bbUpper,omitempty"`
	BBMiddle   []*float64 `json:"bbMiddle,omitempty"`
	BBLower    []*float64 `json:"bbLower,omitempty"`
}

// GetHistory handles historical data requests.
// @Summary      Get Annotated Stock History
// @Description  Fetches the OHLCV window for a ticker with indicator columns attached. Served from a 30-second cache.
// @Tags         Market
// @Produce      json
// @Param        ticker  query     string  true   "Ticker (e.g. AAPL, BMW.DE)"
// @Param        period  query     string  false  "Window: 1d 1wk 1mo 3mo 6mo 1y 2y 5y (default 1mo)"
// @Success      200     {object}  model.Response{data=controller.HistoryDto}
// @Failure      400     {object}  model.Response
// @Failure      502     {object}  model.Response
// @Router       /market/history [get]
func (ctrl *MarketController) GetHistory(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		handleError(c, http.StatusBadRequest, "Ticker parameter is required", nil)
		return
	}

	period := model.Period(c.DefaultQuery("period", string(model.Range1mo)))
	if !period.Valid() {
		handleError(c, http.StatusBadRequest, "Unknown period", nil)
		return
	}

	series, err := ctrl.marketService.GetHistory(c.Request.Context(), ticker, period)
	if err != nil {
		handleError(c, http.StatusBadGateway, "Unable to fetch data for "+ticker, err)
		return
	}

	dto := HistoryDto{
		Ticker:   series.Ticker,
		Currency: series.Currency,
		Period:   string(series.Period),
		Interval: series.Interval,
		Metrics:  ctrl.marketService.Metrics(series),
	}
	dto.Signals = ctrl.marketService.Signals(series, dto.Metrics)
	copier.Copy(&dto.Bars, &series.Bars)

	dto.SMA20 = nullable(series.SMA20)
	dto.SMA50 = nullable(series.SMA50)
	dto.EMA20 = nullable(series.EMA20)
	dto.RSI = nullable(series.RSI)
	dto.MACD = nullable(series.MACD)
	dto.MACDSignal = nullable(series.MACDSignal)
	dto.MACDHist = nullable(series.MACDHist)
	dto.BBUpper = nullable(series.BBUpper)
	dto.BBMiddle = nullable(series.BBMiddle)
	dto.BBLower = nullable(series.BBLower)

	handleSuccess(c, "Fetch Success", dto)
}

// GetQuote handles quick quote requests.
// @Summary      Get Quick Quote
// @Description  Returns the latest price and intraday change for a symbol.
// @Tags         Market
// @Produce      json
// @Param        symbol  query     string  true  "Symbol (e.g. MSFT)"
// @Success      200     {object}  model.Response{data=model.Quote}
// @Failure      400     {object}  model.Response
// @Router       /market/quote [get]
func (ctrl *MarketController) GetQuote(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		handleError(c, http.StatusBadRequest, "Symbol parameter is required", nil)
		return
	}

	quote := ctrl.marketService.GetQuote(c.Request.Context(), symbol)
	handleSuccess(c, "Fetch Success", quote)
}

func nullable(values []float64) []*float64 {
	if values == nil {
		return nil
	}
	out := make([]*float64, len(values))
	for i := range values {
		if math.IsNaN(values[i]) {
			continue
		}
		v := values[i]
		out[i] = &v
	}
	return out
}
