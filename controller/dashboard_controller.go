package controller

import (
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dafahentra/stocks-dashboard/chart"
	"github.com/dafahentra/stocks-dashboard/config"
	"github.com/dafahentra/stocks-dashboard/metrics"
	"github.com/dafahentra/stocks-dashboard/model"
	"github.com/dafahentra/stocks-dashboard/service"
	"github.com/dafahentra/stocks-dashboard/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	marketService    service.MarketService
	watchlistService service.WatchlistService
	defaultTicker    string
}

func NewDashboardController(ms service.MarketService, ws service.WatchlistService, cfg *config.SystemConfigs) *DashboardController {
	return &DashboardController{
		marketService:    ms,
		watchlistService: ws,
		defaultTicker:    cfg.Config.DefaultTicker,
	}
}

// RegisterRoutes mounts the server-rendered dashboard page.
func (ctrl *DashboardController) RegisterRoutes(router *gin.Engine) {
	router.GET("/", ctrl.Dashboard)
}

type indicatorOption struct {
	Key      model.Indicator
	Label    string
	Selected bool
}

type quoteView struct {
	Symbol    string
	PriceStr  string
	ChangeStr string
	Up        bool
	Err       bool
}

type watchGroupView struct {
	Name   string
	Quotes []quoteView
}

type summaryRow struct {
	Time   string
	Open   string
	High   string
	Low    string
	Close  string
	Volume string
}

type dashboardView struct {
	Ticker      string
	Period      model.Period
	Periods     []model.Period
	ChartType   model.ChartType
	Indicators  []indicatorOption
	ShowVolume  bool
	AutoRefresh bool

	Error string

	PriceStr  string
	ChangeStr string
	ChangeUp  bool
	HighStr   string
	LowStr    string
	VolumeStr string

	PriceChart  template.HTML
	VolumeChart template.HTML
	RSIChart    template.HTML
	MACDChart   template.HTML

	Rows    []summaryRow
	Signals []model.Signal

	Watchlist []watchGroupView
	Year      int
}

// Dashboard renders the full page: controls, metric cards, charts, summary
// table and watchlist. A fetch failure keeps the page up with an inline
// error banner.
func (ctrl *DashboardController) Dashboard(c *gin.Context) {
	view := ctrl.parseControls(c)

	series, err := ctrl.marketService.GetHistory(c.Request.Context(), view.Ticker, view.Period)
	if err != nil {
		view.Error = fmt.Sprintf("Unable to fetch data for %s", view.Ticker)
	} else {
		ctrl.fillData(view, series)
	}

	view.Watchlist = ctrl.watchlistQuotes(c)
	view.Year = time.Now().Year()

	metrics.PagesRendered.Inc()
	c.HTML(http.StatusOK, "dashboard.html", view)
}

func (ctrl *DashboardController) parseControls(c *gin.Context) *dashboardView {
	view := &dashboardView{
		Ticker:  strings.ToUpper(strings.TrimSpace(c.Query("ticker"))),
		Periods: model.Periods,
	}

	// An empty query string means first load; apply the defaults the page
	// ships with. Any param present (submitted form or shared URL) keeps
	// the explicit selections, including none.
	firstLoad := c.Request.URL.RawQuery == ""
	if view.Ticker == "" {
		view.Ticker = ctrl.defaultTicker
	}

	view.Period = model.Period(c.DefaultQuery("period", string(model.Range1mo)))
	if !view.Period.Valid() {
		view.Period = model.Range1mo
	}

	view.ChartType = model.ChartType(c.DefaultQuery("chart", string(model.ChartCandlestick)))
	if view.ChartType != model.ChartLine {
		view.ChartType = model.ChartCandlestick
	}

	selected := c.QueryArray("indicators")
	if firstLoad {
		selected = []string{string(model.IndicatorSMA20), string(model.IndicatorEMA20)}
	}
	view.Indicators = make([]indicatorOption, 0, len(model.Indicators))
	for _, ind := range model.Indicators {
		view.Indicators = append(view.Indicators, indicatorOption{
			Key:      ind,
			Label:    ind.Label(),
			Selected: slices.Contains(selected, string(ind)),
		})
	}

	view.ShowVolume = firstLoad || c.Query("volume") == "on"
	view.AutoRefresh = c.Query("refresh") == "on"

	return view
}

func (ctrl *DashboardController) fillData(view *dashboardView, series *model.Series) {
	m := ctrl.marketService.Metrics(series)
	currency := series.Currency

	view.PriceStr = util.FormatPrice(m.LastClose, currency)
	view.ChangeStr = fmt.Sprintf("%s (%.2f%%)", util.FormatPrice(m.Change, currency), m.PctChange)
	view.ChangeUp = m.Change >= 0
	view.HighStr = util.FormatPrice(m.High, currency)
	view.LowStr = util.FormatPrice(m.Low, currency)
	view.VolumeStr = util.FormatAmount(m.Volume, 0)

	selected := make([]model.Indicator, 0, len(view.Indicators))
	for _, opt := range view.Indicators {
		if opt.Selected {
			selected = append(selected, opt.Key)
		}
	}

	view.PriceChart = chart.Price(series, view.ChartType, selected)
	if view.ShowVolume {
		view.VolumeChart = chart.Volume(series)
	}
	if slices.Contains(selected, model.IndicatorRSI) && series.RSI != nil {
		view.RSIChart = chart.RSI(series)
	}
	if slices.Contains(selected, model.IndicatorMACD) && series.MACD != nil {
		view.MACDChart = chart.MACD(series)
	}

	view.Rows = summaryRows(series)
	view.Signals = ctrl.marketService.Signals(series, m)
}

// summaryRows formats the last 15 bars for the data table.
func summaryRows(series *model.Series) []summaryRow {
	start := len(series.Bars) - 15
	if start < 0 {
		start = 0
	}
	intraday := series.Period.Intraday()

	rows := make([]summaryRow, 0, len(series.Bars)-start)
	for _, b := range series.Bars[start:] {
		rows = append(rows, summaryRow{
			Time:   util.FormatBarTime(b.Time, intraday),
			Open:   fmt.Sprintf("%.2f", b.Open),
			High:   fmt.Sprintf("%.2f", b.High),
			Low:    fmt.Sprintf("%.2f", b.Low),
			Close:  fmt.Sprintf("%.2f", b.Close),
			Volume: util.FormatAmount(b.Volume, 0),
		})
	}
	return rows
}

func (ctrl *DashboardController) watchlistQuotes(c *gin.Context) []watchGroupView {
	groups := ctrl.watchlistService.GroupsWithQuotes(c.Request.Context())
	out := make([]watchGroupView, 0, len(groups))
	for _, g := range groups {
		gv := watchGroupView{Name: g.Name, Quotes: make([]quoteView, 0, len(g.Quotes))}
		for _, q := range g.Quotes {
			qv := quoteView{Symbol: q.Symbol, Err: q.Err}
			if !q.Err {
				qv.PriceStr = fmt.Sprintf("%.2f", q.Price)
				qv.ChangeStr = fmt.Sprintf("%.2f (%.2f%%)", q.Change, q.PctChange)
				qv.Up = q.Change >= 0
			}
			gv.Quotes = append(gv.Quotes, qv)
		}
		out = append(out, gv)
	}
	return out
}

