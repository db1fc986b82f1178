// Package chart builds the dashboard's interactive charts with go-echarts
// and renders them as embeddable HTML snippets.
package chart

import (
	"html/template"
	"math"

	"github.com/dafahentra/stocks-dashboard/model"
	"github.com/dafahentra/stocks-dashboard/util"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"
)

// Dark modern palette shared with the stylesheet.
const (
	colorBg      = "#1e293b"
	colorUp      = "#10b981"
	colorDown    = "#ef4444"
	colorPrimary = "#6366f1"
	colorText    = "#f8fafc"
	colorLabel   = "#cbd5e1"
	colorMuted   = "#94a3b8"
	colorInfo    = "#3b82f6"
)

// overlayPalette cycles across the selected moving-average overlays.
var overlayPalette = []string{"#10b981", "#f59e0b", "#8b5cf6", "#06b6d4", "#ef4444"}

// Price builds the main chart: candlestick or close line, plus one overlay
// line per selected indicator. Bollinger renders as thin upper/lower bounds
// around the middle band.
func Price(s *model.Series, chartType model.ChartType, selected []model.Indicator) template.HTML {
	x := xAxis(s)

	overlays := charts.NewLine()
	overlays.SetXAxis(x)
	colorIdx := 0
	nextColor := func() string {
		c := overlayPalette[colorIdx%len(overlayPalette)]
		colorIdx++
		return c
	}

	for _, ind := range selected {
		switch ind {
		case model.IndicatorSMA20:
			addOverlay(overlays, "SMA 20", s.SMA20, nextColor(), 2)
		case model.IndicatorSMA50:
			addOverlay(overlays, "SMA 50", s.SMA50, nextColor(), 2)
		case model.IndicatorEMA20:
			addOverlay(overlays, "EMA 20", s.EMA20, nextColor(), 2)
		case model.IndicatorBB:
			addOverlay(overlays, "BB Upper", s.BBUpper, colorMuted, 1)
			addOverlay(overlays, "BB Lower", s.BBLower, colorMuted, 1)
			addOverlay(overlays, "BB Middle", s.BBMiddle, colorMuted, 2)
		}
	}

	title := s.Ticker + " - " + s.Currency
	if chartType == model.ChartLine {
		line := charts.NewLine()
		line.SetGlobalOptions(priceGlobalOptions(title, "650px")...)
		line.SetXAxis(x)
		addOverlay(line, s.Ticker+" Close", s.Closes(), colorPrimary, 3)
		line.Overlap(overlays)
		return snippet(line)
	}

	kline := charts.NewKLine()
	kline.SetGlobalOptions(priceGlobalOptions(title, "650px")...)
	klineData := make([]opts.KlineData, 0, len(s.Bars))
	for _, b := range s.Bars {
		klineData = append(klineData, opts.KlineData{Value: [4]float64{b.Open, b.Close, b.Low, b.High}})
	}
	kline.SetXAxis(x).AddSeries(s.Ticker, klineData,
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:        colorUp,
			Color0:       colorDown,
			BorderColor:  colorUp,
			BorderColor0: colorDown,
		}),
	)
	kline.Overlap(overlays)
	return snippet(kline)
}

// Volume builds the bar chart colored by candle direction.
func Volume(s *model.Series) template.HTML {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions("Trading Volume", "250px")...)

	data := make([]opts.BarData, 0, len(s.Bars))
	for _, b := range s.Bars {
		color := colorUp
		if b.Close < b.Open {
			color = colorDown
		}
		data = append(data, opts.BarData{
			Value:     b.Volume,
			ItemStyle: &opts.ItemStyle{Color: color},
		})
	}

	bar.SetXAxis(xAxis(s)).AddSeries("Volume", data)
	return snippet(bar)
}

// RSI builds the oscillator chart with dashed thresholds at 70 and 30.
func RSI(s *model.Series) template.HTML {
	line := charts.NewLine()
	line.SetGlobalOptions(append(globalOptions("RSI (14)", "300px"),
		charts.WithYAxisOpts(opts.YAxis{
			Min:       0,
			Max:       100,
			AxisLabel: &opts.AxisLabel{Color: colorMuted},
		}),
	)...)

	line.SetXAxis(xAxis(s))
	line.AddSeries("RSI", lineData(s.RSI),
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorPrimary, Width: 3}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorPrimary}),
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "Overbought", YAxis: 70}),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol:    []string{"none", "none"},
			LineStyle: &opts.LineStyle{Color: colorDown, Type: "dashed"},
		}),
	)
	line.AddSeries("Oversold", []opts.LineData{},
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "Oversold", YAxis: 30}),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol:    []string{"none", "none"},
			LineStyle: &opts.LineStyle{Color: colorUp, Type: "dashed"},
		}),
	)
	return snippet(line)
}

// MACD builds the convergence chart: MACD and signal lines over the
// sign-colored histogram.
func MACD(s *model.Series) template.HTML {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions("MACD", "300px")...)

	line.SetXAxis(xAxis(s))
	addOverlay(line, "MACD", s.MACD, colorInfo, 2)
	addOverlay(line, "Signal", s.MACDSignal, colorDown, 2)

	hist := charts.NewBar()
	histData := make([]opts.BarData, 0, len(s.MACDHist))
	for _, v := range s.MACDHist {
		if math.IsNaN(v) {
			histData = append(histData, opts.BarData{Value: nil})
			continue
		}
		color := colorUp
		if v < 0 {
			color = colorDown
		}
		histData = append(histData, opts.BarData{
			Value:     v,
			ItemStyle: &opts.ItemStyle{Color: color},
		})
	}
	hist.SetXAxis(xAxis(s)).AddSeries("Histogram", histData)

	line.Overlap(hist)
	return snippet(line)
}

func priceGlobalOptions(title, height string) []charts.GlobalOpts {
	return append(globalOptions(title, height),
		charts.WithDataZoomOpts(
			opts.DataZoom{
				Type:  "slider",
				Start: 0,
				End:   100,
			},
			opts.DataZoom{
				Type:  "inside",
				Start: 0,
				End:   100,
			},
		),
	)
}

func globalOptions(title, height string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:           "100%",
			Height:          height,
			BackgroundColor: colorBg,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      title,
			TitleStyle: &opts.TextStyle{Color: colorText},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			Top:       "30",
			TextStyle: &opts.TextStyle{Color: colorLabel},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Color: colorMuted},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale:     opts.Bool(true),
			AxisLabel: &opts.AxisLabel{Color: colorMuted},
		}),
	}
}

func addOverlay(line *charts.Line, name string, values []float64, color string, width float32) {
	if len(values) == 0 {
		return
	}
	line.AddSeries(name, lineData(values),
		charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: width}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
	)
}

// lineData converts a column to chart points, mapping NaN warm-up values to
// missing data so echarts leaves gaps instead of choking on NaN JSON.
func lineData(values []float64) []opts.LineData {
	out := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			out = append(out, opts.LineData{Value: nil})
			continue
		}
		out = append(out, opts.LineData{Value: v})
	}
	return out
}

func xAxis(s *model.Series) []string {
	intraday := s.Period.Intraday()
	x := make([]string, len(s.Bars))
	for i, b := range s.Bars {
		x[i] = util.FormatBarTime(b.Time, intraday)
	}
	return x
}

type snippetRenderer interface {
	RenderSnippet() render.ChartSnippet
}

func snippet(c snippetRenderer) template.HTML {
	snip := c.RenderSnippet()
	return template.HTML(snip.Element + snip.Script)
}
