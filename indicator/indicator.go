// Package indicator computes the standard technical-analysis columns the
// dashboard overlays on a price series. Every function returns a slice the
// same length as its input, with NaN in the warm-up prefix.
package indicator

import (
	"math"

	"github.com/dafahentra/stocks-dashboard/model"
)

const (
	smaFastWindow   = 20
	smaSlowWindow   = 50
	emaWindow       = 20
	rsiWindow       = 14
	macdFastWindow  = 12
	macdSlowWindow  = 26
	macdSignalSpan  = 9
	bollingerWindow = 20
	bollingerWidth  = 2.0

	// minBars gates annotation: shorter windows stay raw.
	minBars = 20
)

// Annotate appends all indicator columns to the series in place. Series
// shorter than the smallest meaningful window are returned untouched.
func Annotate(s *model.Series) {
	if s == nil || len(s.Bars) < minBars {
		return
	}

	closes := s.Closes()

	s.SMA20 = SMA(closes, smaFastWindow)
	s.SMA50 = SMA(closes, smaSlowWindow)
	s.EMA20 = EMA(closes, emaWindow)
	s.RSI = RSI(closes, rsiWindow)
	s.MACD, s.MACDSignal, s.MACDHist = MACD(closes)
	s.BBUpper, s.BBMiddle, s.BBLower = Bollinger(closes, bollingerWindow, bollingerWidth)
}

// SMA computes the simple moving average over the given window.
func SMA(values []float64, window int) []float64 {
	out := nanSlice(len(values))
	if window <= 0 || len(values) < window {
		return out
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// EMA computes the exponential moving average, seeded with the SMA of the
// first full window. Leading NaNs in the input are skipped, so it can run
// over derived columns such as the MACD line.
func EMA(values []float64, window int) []float64 {
	out := nanSlice(len(values))
	if window <= 0 {
		return out
	}

	start := firstValid(values)
	if start < 0 || len(values)-start < window {
		return out
	}

	seed := 0.0
	for i := start; i < start+window; i++ {
		seed += values[i]
	}
	seed /= float64(window)
	out[start+window-1] = seed

	alpha := 2.0 / float64(window+1)
	prev := seed
	for i := start + window; i < len(values); i++ {
		prev = alpha*values[i] + (1-alpha)*prev
		out[i] = prev
	}
	return out
}

// RSI computes the Wilder-smoothed relative strength index.
func RSI(values []float64, window int) []float64 {
	out := nanSlice(len(values))
	if window <= 0 || len(values) < window+1 {
		return out
	}

	var avgGain, avgLoss float64
	for i := 1; i <= window; i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(window)
	avgLoss /= float64(window)
	out[window] = rsiValue(avgGain, avgLoss)

	for i := window + 1; i < len(values); i++ {
		change := values[i] - values[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(window-1) + gain) / float64(window)
		avgLoss = (avgLoss*float64(window-1) + loss) / float64(window)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

// MACD computes the 12/26 moving average convergence line, its 9-span
// signal line, and the histogram between them.
func MACD(values []float64) (macd, signal, hist []float64) {
	fast := EMA(values, macdFastWindow)
	slow := EMA(values, macdSlowWindow)

	macd = nanSlice(len(values))
	for i := range values {
		if !math.IsNaN(fast[i]) && !math.IsNaN(slow[i]) {
			macd[i] = fast[i] - slow[i]
		}
	}

	signal = EMA(macd, macdSignalSpan)

	hist = nanSlice(len(values))
	for i := range values {
		if !math.IsNaN(macd[i]) && !math.IsNaN(signal[i]) {
			hist[i] = macd[i] - signal[i]
		}
	}
	return macd, signal, hist
}

// Bollinger computes the moving-average band: middle SMA plus upper/lower
// bounds at width population standard deviations.
func Bollinger(values []float64, window int, width float64) (upper, middle, lower []float64) {
	middle = SMA(values, window)
	upper = nanSlice(len(values))
	lower = nanSlice(len(values))

	for i := window - 1; i < len(values); i++ {
		mean := middle[i]
		variance := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := values[j] - mean
			variance += d * d
		}
		sigma := math.Sqrt(variance / float64(window))
		upper[i] = mean + width*sigma
		lower[i] = mean - width*sigma
	}
	return upper, middle, lower
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

func firstValid(values []float64) int {
	for i, v := range values {
		if !math.IsNaN(v) {
			return i
		}
	}
	return -1
}
