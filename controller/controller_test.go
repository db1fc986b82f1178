package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dafahentra/stocks-dashboard/config"
	"github.com/dafahentra/stocks-dashboard/model"
	"github.com/dafahentra/stocks-dashboard/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeYahoo serves a valid chart for every ticker except those prefixed BAD.
func fakeYahoo(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/BAD") {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found"}}}`))
			return
		}

		n := 40
		base := time.Date(2025, 4, 1, 13, 30, 0, 0, time.UTC)
		timestamps := make([]int64, n)
		cols := make([][]float64, 4)
		for i := range cols {
			cols[i] = make([]float64, n)
		}
		volumes := make([]int64, n)
		for i := 0; i < n; i++ {
			price := 50 + float64(i)
			timestamps[i] = base.Add(time.Duration(i) * 24 * time.Hour).Unix()
			cols[0][i] = price - 1 // open
			cols[1][i] = price + 1 // high
			cols[2][i] = price - 2 // low
			cols[3][i] = price     // close
			volumes[i] = 500
		}

		resp := model.YahooChartResponse{Chart: model.ChartData{
			Result: []model.ChartResult{{
				Meta:      model.ChartMeta{Currency: "USD"},
				Timestamp: timestamps,
				Indicators: model.ChartIndicators{Quote: []model.ChartQuote{{
					Open: cols[0], High: cols[1], Low: cols[2], Close: cols[3], Volume: volumes,
				}}},
			}},
		}}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestRouter(t *testing.T, yahooURL string) *gin.Engine {
	t.Helper()
	cfg := &config.SystemConfigs{Config: &model.AppConfig{
		DefaultTicker:       "AAPL",
		YahooBaseUrl:        yahooURL,
		YahooTimeoutSeconds: 5,
		HistoryTTLSeconds:   30,
		QuoteTTLSeconds:     30,
		FrontendUrls:        []string{"http://localhost:3000"},
		Watchlist: []model.WatchGroup{
			{Name: "US Tech", Symbols: []string{"AAPL"}},
		},
	}}
	router, _ := routes.SetupRouter(nil, cfg)
	return router
}

func TestDashboardRenders(t *testing.T) {
	server := fakeYahoo(t)
	defer server.Close()
	router := newTestRouter(t, server.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, "Stock Dashboard")
	require.Contains(t, body, "Current Price")
	require.Contains(t, body, "Quick Watchlist")
	require.NotContains(t, body, "Unable to fetch data")
}

func TestDashboardSharedURLKeepsIndicatorSelection(t *testing.T) {
	server := fakeYahoo(t)
	defer server.Close()
	router := newTestRouter(t, server.URL)

	// A shared URL without a ticker param is not a first load; the explicit
	// indicator selection must survive instead of the SMA/EMA defaults.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?period=1y&indicators=rsi", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, `value="rsi" checked`)
	require.NotContains(t, body, `value="sma20" checked`)
	require.NotContains(t, body, `value="ema20" checked`)
}

func TestDashboardFetchFailureShowsBanner(t *testing.T) {
	server := fakeYahoo(t)
	defer server.Close()
	router := newTestRouter(t, server.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?ticker=BADX&period=1mo&chart=candlestick", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Unable to fetch data for BADX")
}

func TestMarketHistoryEndpoint(t *testing.T) {
	server := fakeYahoo(t)
	defer server.Close()
	router := newTestRouter(t, server.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/market/history?ticker=HISTAPI&period=1mo", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	require.Equal(t, "HISTAPI", data["ticker"])
	require.Equal(t, "USD", data["currency"])
	bars := data["bars"].([]any)
	require.Len(t, bars, 40)

	// Warm-up prefix encodes as null, not NaN.
	sma := data["sma20"].([]any)
	require.Len(t, sma, 40)
	require.Nil(t, sma[0])
	require.NotNil(t, sma[39])
}

func TestMarketHistoryMissingTicker(t *testing.T) {
	server := fakeYahoo(t)
	defer server.Close()
	router := newTestRouter(t, server.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/market/history", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarketHistoryBadTicker(t *testing.T) {
	server := fakeYahoo(t)
	defer server.Close()
	router := newTestRouter(t, server.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/market/history?ticker=BADAPI", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp model.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "Unable to fetch data for BADAPI", resp.Message)
}

func TestWatchlistEndpoints(t *testing.T) {
	server := fakeYahoo(t)
	defer server.Close()
	router := newTestRouter(t, server.URL)

	// Invalid payload rejected by schema validation.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(`{"group":"","symbol":""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Valid add.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(`{"group":"US Tech","symbol":"MSFT"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Listed with quotes.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "MSFT")

	// Remove again.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/watchlist/US%20Tech/MSFT", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	server := fakeYahoo(t)
	defer server.Close()
	router := newTestRouter(t, server.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
