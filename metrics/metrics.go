package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	YahooFetches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stocks_yahoo_fetches_total",
		Help: "The total number of Yahoo Finance chart requests issued",
	})

	FetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stocks_fetch_errors_total",
		Help: "Total number of failed data fetches",
	})

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stocks_cache_hits_total",
		Help: "Series and quote lookups served from cache",
	})

	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stocks_cache_misses_total",
		Help: "Series and quote lookups that went to the provider",
	})

	PagesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stocks_pages_rendered_total",
		Help: "Dashboard pages rendered",
	})
)

// Handler exposes the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
