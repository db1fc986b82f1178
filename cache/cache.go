package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Short-lived dashboard caches. History and quotes follow the 30 second
// refresh cadence of the page; currency resolution is effectively static.
var HistoryCache = cache.New(30*time.Second, 1*time.Minute)
var QuoteCache = cache.New(30*time.Second, 1*time.Minute)
var CurrencyCache = cache.New(12*time.Hour, 1*time.Hour)
var RateLimiterCache = cache.New(10*time.Minute, 15*time.Minute)

// Configure rebuilds the history and quote caches with the configured TTLs.
// Called once at startup, before any request hits them.
func Configure(historyTTL, quoteTTL time.Duration) {
	if historyTTL > 0 {
		HistoryCache = cache.New(historyTTL, 2*historyTTL)
	}
	if quoteTTL > 0 {
		QuoteCache = cache.New(quoteTTL, 2*quoteTTL)
	}
}
