package model

// AppConfig is the full runtime configuration. Values come from the YAML
// config file, overridden by environment variables (caarlos0/env tags).
type AppConfig struct {
	Port        string `yaml:"port" env:"PORT"`
	Environment string `yaml:"environment" env:"ENVIRONMENT"`

	DefaultTicker string `yaml:"defaultTicker" env:"DEFAULT_TICKER"`

	YahooBaseUrl        string `yaml:"yahooBaseUrl" env:"YAHOO_BASE_URL"`
	YahooTimeoutSeconds int    `yaml:"yahooTimeoutSeconds" env:"YAHOO_TIMEOUT_SECONDS"`

	HistoryTTLSeconds int `yaml:"historyTTLSeconds" env:"HISTORY_TTL_SECONDS"`
	QuoteTTLSeconds   int `yaml:"quoteTTLSeconds" env:"QUOTE_TTL_SECONDS"`

	// Optional second-level stores. Empty means in-memory only.
	MongoUri      string `yaml:"mongoUri" env:"MONGO_URI"`
	MongoDatabase string `yaml:"mongoDatabase" env:"MONGO_DATABASE"`
	RedisUrl      string `yaml:"redisUrl" env:"REDIS_URL"`

	FrontendUrls []string `yaml:"frontendUrls" env:"FRONTEND_URLS" envSeparator:","`
	RateLimiter  bool     `yaml:"rateLimiter" env:"RATE_LIMITER"`

	WarmerEnabled bool   `yaml:"warmerEnabled" env:"WARMER_ENABLED"`
	WarmerSpec    string `yaml:"warmerSpec" env:"WARMER_SPEC"`

	Watchlist []WatchGroup `yaml:"watchlist"`
}
