package config

import (
	"fmt"
	"os"

	"github.com/dafahentra/stocks-dashboard/model"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type SystemConfigs struct {
	Config *model.AppConfig
}

// LoadConfigs reads the YAML config file (CONFIG_PATH, default
// configs/config.yaml), then applies environment-variable overrides.
// A missing config file is fine; env vars alone can carry the setup.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	cfg := defaults()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "configs/config.yaml"
	}

	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = DefaultWatchlist()
	}

	return &SystemConfigs{Config: cfg}, nil
}

func defaults() *model.AppConfig {
	return &model.AppConfig{
		Port:                "8080",
		Environment:         "development",
		DefaultTicker:       "GOTO.JK",
		YahooBaseUrl:        "https://query1.finance.yahoo.com/v8/finance/chart",
		YahooTimeoutSeconds: 10,
		HistoryTTLSeconds:   30,
		QuoteTTLSeconds:     30,
		MongoDatabase:       "stocks_dashboard",
		FrontendUrls:        []string{"http://localhost:3000"},
		WarmerSpec:          "0 * * * * *",
	}
}

// DefaultWatchlist returns the built-in preset groups used when the config
// file does not define any.
func DefaultWatchlist() []model.WatchGroup {
	return []model.WatchGroup{
		{Name: "US Tech", Symbols: []string{"AAPL", "GOOGL", "MSFT", "AMZN"}},
		{Name: "European", Symbols: []string{"SAP.DE", "ASML.AS", "NESN.SW"}},
		{Name: "Asian", Symbols: []string{"TSM", "7203.T", "BABA"}},
		{Name: "Emerging", Symbols: []string{"BBCA.JK", "VALE", "INFY"}},
	}
}
