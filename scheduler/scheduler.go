// Package scheduler runs the watchlist cache warmer so page loads hit warm
// quote caches.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/dafahentra/stocks-dashboard/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type Scheduler struct {
	cron      *cron.Cron
	watchlist service.WatchlistService
}

func New(watchlist service.WatchlistService) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		watchlist: watchlist,
	}
}

// Register schedules the quote warmer with the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.warmQuotes); err != nil {
		return fmt.Errorf("register quote warmer: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Msg("scheduler started")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// warmQuotes touches every watchlist symbol, refilling the quote cache.
// Failures degrade per symbol inside the service.
func (s *Scheduler) warmQuotes() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	groups := s.watchlist.GroupsWithQuotes(ctx)

	symbols := 0
	for _, g := range groups {
		symbols += len(g.Quotes)
	}
	log.Debug().Int("symbols", symbols).Msg("watchlist quotes warmed")
}
