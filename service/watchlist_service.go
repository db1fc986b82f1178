package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/dafahentra/stocks-dashboard/config"
	"github.com/dafahentra/stocks-dashboard/customerrors"
	"github.com/dafahentra/stocks-dashboard/model"

	"github.com/rs/zerolog/log"
)

type WatchlistService interface {
	Groups() []model.WatchGroup
	GroupsWithQuotes(ctx context.Context) []model.WatchGroupQuotes
	AddSymbol(ctx context.Context, group, symbol string) error
	RemoveSymbol(ctx context.Context, group, symbol string) error
}

// WatchlistStore persists watch groups. AddSymbol receives the group's
// current symbols so the first write of a preset group carries the full set,
// not just the new symbol. RemoveSymbol must not create missing groups.
type WatchlistStore interface {
	AddSymbol(ctx context.Context, group, symbol string, current []string) (*model.WatchGroup, error)
	RemoveSymbol(ctx context.Context, group, symbol string) (*model.WatchGroup, error)
	ReplaceSymbols(ctx context.Context, group string, symbols []string) (*model.WatchGroup, error)
	FindAll(ctx context.Context) ([]model.WatchGroup, error)
}

// WatchlistServiceImpl keeps the groups in memory, seeded from the config
// presets. When a Mongo repository is present, user edits persist and the
// stored groups override presets of the same name on startup.
type WatchlistServiceImpl struct {
	mu     sync.RWMutex
	groups []model.WatchGroup
	repo   WatchlistStore
	market MarketService
}

func NewWatchlistService(repo WatchlistStore, market MarketService, cfg *config.SystemConfigs) WatchlistService {
	s := &WatchlistServiceImpl{
		groups: cloneGroups(cfg.Config.Watchlist),
		repo:   repo,
		market: market,
	}

	if repo != nil {
		if stored, err := repo.FindAll(context.Background()); err != nil {
			log.Warn().Err(err).Msg("could not load persisted watchlist")
		} else {
			for _, g := range stored {
				s.mergeGroup(g)
			}
		}
	}

	return s
}

func (s *WatchlistServiceImpl) Groups() []model.WatchGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneGroups(s.groups)
}

// GroupsWithQuotes expands every group with quick quotes; per-symbol fetch
// failures surface as error-marked entries, never as a page failure.
func (s *WatchlistServiceImpl) GroupsWithQuotes(ctx context.Context) []model.WatchGroupQuotes {
	groups := s.Groups()
	out := make([]model.WatchGroupQuotes, 0, len(groups))
	for _, g := range groups {
		gq := model.WatchGroupQuotes{Name: g.Name, Quotes: make([]model.Quote, 0, len(g.Symbols))}
		for _, symbol := range g.Symbols {
			gq.Quotes = append(gq.Quotes, s.market.GetQuote(ctx, symbol))
		}
		out = append(out, gq)
	}
	return out
}

func (s *WatchlistServiceImpl) AddSymbol(ctx context.Context, group, symbol string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if s.repo != nil {
		updated, err := s.repo.AddSymbol(ctx, group, symbol, s.currentSymbols(group))
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.replaceGroup(*updated)
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.groups {
		if s.groups[i].Name == group {
			if !slices.Contains(s.groups[i].Symbols, symbol) {
				s.groups[i].Symbols = append(s.groups[i].Symbols, symbol)
			}
			return nil
		}
	}
	s.groups = append(s.groups, model.WatchGroup{Name: group, Symbols: []string{symbol}})
	return nil
}

func (s *WatchlistServiceImpl) RemoveSymbol(ctx context.Context, group, symbol string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if s.repo != nil {
		updated, err := s.repo.RemoveSymbol(ctx, group, symbol)
		if errors.Is(err, customerrors.ErrWatchGroupNotFound) {
			// Preset group with no stored document yet: seed it with the
			// in-memory symbols minus the removed one.
			current := s.currentSymbols(group)
			if current == nil {
				return err
			}
			remaining := slices.DeleteFunc(current, func(v string) bool { return v == symbol })
			updated, err = s.repo.ReplaceSymbols(ctx, group, remaining)
		}
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.replaceGroup(*updated)
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.groups {
		if s.groups[i].Name == group {
			s.groups[i].Symbols = slices.DeleteFunc(s.groups[i].Symbols, func(v string) bool {
				return v == symbol
			})
			return nil
		}
	}
	return customerrors.ErrWatchGroupNotFound
}

// currentSymbols snapshots a group's in-memory symbols, seeding the first
// persisted write of a preset group.
func (s *WatchlistServiceImpl) currentSymbols(group string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.groups {
		if s.groups[i].Name == group {
			return slices.Clone(s.groups[i].Symbols)
		}
	}
	return nil
}

// mergeGroup replaces a preset group with its stored version, appending
// unknown names. Caller holds no lock; only used during construction.
func (s *WatchlistServiceImpl) mergeGroup(g model.WatchGroup) {
	for i := range s.groups {
		if s.groups[i].Name == g.Name {
			s.groups[i] = g
			return
		}
	}
	s.groups = append(s.groups, g)
}

// replaceGroup swaps the in-memory copy after a persisted update. Caller
// holds the write lock.
func (s *WatchlistServiceImpl) replaceGroup(g model.WatchGroup) {
	for i := range s.groups {
		if s.groups[i].Name == g.Name {
			s.groups[i] = g
			return
		}
	}
	s.groups = append(s.groups, g)
}

func cloneGroups(groups []model.WatchGroup) []model.WatchGroup {
	out := make([]model.WatchGroup, len(groups))
	for i, g := range groups {
		out[i] = model.WatchGroup{Name: g.Name, Symbols: slices.Clone(g.Symbols)}
	}
	return out
}
