package service

import (
	"context"
	"slices"
	"testing"

	"github.com/dafahentra/stocks-dashboard/config"
	"github.com/dafahentra/stocks-dashboard/customerrors"
	"github.com/dafahentra/stocks-dashboard/model"

	"github.com/stretchr/testify/require"
)

// stubMarketService returns canned quotes without touching the network.
type stubMarketService struct {
	failing map[string]bool
}

func (s *stubMarketService) GetHistory(ctx context.Context, ticker string, period model.Period) (*model.Series, error) {
	return nil, customerrors.ErrNoData
}

func (s *stubMarketService) GetQuote(ctx context.Context, symbol string) model.Quote {
	if s.failing[symbol] {
		return model.Quote{Symbol: symbol, Err: true}
	}
	return model.Quote{Symbol: symbol, Price: 10, Change: 1, PctChange: 10}
}

func (s *stubMarketService) Metrics(series *model.Series) model.Metrics {
	return model.Metrics{}
}

func (s *stubMarketService) Signals(series *model.Series, m model.Metrics) []model.Signal {
	return nil
}

// fakeWatchlistStore mirrors the Mongo repository's set semantics: add
// unions the stored document with the incoming symbols, remove fails on
// groups that were never written.
type fakeWatchlistStore struct {
	docs map[string][]string
}

func newFakeWatchlistStore() *fakeWatchlistStore {
	return &fakeWatchlistStore{docs: map[string][]string{}}
}

func (f *fakeWatchlistStore) AddSymbol(ctx context.Context, group, symbol string, current []string) (*model.WatchGroup, error) {
	stored := f.docs[group]
	for _, s := range append(slices.Clone(current), symbol) {
		if !slices.Contains(stored, s) {
			stored = append(stored, s)
		}
	}
	f.docs[group] = stored
	return &model.WatchGroup{Name: group, Symbols: slices.Clone(stored)}, nil
}

func (f *fakeWatchlistStore) RemoveSymbol(ctx context.Context, group, symbol string) (*model.WatchGroup, error) {
	stored, ok := f.docs[group]
	if !ok {
		return nil, customerrors.ErrWatchGroupNotFound
	}
	stored = slices.DeleteFunc(stored, func(v string) bool { return v == symbol })
	f.docs[group] = stored
	return &model.WatchGroup{Name: group, Symbols: slices.Clone(stored)}, nil
}

func (f *fakeWatchlistStore) ReplaceSymbols(ctx context.Context, group string, symbols []string) (*model.WatchGroup, error) {
	f.docs[group] = slices.Clone(symbols)
	return &model.WatchGroup{Name: group, Symbols: slices.Clone(symbols)}, nil
}

func (f *fakeWatchlistStore) FindAll(ctx context.Context) ([]model.WatchGroup, error) {
	groups := make([]model.WatchGroup, 0, len(f.docs))
	for name, symbols := range f.docs {
		groups = append(groups, model.WatchGroup{Name: name, Symbols: slices.Clone(symbols)})
	}
	return groups, nil
}

func watchlistConfig() *config.SystemConfigs {
	return &config.SystemConfigs{Config: &model.AppConfig{
		Watchlist: []model.WatchGroup{
			{Name: "US Tech", Symbols: []string{"AAPL", "MSFT"}},
			{Name: "Asian", Symbols: []string{"TSM"}},
		},
	}}
}

func TestWatchlistAddSymbol(t *testing.T) {
	svc := NewWatchlistService(nil, &stubMarketService{}, watchlistConfig())

	require.NoError(t, svc.AddSymbol(context.Background(), "US Tech", "googl"))

	groups := svc.Groups()
	require.Equal(t, []string{"AAPL", "MSFT", "GOOGL"}, groups[0].Symbols)

	// Duplicate adds are no-ops.
	require.NoError(t, svc.AddSymbol(context.Background(), "US Tech", "GOOGL"))
	require.Len(t, svc.Groups()[0].Symbols, 3)
}

func TestWatchlistAddCreatesGroup(t *testing.T) {
	svc := NewWatchlistService(nil, &stubMarketService{}, watchlistConfig())

	require.NoError(t, svc.AddSymbol(context.Background(), "Crypto", "COIN"))

	groups := svc.Groups()
	require.Len(t, groups, 3)
	require.Equal(t, "Crypto", groups[2].Name)
	require.Equal(t, []string{"COIN"}, groups[2].Symbols)
}

func TestWatchlistRemoveSymbol(t *testing.T) {
	svc := NewWatchlistService(nil, &stubMarketService{}, watchlistConfig())

	require.NoError(t, svc.RemoveSymbol(context.Background(), "US Tech", "AAPL"))
	require.Equal(t, []string{"MSFT"}, svc.Groups()[0].Symbols)

	err := svc.RemoveSymbol(context.Background(), "Nope", "AAPL")
	require.ErrorIs(t, err, customerrors.ErrWatchGroupNotFound)
}

func TestWatchlistPersistedAddKeepsPresetSymbols(t *testing.T) {
	store := newFakeWatchlistStore()
	svc := NewWatchlistService(store, &stubMarketService{}, watchlistConfig())

	// First persisted write of a preset group must carry the whole preset,
	// not just the new symbol.
	require.NoError(t, svc.AddSymbol(context.Background(), "US Tech", "NVDA"))

	require.Equal(t, []string{"AAPL", "MSFT", "NVDA"}, svc.Groups()[0].Symbols)
	require.Equal(t, []string{"AAPL", "MSFT", "NVDA"}, store.docs["US Tech"])
}

func TestWatchlistPersistedRemoveSeedsPresetGroup(t *testing.T) {
	store := newFakeWatchlistStore()
	svc := NewWatchlistService(store, &stubMarketService{}, watchlistConfig())

	// The preset has no stored document; removing must seed it with the
	// remaining symbols instead of failing or creating an empty group.
	require.NoError(t, svc.RemoveSymbol(context.Background(), "US Tech", "AAPL"))

	require.Equal(t, []string{"MSFT"}, svc.Groups()[0].Symbols)
	require.Equal(t, []string{"MSFT"}, store.docs["US Tech"])
}

func TestWatchlistPersistedRemoveUnknownGroup(t *testing.T) {
	store := newFakeWatchlistStore()
	svc := NewWatchlistService(store, &stubMarketService{}, watchlistConfig())

	err := svc.RemoveSymbol(context.Background(), "Nope", "AAPL")
	require.ErrorIs(t, err, customerrors.ErrWatchGroupNotFound)
	require.NotContains(t, store.docs, "Nope")
}

func TestWatchlistGroupsAreCopies(t *testing.T) {
	svc := NewWatchlistService(nil, &stubMarketService{}, watchlistConfig())

	groups := svc.Groups()
	groups[0].Symbols[0] = "HACKED"

	require.Equal(t, "AAPL", svc.Groups()[0].Symbols[0])
}

func TestGroupsWithQuotesDegradesPerSymbol(t *testing.T) {
	svc := NewWatchlistService(nil, &stubMarketService{failing: map[string]bool{"MSFT": true}}, watchlistConfig())

	groups := svc.GroupsWithQuotes(context.Background())

	require.Len(t, groups, 2)
	require.Len(t, groups[0].Quotes, 2)
	require.False(t, groups[0].Quotes[0].Err)
	require.True(t, groups[0].Quotes[1].Err)
	require.Equal(t, "MSFT", groups[0].Quotes[1].Symbol)
}
