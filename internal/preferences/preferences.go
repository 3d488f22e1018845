// Package preferences persists favorites, search history and recently
// viewed recipes in a key-value store.
package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	mJson "github.com/matt-dz/recipefinder/internal/json"
	"github.com/matt-dz/recipefinder/internal/kv"
)

const (
	KeyFavorites      = "favoriteRecipes"
	KeySearchHistory  = "searchHistory"
	KeyRecentlyViewed = "recentlyViewed"
)

const (
	MaxSearchHistory  = 10
	MaxRecentlyViewed = 10
)

// Store holds the in-memory copy of one profile's preferences and writes
// every change through to the backing kv.Store.
type Store struct {
	mu      sync.Mutex
	backend kv.Store
	logger  *slog.Logger

	favorites      []int64
	searchHistory  []string
	recentlyViewed []int64
}

// Open reads every key once. A missing or malformed value starts empty; a
// backend failure is returned.
func Open(ctx context.Context, backend kv.Store, logger *slog.Logger) (*Store, error) {
	s := &Store{backend: backend, logger: logger}
	if err := load(ctx, s, KeyFavorites, &s.favorites); err != nil {
		return nil, err
	}
	if err := load(ctx, s, KeySearchHistory, &s.searchHistory); err != nil {
		return nil, err
	}
	if err := load(ctx, s, KeyRecentlyViewed, &s.recentlyViewed); err != nil {
		return nil, err
	}
	s.searchHistory = capped(s.searchHistory, MaxSearchHistory)
	s.recentlyViewed = capped(s.recentlyViewed, MaxRecentlyViewed)
	return s, nil
}

func load[T any](ctx context.Context, s *Store, key string, dst *[]T) error {
	data, err := s.backend.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		*dst = []T{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	var values []T
	if err := mJson.DecodeBytes(&values, data); err != nil || values == nil {
		s.logger.WarnContext(ctx, "discarding malformed preference",
			slog.String("key", key), slog.Any("error", err))
		*dst = []T{}
		return nil
	}
	*dst = values
	return nil
}

func capped[T any](values []T, n int) []T {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func (s *Store) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

func (s *Store) Favorites() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.favorites)
}

func (s *Store) SearchHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.searchHistory)
}

func (s *Store) RecentlyViewed() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.recentlyViewed)
}

// SetFavorites replaces and persists the favorite set.
func (s *Store) SetFavorites(ctx context.Context, ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.Clone(ids)
	if next == nil {
		next = []int64{}
	}
	if err := s.persist(ctx, KeyFavorites, next); err != nil {
		return err
	}
	s.favorites = next
	return nil
}

// AddSearchHistory records q as the newest entry. Blank queries and queries
// already present are ignored and report false.
func (s *Store) AddSearchHistory(ctx context.Context, q string) (bool, error) {
	if strings.TrimSpace(q) == "" {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.Contains(s.searchHistory, q) {
		return false, nil
	}
	next := capped(append([]string{q}, s.searchHistory...), MaxSearchHistory)
	if err := s.persist(ctx, KeySearchHistory, next); err != nil {
		return false, err
	}
	s.searchHistory = next
	return true, nil
}

func (s *Store) ClearSearchHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := []string{}
	if err := s.persist(ctx, KeySearchHistory, next); err != nil {
		return err
	}
	s.searchHistory = next
	return nil
}

// AddRecentlyViewed moves id to the front of the recently viewed list.
func (s *Store) AddRecentlyViewed(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rest := slices.DeleteFunc(slices.Clone(s.recentlyViewed), func(v int64) bool { return v == id })
	next := capped(append([]int64{id}, rest...), MaxRecentlyViewed)
	if err := s.persist(ctx, KeyRecentlyViewed, next); err != nil {
		return err
	}
	s.recentlyViewed = next
	return nil
}
