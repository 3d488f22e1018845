// Package state tracks the search results shown to a profile and orders
// concurrent searches so that stale responses never overwrite newer ones.
package state

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/matt-dz/recipefinder/internal/filter"
	"github.com/matt-dz/recipefinder/internal/gateway"
	"github.com/matt-dz/recipefinder/internal/preferences"
	"github.com/matt-dz/recipefinder/internal/recipe"
	"github.com/matt-dz/recipefinder/internal/search"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

const (
	MsgSearchFailed = "Failed to search recipes. Please try again later."
	MsgFilterFailed = "Failed to apply filters. Please try again later."
)

type Snapshot struct {
	Status    Status          `json:"status"`
	Recipes   []recipe.Recipe `json:"recipes"`
	Error     string          `json:"error,omitempty"`
	LastQuery string          `json:"lastQuery"`
	Seq       uint64          `json:"seq"`
}

type State struct {
	gateway gateway.Gateway
	prefs   *preferences.Store
	logger  *slog.Logger

	mu        sync.Mutex
	recipes   []recipe.Recipe
	errMsg    string
	lastQuery string
	// settled is the status of the last applied response.
	settled Status
	issued  uint64
	applied uint64
	pending map[uint64]struct{}
}

func New(g gateway.Gateway, prefs *preferences.Store, logger *slog.Logger) *State {
	return &State{
		gateway: g,
		prefs:   prefs,
		logger:  logger,
		recipes: []recipe.Recipe{},
		settled: StatusIdle,
		pending: make(map[uint64]struct{}),
	}
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{
		Status:    s.statusLocked(),
		Recipes:   slices.Clone(s.recipes),
		Error:     s.errMsg,
		LastQuery: s.lastQuery,
		Seq:       s.applied,
	}
}

// statusLocked is loading while any call newer than the applied one is
// outstanding.
func (s *State) statusLocked() Status {
	for seq := range s.pending {
		if seq > s.applied {
			return StatusLoading
		}
	}
	return s.settled
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) begin(query *string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	seq := s.issued
	s.pending[seq] = struct{}{}
	if query != nil {
		s.lastQuery = *query
	}
	return seq
}

// finish applies the outcome of call seq if it is newer than the last applied
// response. It reports whether the outcome was applied.
func (s *State) finish(ctx context.Context, seq uint64, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, seq)
	if ctx.Err() != nil || seq <= s.applied {
		return false
	}
	s.applied = seq
	apply()
	return true
}

// Search classifies raw, runs it and records it in the search history once
// the lookup resolves, whether or not its results are still current.
func (s *State) Search(ctx context.Context, raw string) Snapshot {
	seq := s.begin(&raw)
	plan := search.ResolveQuery(raw)
	recipes, err := s.execute(ctx, plan)

	if err != nil {
		s.logError(ctx, "search failed", err, seq, plan)
		s.finish(ctx, seq, func() {
			s.recipes = []recipe.Recipe{}
			s.errMsg = MsgSearchFailed
			s.settled = StatusError
		})
		return s.Snapshot()
	}

	s.finish(ctx, seq, func() {
		s.recipes = recipes
		s.errMsg = ""
		s.settled = StatusReady
	})
	// A query that resolved is history even when a newer one overtook it.
	if ctx.Err() == nil && raw != "" {
		if _, err := s.prefs.AddSearchHistory(ctx, raw); err != nil {
			s.logger.WarnContext(ctx, "failed to record search history", slog.Any("error", err))
		}
	}
	return s.Snapshot()
}

// ApplyFilters re-runs the last query with d applied. Invalid filters are
// returned as an error and leave the state untouched. A failed lookup keeps
// the current results.
func (s *State) ApplyFilters(ctx context.Context, d filter.Descriptor) (Snapshot, error) {
	s.mu.Lock()
	lastQuery := s.lastQuery
	s.mu.Unlock()

	plan, err := search.ApplyFilters(d, lastQuery)
	if err != nil {
		return s.Snapshot(), err
	}

	seq := s.begin(nil)
	recipes, err := s.execute(ctx, plan)
	if err != nil {
		s.logError(ctx, "applying filters failed", err, seq, plan)
		s.finish(ctx, seq, func() {
			s.errMsg = MsgFilterFailed
			s.settled = StatusError
		})
		return s.Snapshot(), nil
	}

	s.finish(ctx, seq, func() {
		s.recipes = recipes
		s.errMsg = ""
		s.settled = StatusReady
	})
	return s.Snapshot(), nil
}

func (s *State) execute(ctx context.Context, plan search.Plan) ([]recipe.Recipe, error) {
	recipes, err := search.Execute(ctx, s.gateway, plan)
	if err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}
	return recipes, nil
}

func (s *State) logError(ctx context.Context, msg string, err error, seq uint64, plan search.Plan) {
	if errors.Is(err, context.Canceled) {
		return
	}
	s.logger.ErrorContext(ctx, msg,
		slog.Any("error", err),
		slog.Uint64("seq", seq),
		slog.String("kind", plan.Kind.String()),
		slog.String("query", plan.Query))
}
