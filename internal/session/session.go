// Package session bundles the per-profile preference store, favorites and
// search state.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/matt-dz/recipefinder/internal/favorites"
	"github.com/matt-dz/recipefinder/internal/gateway"
	"github.com/matt-dz/recipefinder/internal/kv"
	"github.com/matt-dz/recipefinder/internal/preferences"
	"github.com/matt-dz/recipefinder/internal/recipe"
	"github.com/matt-dz/recipefinder/internal/state"
)

var ErrInvalidProfile = errors.New("invalid profile id")

var profileIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// DefaultMaxSessions bounds a Registry whose Deps leave MaxSessions unset.
const DefaultMaxSessions = 1024

type Deps struct {
	Gateway gateway.Gateway
	Store   kv.Store
	Logger  *slog.Logger

	// MaxSessions is the number of sessions a Registry keeps open.
	MaxSessions int
}

type Session struct {
	ProfileID   string
	Preferences *preferences.Store
	Favorites   *favorites.Manager
	State       *state.State

	gateway gateway.Gateway
	logger  *slog.Logger
}

func ValidProfileID(id string) bool {
	return profileIDPattern.MatchString(id)
}

func profilePrefix(id string) string {
	return "profiles/" + id + "/"
}

// Open loads the preferences of profileID and wires its favorites and state.
func Open(ctx context.Context, deps Deps, profileID string) (*Session, error) {
	if !ValidProfileID(profileID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProfile, profileID)
	}
	logger := deps.Logger.With(slog.String("profile_id", profileID))
	prefs, err := preferences.Open(ctx, kv.Prefixed(deps.Store, profilePrefix(profileID)), logger)
	if err != nil {
		return nil, fmt.Errorf("opening preferences: %w", err)
	}
	return &Session{
		ProfileID:   profileID,
		Preferences: prefs,
		Favorites:   favorites.New(prefs),
		State:       state.New(deps.Gateway, prefs, logger),
		gateway:     deps.Gateway,
		logger:      logger,
	}, nil
}

// ViewRecipe fetches one recipe and records it as recently viewed.
// gateway.ErrNotFound is returned unchanged. Failing to record the view is
// logged and does not fail the lookup.
func (s *Session) ViewRecipe(ctx context.Context, id int64) (recipe.Recipe, error) {
	r, err := s.gateway.GetByID(ctx, id)
	if err != nil {
		return recipe.Recipe{}, err
	}
	if err := s.Preferences.AddRecentlyViewed(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "failed to record recently viewed recipe",
			slog.Int64("recipe_id", id), slog.Any("error", err))
	}
	return r, nil
}

func (s *Session) FavoriteRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	ids := s.Favorites.IDs()
	if len(ids) == 0 {
		return []recipe.Recipe{}, nil
	}
	return s.gateway.GetByIDs(ctx, ids)
}

// RecentRecipes resolves up to limit recently viewed recipes, newest first.
// A limit of zero or less means all of them.
func (s *Session) RecentRecipes(ctx context.Context, limit int) ([]recipe.Recipe, error) {
	ids := s.Preferences.RecentlyViewed()
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	if len(ids) == 0 {
		return []recipe.Recipe{}, nil
	}
	found, err := s.gateway.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]recipe.Recipe, len(found))
	for _, r := range found {
		byID[r.ID] = r
	}
	out := make([]recipe.Recipe, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// Registry opens sessions on first use and keeps the most recently used
// ones open. An evicted session is reopened from the preferences backend on
// its next use, so only its in-memory search state is lost.
type Registry struct {
	deps     Deps
	sessions *lru.Cache[string, *Session]
	group    singleflight.Group
}

func NewRegistry(deps Deps) *Registry {
	if deps.MaxSessions <= 0 {
		deps.MaxSessions = DefaultMaxSessions
	}
	// lru.New only fails for a non-positive size.
	sessions, _ := lru.New[string, *Session](deps.MaxSessions)
	return &Registry{deps: deps, sessions: sessions}
}

func (r *Registry) Get(ctx context.Context, profileID string) (*Session, error) {
	if s, ok := r.sessions.Get(profileID); ok {
		return s, nil
	}

	v, err, _ := r.group.Do(profileID, func() (any, error) {
		if s, ok := r.sessions.Get(profileID); ok {
			return s, nil
		}
		s, err := Open(context.WithoutCancel(ctx), r.deps, profileID)
		if err != nil {
			return nil, err
		}
		r.sessions.Add(profileID, s)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	return r.sessions.Len()
}
