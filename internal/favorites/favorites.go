// Package favorites manages the favorite recipe set of a profile.
package favorites

import (
	"context"
	"slices"
	"sync"

	"github.com/matt-dz/recipefinder/internal/preferences"
)

type Manager struct {
	mu    sync.Mutex
	prefs *preferences.Store
	ids   []int64
	set   map[int64]struct{}
}

func New(prefs *preferences.Store) *Manager {
	ids := prefs.Favorites()
	set := make(map[int64]struct{}, len(ids))
	unique := ids[:0]
	for _, id := range ids {
		if _, ok := set[id]; ok {
			continue
		}
		set[id] = struct{}{}
		unique = append(unique, id)
	}
	return &Manager{prefs: prefs, ids: unique, set: set}
}

// Toggle adds id when absent and removes it when present, persisting the
// whole set before returning. It reports whether id is now a favorite.
func (m *Manager) Toggle(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, present := m.set[id]
	var next []int64
	if present {
		next = slices.DeleteFunc(slices.Clone(m.ids), func(v int64) bool { return v == id })
	} else {
		next = append(slices.Clone(m.ids), id)
	}
	if err := m.prefs.SetFavorites(ctx, next); err != nil {
		return present, err
	}

	m.ids = next
	if present {
		delete(m.set, id)
	} else {
		m.set[id] = struct{}{}
	}
	return !present, nil
}

func (m *Manager) IsFavorite(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.set[id]
	return ok
}

// IDs returns favorites in the order they were added.
func (m *Manager) IDs() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.ids)
}
