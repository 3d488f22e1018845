package preferences

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/matt-dz/recipefinder/internal/kv"
	"github.com/matt-dz/recipefinder/internal/log"
)

type flakyStore struct {
	*kv.Memory
	getErr error
	setErr error
}

func (f *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Memory.Get(ctx, key)
}

func (f *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Memory.Set(ctx, key, value)
}

func open(t *testing.T, backend kv.Store) *Store {
	t.Helper()
	s, err := Open(context.Background(), backend, log.NullLogger())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s
}

func TestOpen_Defaults(t *testing.T) {
	mem := kv.NewMemory()
	ctx := context.Background()
	_ = mem.Set(ctx, KeyFavorites, []byte(`not json`))
	_ = mem.Set(ctx, KeySearchHistory, []byte(`null`))
	_ = mem.Set(ctx, KeyRecentlyViewed, []byte(`[3,1]`))

	s := open(t, mem)
	if got := s.Favorites(); got == nil || len(got) != 0 {
		t.Errorf("expected empty favorites for malformed value, got %v", got)
	}
	if got := s.SearchHistory(); len(got) != 0 {
		t.Errorf("expected empty history, got %v", got)
	}
	if got := s.RecentlyViewed(); !slices.Equal(got, []int64{3, 1}) {
		t.Errorf("expected [3 1], got %v", got)
	}
}

func TestOpen_BackendError(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := Open(context.Background(), &flakyStore{Memory: kv.NewMemory(), getErr: boom}, log.NullLogger())
	if !errors.Is(err, boom) {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestOpen_ReadsPersistedState(t *testing.T) {
	mem := kv.NewMemory()
	first := open(t, mem)
	ctx := context.Background()
	if err := first.SetFavorites(ctx, []int64{4, 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := first.AddSearchHistory(ctx, "pasta"); err != nil {
		t.Fatal(err)
	}
	if err := first.AddRecentlyViewed(ctx, 7); err != nil {
		t.Fatal(err)
	}

	second := open(t, mem)
	if !slices.Equal(second.Favorites(), []int64{4, 2}) {
		t.Errorf("favorites = %v", second.Favorites())
	}
	if !slices.Equal(second.SearchHistory(), []string{"pasta"}) {
		t.Errorf("history = %v", second.SearchHistory())
	}
	if !slices.Equal(second.RecentlyViewed(), []int64{7}) {
		t.Errorf("recently viewed = %v", second.RecentlyViewed())
	}
	raw, _ := mem.Get(ctx, KeyFavorites)
	if string(raw) != `[4,2]` {
		t.Errorf("unexpected stored favorites %q", raw)
	}
}

func TestAddSearchHistory(t *testing.T) {
	ctx := context.Background()
	s := open(t, kv.NewMemory())

	for _, q := range []string{"a", "b", "c"} {
		if added, err := s.AddSearchHistory(ctx, q); err != nil || !added {
			t.Fatalf("AddSearchHistory(%q) = %v, %v", q, added, err)
		}
	}

	// Existing entries are not moved.
	added, err := s.AddSearchHistory(ctx, "a")
	if err != nil || added {
		t.Fatalf("re-adding existing entry = %v, %v", added, err)
	}
	if got := s.SearchHistory(); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("history = %v, want [c b a]", got)
	}

	for _, q := range []string{"", "   "} {
		if added, _ := s.AddSearchHistory(ctx, q); added {
			t.Errorf("blank query %q was recorded", q)
		}
	}

	for i := range 12 {
		_, _ = s.AddSearchHistory(ctx, fmt.Sprintf("q%d", i))
	}
	got := s.SearchHistory()
	if len(got) != MaxSearchHistory {
		t.Fatalf("expected %d entries, got %d", MaxSearchHistory, len(got))
	}
	if got[0] != "q11" || got[9] != "q2" {
		t.Errorf("unexpected history window %v", got)
	}
}

func TestAddRecentlyViewed(t *testing.T) {
	ctx := context.Background()
	s := open(t, kv.NewMemory())

	for _, id := range []int64{1, 2, 3} {
		if err := s.AddRecentlyViewed(ctx, id); err != nil {
			t.Fatal(err)
		}
	}
	_ = s.AddRecentlyViewed(ctx, 1)
	if got := s.RecentlyViewed(); !slices.Equal(got, []int64{1, 3, 2}) {
		t.Errorf("recently viewed = %v, want [1 3 2]", got)
	}

	for id := int64(10); id < 25; id++ {
		_ = s.AddRecentlyViewed(ctx, id)
	}
	got := s.RecentlyViewed()
	if len(got) != MaxRecentlyViewed || got[0] != 24 || got[9] != 15 {
		t.Errorf("unexpected window %v", got)
	}
}

func TestClearSearchHistory(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := open(t, mem)
	_, _ = s.AddSearchHistory(ctx, "soup")

	if err := s.ClearSearchHistory(ctx); err != nil {
		t.Fatalf("ClearSearchHistory() error = %v", err)
	}
	if len(s.SearchHistory()) != 0 {
		t.Errorf("history not cleared: %v", s.SearchHistory())
	}
	raw, _ := mem.Get(ctx, KeySearchHistory)
	if string(raw) != `[]` {
		t.Errorf("stored history = %q", raw)
	}
}

func TestWriteFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	backend := &flakyStore{Memory: kv.NewMemory()}
	s := open(t, backend)
	_ = s.SetFavorites(ctx, []int64{1})
	_, _ = s.AddSearchHistory(ctx, "rice")
	_ = s.AddRecentlyViewed(ctx, 5)

	boom := errors.New("read-only")
	backend.setErr = boom

	if err := s.SetFavorites(ctx, []int64{1, 2}); !errors.Is(err, boom) {
		t.Errorf("SetFavorites() error = %v", err)
	}
	if _, err := s.AddSearchHistory(ctx, "beans"); !errors.Is(err, boom) {
		t.Errorf("AddSearchHistory() error = %v", err)
	}
	if err := s.AddRecentlyViewed(ctx, 6); !errors.Is(err, boom) {
		t.Errorf("AddRecentlyViewed() error = %v", err)
	}

	if !slices.Equal(s.Favorites(), []int64{1}) {
		t.Errorf("favorites changed after failed write: %v", s.Favorites())
	}
	if !slices.Equal(s.SearchHistory(), []string{"rice"}) {
		t.Errorf("history changed after failed write: %v", s.SearchHistory())
	}
	if !slices.Equal(s.RecentlyViewed(), []int64{5}) {
		t.Errorf("recently viewed changed after failed write: %v", s.RecentlyViewed())
	}
}
