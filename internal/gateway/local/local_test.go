package local

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/matt-dz/recipefinder/internal/filter"
	"github.com/matt-dz/recipefinder/internal/gateway"
	"github.com/matt-dz/recipefinder/internal/recipe"
)

func ids(recipes []recipe.Recipe) []int64 {
	out := make([]int64, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func TestSearchByText(t *testing.T) {
	g := New(recipe.SampleCatalog(), NoLatency)
	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "empty returns catalog", query: "", want: []int64{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "title substring", query: "chicken", want: []int64{2, 8}},
		{name: "case insensitive", query: "CURRY", want: []int64{5}},
		{name: "no match", query: "sushi", want: []int64{}},
		{
			name:  "cuisine filter",
			query: filter.Compose("", filter.Descriptor{Cuisines: []string{"mediterranean"}}),
			want:  []int64{3, 6},
		},
		{
			name:  "diet filter",
			query: filter.Compose("", filter.Descriptor{Diets: []string{"Vegetarian"}}),
			want:  []int64{3, 6},
		},
		{
			name:  "ready time filter",
			query: filter.Compose("", filter.Descriptor{MaxReadyMinutes: 25}),
			want:  []int64{3, 6},
		},
		{
			name:  "include all of",
			query: filter.Compose("", filter.Descriptor{IncludeIngredients: []string{"onion", "garlic"}}),
			want:  []int64{2, 8},
		},
		{
			name:  "exclude none of",
			query: filter.Compose("chicken", filter.Descriptor{ExcludeIngredients: []string{"yogurt"}}),
			want:  []int64{8},
		},
		{
			name:  "text plus cuisine",
			query: filter.Compose("classic", filter.Descriptor{Cuisines: []string{"American"}, MaxReadyMinutes: 30}),
			want:  []int64{4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.SearchByText(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("SearchByText() error = %v", err)
			}
			if !slices.Equal(ids(got), tt.want) {
				t.Errorf("SearchByText(%q) = %v, want %v", tt.query, ids(got), tt.want)
			}
		})
	}
}

func TestSearchByIngredients(t *testing.T) {
	g := New(recipe.SampleCatalog(), NoLatency)
	tests := []struct {
		name string
		list string
		want []int64
	}{
		{name: "single term", list: "quinoa", want: []int64{3}},
		{name: "or semantics", list: "quinoa, pancetta", want: []int64{1, 3}},
		{name: "title match", list: "cookies", want: []int64{7}},
		{name: "case and whitespace", list: "  FETA ,", want: []int64{6}},
		{name: "blank list", list: " , ", want: []int64{1, 2, 3, 4, 5, 6, 7, 8}},
		{name: "unknown", list: "durian", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.SearchByIngredients(context.Background(), tt.list)
			if err != nil {
				t.Fatalf("SearchByIngredients() error = %v", err)
			}
			if !slices.Equal(ids(got), tt.want) {
				t.Errorf("SearchByIngredients(%q) = %v, want %v", tt.list, ids(got), tt.want)
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	g := New(recipe.SampleCatalog(), NoLatency)

	r, err := g.GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if r.Title != "Thai Green Curry" {
		t.Errorf("unexpected title %q", r.Title)
	}

	_, err = g.GetByID(context.Background(), 999)
	if !errors.Is(err, gateway.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByIDs(t *testing.T) {
	g := New(recipe.SampleCatalog(), NoLatency)
	tests := []struct {
		name string
		ids  []int64
		want []int64
	}{
		{name: "catalog order", ids: []int64{6, 2, 4}, want: []int64{2, 4, 6}},
		{name: "unknown dropped", ids: []int64{3, 42}, want: []int64{3}},
		{name: "empty", ids: nil, want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.GetByIDs(context.Background(), tt.ids)
			if err != nil {
				t.Fatalf("GetByIDs() error = %v", err)
			}
			if !slices.Equal(ids(got), tt.want) {
				t.Errorf("GetByIDs(%v) = %v, want %v", tt.ids, ids(got), tt.want)
			}
		})
	}
}

func TestLatencyHonoursContext(t *testing.T) {
	g := New(recipe.SampleCatalog(), Latency{Text: time.Minute})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := g.SearchByText(ctx, "")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestResultsAreCopies(t *testing.T) {
	g := New(recipe.SampleCatalog(), NoLatency)
	first, _ := g.GetByID(context.Background(), 1)
	first.Ingredients[0].Name = "changed"

	again, _ := g.GetByID(context.Background(), 1)
	if again.Ingredients[0].Name != "spaghetti" {
		t.Error("gateway returned shared storage")
	}
}
