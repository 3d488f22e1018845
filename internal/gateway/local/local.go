// Package local serves recipes from an in-process catalog with simulated
// network latency.
package local

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/matt-dz/recipefinder/internal/filter"
	"github.com/matt-dz/recipefinder/internal/gateway"
	"github.com/matt-dz/recipefinder/internal/recipe"
)

// Latency is the artificial delay applied per operation.
type Latency struct {
	Text        time.Duration
	Ingredients time.Duration
	ByID        time.Duration
	ByIDs       time.Duration
}

var (
	DefaultLatency = Latency{
		Text:        800 * time.Millisecond,
		Ingredients: 800 * time.Millisecond,
		ByID:        500 * time.Millisecond,
		ByIDs:       700 * time.Millisecond,
	}
	NoLatency = Latency{}
)

type Gateway struct {
	catalog []recipe.Recipe
	latency Latency
}

var _ gateway.Gateway = (*Gateway)(nil)

// New copies catalog so later edits by the caller are not observed.
func New(catalog []recipe.Recipe, latency Latency) *Gateway {
	c := make([]recipe.Recipe, len(catalog))
	for i, r := range catalog {
		c[i] = r.Clone()
	}
	return &Gateway{catalog: c, latency: latency}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *Gateway) collect(keep func(recipe.Recipe) bool) []recipe.Recipe {
	out := make([]recipe.Recipe, 0, len(g.catalog))
	for _, r := range g.catalog {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

func (g *Gateway) SearchByText(ctx context.Context, query string) ([]recipe.Recipe, error) {
	if err := wait(ctx, g.latency.Text); err != nil {
		return nil, err
	}
	base, d := filter.Parse(query)
	base = strings.TrimSpace(base)
	return g.collect(func(r recipe.Recipe) bool {
		return (base == "" || r.TitleContains(base)) && matches(r, d)
	}), nil
}

func matches(r recipe.Recipe, d filter.Descriptor) bool {
	if len(d.Cuisines) > 0 && !slices.ContainsFunc(d.Cuisines, r.HasCuisine) {
		return false
	}
	if len(d.Diets) > 0 && !slices.ContainsFunc(d.Diets, r.HasDiet) {
		return false
	}
	if d.MaxReadyMinutes > 0 && r.ReadyInMinutes > d.MaxReadyMinutes {
		return false
	}
	for _, term := range d.IncludeIngredients {
		if !r.HasIngredient(term) {
			return false
		}
	}
	return !slices.ContainsFunc(d.ExcludeIngredients, r.HasIngredient)
}

func (g *Gateway) SearchByIngredients(ctx context.Context, list string) ([]recipe.Recipe, error) {
	if err := wait(ctx, g.latency.Ingredients); err != nil {
		return nil, err
	}
	var terms []string
	for t := range strings.SplitSeq(list, ",") {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		return g.collect(func(recipe.Recipe) bool { return true }), nil
	}
	return g.collect(func(r recipe.Recipe) bool {
		for _, t := range terms {
			if r.TitleContains(t) || r.HasIngredient(t) {
				return true
			}
		}
		return false
	}), nil
}

func (g *Gateway) GetByID(ctx context.Context, id int64) (recipe.Recipe, error) {
	if err := wait(ctx, g.latency.ByID); err != nil {
		return recipe.Recipe{}, err
	}
	for _, r := range g.catalog {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return recipe.Recipe{}, fmt.Errorf("recipe %d: %w", id, gateway.ErrNotFound)
}

func (g *Gateway) GetByIDs(ctx context.Context, ids []int64) ([]recipe.Recipe, error) {
	if err := wait(ctx, g.latency.ByIDs); err != nil {
		return nil, err
	}
	return g.collect(func(r recipe.Recipe) bool {
		return slices.Contains(ids, r.ID)
	}), nil
}
