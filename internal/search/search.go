// Package search turns raw user input into query plans and runs them against
// a gateway.
package search

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/matt-dz/recipefinder/internal/filter"
	"github.com/matt-dz/recipefinder/internal/gateway"
	"github.com/matt-dz/recipefinder/internal/recipe"
)

type Kind int

const (
	KindText Kind = iota
	KindIngredients
)

func (k Kind) String() string {
	switch k {
	case KindIngredients:
		return "ingredients"
	default:
		return "text"
	}
}

const maxSuggestions = 6

var (
	singleWord = regexp.MustCompile(`^[a-zA-Z]+$`)

	commonIngredients = []string{
		"chicken", "beef", "pasta", "rice", "potato", "tomato", "onion",
		"garlic", "cheese", "egg", "milk", "carrot", "spinach", "broccoli",
	}
)

type Plan struct {
	Kind  Kind
	Query string
}

// Terms splits an ingredient query into lowercase terms.
func (p Plan) Terms() []string {
	var out []string
	for t := range strings.SplitSeq(p.Query, ",") {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ResolveQuery classifies raw input. A comma anywhere, or a single alphabetic
// word, means an ingredient search. Everything else, including blank input,
// is a text search.
func ResolveQuery(raw string) Plan {
	q := strings.TrimSpace(raw)
	if strings.Contains(q, ",") || singleWord.MatchString(q) {
		return Plan{Kind: KindIngredients, Query: q}
	}
	return Plan{Kind: KindText, Query: q}
}

// ApplyFilters builds a text plan carrying d on top of lastQuery. The
// classification heuristic is never applied to filtered queries.
func ApplyFilters(d filter.Descriptor, lastQuery string) (Plan, error) {
	if err := d.Validate(); err != nil {
		return Plan{}, err
	}
	return Plan{Kind: KindText, Query: filter.Compose(lastQuery, d)}, nil
}

// Execute dispatches plan to the matching gateway operation and returns its
// results unchanged.
func Execute(ctx context.Context, g gateway.Gateway, plan Plan) ([]recipe.Recipe, error) {
	var (
		recipes []recipe.Recipe
		err     error
	)
	switch plan.Kind {
	case KindIngredients:
		recipes, err = g.SearchByIngredients(ctx, plan.Query)
	default:
		recipes, err = g.SearchByText(ctx, plan.Query)
	}
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", plan.Kind, err)
	}
	return recipes, nil
}

// Suggest offers completions for inputs longer than one character: matching
// history entries first, then common ingredients.
func Suggest(input string, history []string) []string {
	if len(input) <= 1 {
		return nil
	}
	needle := strings.ToLower(input)
	seen := make(map[string]struct{})
	out := make([]string, 0, maxSuggestions)
	add := func(candidates []string) {
		for _, c := range candidates {
			if len(out) == maxSuggestions {
				return
			}
			if !strings.Contains(strings.ToLower(c), needle) {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	add(history)
	add(commonIngredients)
	return out
}
