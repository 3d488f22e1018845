// Package gateway defines the contract every recipe data source implements.
package gateway

//go:generate mockgen -destination=gatewaymock/gateway.go -package=gatewaymock . Gateway

import (
	"context"
	"errors"

	"github.com/matt-dz/recipefinder/internal/recipe"
)

var (
	// ErrNotFound is returned by GetByID for an id the source does not know.
	ErrNotFound = errors.New("recipe not found")
	// ErrTransport wraps every failure to reach or decode the source.
	ErrTransport = errors.New("recipe source unavailable")
)

type Gateway interface {
	// SearchByText returns recipes matching a free-text query. The query may
	// carry filter segments built by filter.Compose.
	SearchByText(ctx context.Context, query string) ([]recipe.Recipe, error)
	// SearchByIngredients returns recipes matching any term of a
	// comma-separated ingredient list.
	SearchByIngredients(ctx context.Context, list string) ([]recipe.Recipe, error)
	GetByID(ctx context.Context, id int64) (recipe.Recipe, error)
	// GetByIDs returns the known recipes among ids. Unknown ids are dropped.
	GetByIDs(ctx context.Context, ids []int64) ([]recipe.Recipe, error)
}
