package recipes

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/matt-dz/recipefinder/internal/filter"
)

const maxSearchQuery = 200

type recipeID string

func (r recipeID) Validate() error {
	v, err := strconv.ParseInt(string(r), 10, 64)
	if err != nil {
		return errors.New("expected an integer")
	}
	if v <= 0 {
		return errors.New("recipe id should be positive")
	}
	return nil
}

func (r recipeID) Int64() int64 {
	v, _ := strconv.ParseInt(string(r), 10, 64)
	return v
}

type GetRecipeRequest struct {
	ID recipeID `validate:"validateFn"`
}

type SearchRequest struct {
	Query string `validate:"max=200"`
}

// ApplyFiltersRequest is the filter set to apply to the last query.
type ApplyFiltersRequest struct {
	filter.Descriptor
}

func (a *ApplyFiltersRequest) normalize() {
	a.SetIngredients(a.IncludeIngredients, a.ExcludeIngredients)
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}
