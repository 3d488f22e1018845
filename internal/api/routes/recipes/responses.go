package recipes

import (
	"github.com/matt-dz/recipefinder/internal/recipe"
	"github.com/matt-dz/recipefinder/internal/state"
)

// StateResponse mirrors the search state of the profile.
type StateResponse = state.Snapshot

type RecipeResponse struct {
	Recipe       recipe.Recipe     `json:"recipe"`
	KeyNutrients []recipe.Nutrient `json:"keyNutrients"`
	Favorite     bool              `json:"favorite"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
