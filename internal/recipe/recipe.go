// Package recipe contains the recipe domain model.
package recipe

import (
	"slices"
	"strings"
)

// Recipe is a read-only record resolved by a gateway. JSON names follow the
// upstream recipe API.
type Recipe struct {
	ID             int64        `json:"id"`
	Title          string       `json:"title"`
	Image          string       `json:"image"`
	Servings       int          `json:"servings"`
	ReadyInMinutes int          `json:"readyInMinutes"`
	HealthScore    int          `json:"healthScore"`
	Cuisines       []string     `json:"cuisines,omitempty"`
	Diets          []string     `json:"diets,omitempty"`
	DishTypes      []string     `json:"dishTypes,omitempty"`
	Summary        string       `json:"summary,omitempty"`
	Instructions   string       `json:"instructions,omitempty"`
	Ingredients    []Ingredient `json:"extendedIngredients,omitempty"`
	Nutrition      *Nutrition   `json:"nutrition,omitempty"`
	SourceName     string       `json:"sourceName,omitempty"`
	SourceURL      string       `json:"sourceUrl,omitempty"`
	Vegetarian     bool         `json:"vegetarian"`
	Vegan          bool         `json:"vegan"`
	GlutenFree     bool         `json:"glutenFree"`
	DairyFree      bool         `json:"dairyFree"`
}

type Ingredient struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

type Nutrient struct {
	Name                string   `json:"name"`
	Amount              float64  `json:"amount"`
	Unit                string   `json:"unit"`
	PercentOfDailyNeeds *float64 `json:"percentOfDailyNeeds,omitempty"`
}

var keyNutrients = []string{
	"Calories", "Fat", "Saturated Fat", "Carbohydrates",
	"Protein", "Fiber", "Sugar", "Sodium", "Cholesterol",
}

// HasIngredient reports whether term is a case-insensitive substring of any
// ingredient name.
func (r Recipe) HasIngredient(term string) bool {
	term = strings.ToLower(term)
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), term) {
			return true
		}
	}
	return false
}

// TitleContains reports whether term is a case-insensitive substring of the title.
func (r Recipe) TitleContains(term string) bool {
	return strings.Contains(strings.ToLower(r.Title), strings.ToLower(term))
}

// KeyNutrients returns the headline nutrients in stored order.
func (r Recipe) KeyNutrients() []Nutrient {
	if r.Nutrition == nil {
		return nil
	}
	out := make([]Nutrient, 0, len(keyNutrients))
	for _, n := range r.Nutrition.Nutrients {
		if slices.Contains(keyNutrients, n.Name) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy so callers can never alias catalog storage.
func (r Recipe) Clone() Recipe {
	out := r
	out.Cuisines = slices.Clone(r.Cuisines)
	out.Diets = slices.Clone(r.Diets)
	out.DishTypes = slices.Clone(r.DishTypes)
	out.Ingredients = slices.Clone(r.Ingredients)
	if r.Nutrition != nil {
		n := Nutrition{Nutrients: make([]Nutrient, len(r.Nutrition.Nutrients))}
		for i, nut := range r.Nutrition.Nutrients {
			if nut.PercentOfDailyNeeds != nil {
				pct := *nut.PercentOfDailyNeeds
				nut.PercentOfDailyNeeds = &pct
			}
			n.Nutrients[i] = nut
		}
		out.Nutrition = &n
	}
	return out
}

func containsFold(list []string, want string) bool {
	for _, v := range list {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// HasCuisine reports whether the recipe is tagged with cuisine, ignoring case.
func (r Recipe) HasCuisine(cuisine string) bool {
	return containsFold(r.Cuisines, cuisine)
}

// HasDiet reports whether the recipe is tagged with diet, ignoring case.
func (r Recipe) HasDiet(diet string) bool {
	return containsFold(r.Diets, diet)
}
