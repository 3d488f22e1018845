// Package filter contains the filter descriptor and the composite query codec
// used to carry filters through a text search.
package filter

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MinReadyMinutes     = 15
	MaxReadyMinutes     = 120
	DefaultReadyMinutes = 60
)

const (
	keyCuisine            = "cuisine"
	keyDiet               = "diet"
	keyMaxReadyTime       = "maxReadyTime"
	keyIncludeIngredients = "includeIngredients"
	keyExcludeIngredients = "excludeIngredients"
)

var (
	Cuisines = []string{
		"Italian", "American", "Mexican", "Asian", "Mediterranean",
		"Indian", "French", "Thai", "Greek", "Spanish",
	}
	Diets = []string{
		"Vegetarian", "Vegan", "Gluten Free", "Ketogenic",
		"Pescetarian", "Paleo", "Low FODMAP", "Whole30",
	}
)

var ErrInvalid = errors.New("invalid filters")

// Descriptor is the set of active filters. A zero MaxReadyMinutes means the
// ready-time filter is off.
type Descriptor struct {
	Cuisines           []string `json:"cuisines" validate:"dive,cuisine"`
	Diets              []string `json:"diets" validate:"dive,diet"`
	MaxReadyMinutes    int      `json:"readyInMinutes" validate:"omitempty,min=15,max=120"`
	IncludeIngredients []string `json:"includeIngredients" validate:"dive,required"`
	ExcludeIngredients []string `json:"excludeIngredients" validate:"dive,required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("cuisine", oneOfFold(Cuisines))
	_ = v.RegisterValidation("diet", oneOfFold(Diets))
	return v
}

func oneOfFold(options []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return canonical(options, fl.Field().String()) != ""
	}
}

func canonical(options []string, v string) string {
	for _, o := range options {
		if strings.EqualFold(o, v) {
			return o
		}
	}
	return ""
}

// Validate reports the first invalid field wrapped in ErrInvalid.
func (d Descriptor) Validate() error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%w: %s failed %q on %v", ErrInvalid, e.Namespace(), e.Tag(), e.Value())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func (d Descriptor) IsZero() bool {
	return len(d.Cuisines) == 0 && len(d.Diets) == 0 && d.MaxReadyMinutes == 0 &&
		len(d.IncludeIngredients) == 0 && len(d.ExcludeIngredients) == 0
}

func toggle(list []string, v string) []string {
	if i := slices.Index(list, v); i >= 0 {
		return slices.Delete(slices.Clone(list), i, i+1)
	}
	return append(slices.Clone(list), v)
}

func (d *Descriptor) ToggleCuisine(cuisine string) {
	d.Cuisines = toggle(d.Cuisines, cuisine)
}

func (d *Descriptor) ToggleDiet(diet string) {
	d.Diets = toggle(d.Diets, diet)
}

func addTerm(list []string, term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || slices.Contains(list, term) {
		return list
	}
	return append(slices.Clone(list), term)
}

func removeTerm(list []string, term string) []string {
	return slices.DeleteFunc(slices.Clone(list), func(v string) bool { return v == term })
}

// Include adds a required ingredient. Terms are trimmed and lowercased; blank
// and duplicate terms are ignored.
func (d *Descriptor) Include(term string) {
	d.IncludeIngredients = addTerm(d.IncludeIngredients, term)
}

// Exclude adds an excluded ingredient with the same normalization as Include.
func (d *Descriptor) Exclude(term string) {
	d.ExcludeIngredients = addTerm(d.ExcludeIngredients, term)
}

// SetIngredients replaces both ingredient lists, adding each term through
// Include or Exclude.
func (d *Descriptor) SetIngredients(include, exclude []string) {
	d.IncludeIngredients, d.ExcludeIngredients = nil, nil
	for _, term := range include {
		d.Include(term)
	}
	for _, term := range exclude {
		d.Exclude(term)
	}
}

func (d *Descriptor) RemoveInclude(term string) {
	d.IncludeIngredients = removeTerm(d.IncludeIngredients, term)
}

func (d *Descriptor) RemoveExclude(term string) {
	d.ExcludeIngredients = removeTerm(d.ExcludeIngredients, term)
}

// Compose appends each active filter to base as an "&key=v1,v2" segment.
// Values are not escaped.
func Compose(base string, d Descriptor) string {
	var b strings.Builder
	b.WriteString(base)
	segment := func(key string, values []string) {
		if len(values) == 0 {
			return
		}
		b.WriteString("&" + key + "=" + strings.Join(values, ","))
	}
	segment(keyCuisine, d.Cuisines)
	segment(keyDiet, d.Diets)
	if d.MaxReadyMinutes != 0 {
		segment(keyMaxReadyTime, []string{strconv.Itoa(d.MaxReadyMinutes)})
	}
	segment(keyIncludeIngredients, d.IncludeIngredients)
	segment(keyExcludeIngredients, d.ExcludeIngredients)
	return b.String()
}

func splitList(v string) []string {
	var out []string
	for p := range strings.SplitSeq(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Parse splits a composite query back into its base text and filters.
// Segments that are not a known "key=value" pair stay part of the base, so a
// query such as "mac & cheese" survives intact.
func Parse(composite string) (string, Descriptor) {
	parts := strings.Split(composite, "&")
	base := []string{parts[0]}
	var d Descriptor
	for _, part := range parts[1:] {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			base = append(base, part)
			continue
		}
		switch key {
		case keyCuisine:
			d.Cuisines = append(d.Cuisines, splitList(value)...)
		case keyDiet:
			d.Diets = append(d.Diets, splitList(value)...)
		case keyMaxReadyTime:
			if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
				d.MaxReadyMinutes = n
			}
		case keyIncludeIngredients:
			d.IncludeIngredients = append(d.IncludeIngredients, splitList(value)...)
		case keyExcludeIngredients:
			d.ExcludeIngredients = append(d.ExcludeIngredients, splitList(value)...)
		default:
			base = append(base, part)
		}
	}
	return strings.Join(base, "&"), d
}
