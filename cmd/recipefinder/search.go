package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matt-dz/recipefinder/internal/filter"
	"github.com/matt-dz/recipefinder/internal/gateway"
	"github.com/matt-dz/recipefinder/internal/recipe"
	"github.com/matt-dz/recipefinder/internal/session"
	"github.com/matt-dz/recipefinder/internal/state"
)

var (
	// filter command flags
	fCuisines []string
	fDiets    []string
	fMaxReady int
	fInclude  []string
	fExclude  []string
)

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(viewCmd)

	filterCmd.Flags().StringSliceVar(&fCuisines, "cuisine", nil,
		"cuisine to allow, repeatable ("+strings.Join(filter.Cuisines, ", ")+")")
	filterCmd.Flags().StringSliceVar(&fDiets, "diet", nil,
		"diet to allow, repeatable ("+strings.Join(filter.Diets, ", ")+")")
	filterCmd.Flags().IntVar(&fMaxReady, "max-ready", 0,
		fmt.Sprintf("maximum ready time in minutes (%d-%d)", filter.MinReadyMinutes, filter.MaxReadyMinutes))
	filterCmd.Flags().StringSliceVar(&fInclude, "include", nil, "ingredient that must be present, repeatable")
	filterCmd.Flags().StringSliceVar(&fExclude, "exclude", nil, "ingredient that must be absent, repeatable")
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search recipes",
	Long: `Search recipes. A comma-separated list or a single word is treated as an
ingredient search, anything else as a free-text search.

Examples:
  recipefinder search chicken
  recipefinder search "tomato, basil"
  recipefinder search "mac and cheese"`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return withSession(cmd.Context(), func(s *session.Session) error {
			return printSnapshot(cmd.OutOrStdout(), s.State.Search(cmd.Context(), query))
		})
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter [query]",
	Short: "Search with filters applied",
	Long: `Run a query and narrow the results with filters.

Examples:
  recipefinder filter chicken --cuisine Indian
  recipefinder filter pasta --diet vegetarian --max-ready 30 --exclude bacon`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := filterDescriptor()
		if err := d.Validate(); err != nil {
			return err
		}
		query := strings.Join(args, " ")
		return withSession(cmd.Context(), func(s *session.Session) error {
			if query != "" {
				if snap := s.State.Search(cmd.Context(), query); snap.Status == state.StatusError {
					return printSnapshot(cmd.OutOrStdout(), snap)
				}
			}
			snap, err := s.State.ApplyFilters(cmd.Context(), d)
			if err != nil {
				return err
			}
			return printSnapshot(cmd.OutOrStdout(), snap)
		})
	},
}

var viewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show a recipe and record it as recently viewed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid recipe id %q", args[0])
		}
		return withSession(cmd.Context(), func(s *session.Session) error {
			r, err := s.ViewRecipe(cmd.Context(), id)
			if errors.Is(err, gateway.ErrNotFound) {
				return fmt.Errorf("recipe %d not found", id)
			} else if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			return printRecipe(cmd.OutOrStdout(), r, s.Favorites.IsFavorite(id))
		})
	},
}

func printSnapshot(w io.Writer, snap state.Snapshot) error {
	if outputJSON {
		return writeJSON(w, snap)
	}
	if snap.Status == state.StatusError {
		_, err := fmt.Fprintln(w, snap.Error)
		return err
	}
	return printRecipes(w, snap.Recipes)
}

func printRecipes(w io.Writer, recipes []recipe.Recipe) error {
	if len(recipes) == 0 {
		_, err := fmt.Fprintln(w, "No recipes found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tREADY\tCUISINES")
	for _, r := range recipes {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d min\t%s\n", r.ID, r.Title, r.ReadyInMinutes, strings.Join(r.Cuisines, ", "))
	}
	return tw.Flush()
}

func printRecipe(w io.Writer, r recipe.Recipe, favorite bool) error {
	star := ""
	if favorite {
		star = " *"
	}
	_, _ = fmt.Fprintf(w, "%s%s\n", r.Title, star)
	_, _ = fmt.Fprintf(w, "Ready in %d min, serves %d, health score %d\n", r.ReadyInMinutes, r.Servings, r.HealthScore)
	if len(r.Diets) > 0 {
		_, _ = fmt.Fprintf(w, "Diets: %s\n", strings.Join(r.Diets, ", "))
	}

	if len(r.Ingredients) > 0 {
		_, _ = fmt.Fprintln(w, "\nIngredients:")
		for _, ing := range r.Ingredients {
			_, _ = fmt.Fprintf(w, "  - %g %s %s\n", ing.Amount, ing.Unit, ing.Name)
		}
	}

	if nutrients := r.KeyNutrients(); len(nutrients) > 0 {
		_, _ = fmt.Fprintln(w, "\nNutrition:")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, n := range nutrients {
			_, _ = fmt.Fprintf(tw, "  %s\t%g %s\n", n.Name, n.Amount, n.Unit)
		}
		_ = tw.Flush()
	}

	if r.Instructions != "" {
		_, _ = fmt.Fprintf(w, "\nInstructions:\n%s\n", r.Instructions)
	}
	_, err := fmt.Fprintf(w, "\nSource: %s\n", r.SourceURL)
	return err
}

// filterDescriptor builds the descriptor for the filter command's flags.
func filterDescriptor() filter.Descriptor {
	d := filter.Descriptor{
		Cuisines:        fCuisines,
		Diets:           fDiets,
		MaxReadyMinutes: fMaxReady,
	}
	d.SetIngredients(fInclude, fExclude)
	return d
}
