package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matt-dz/recipefinder/internal/preferences"
	"github.com/matt-dz/recipefinder/internal/session"
)

var (
	historyClear bool
	recentLimit  int
)

func init() {
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(recentCmd)

	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "clear the search history")
	recentCmd.Flags().IntVar(&recentLimit, "limit", preferences.MaxRecentlyViewed, "maximum number of recipes")
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite [id]",
	Short: "Toggle a favorite, or list favorites without an id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(s *session.Session) error {
			if len(args) == 0 {
				recipes, err := s.FavoriteRecipes(cmd.Context())
				if err != nil {
					return err
				}
				if outputJSON {
					return writeJSON(cmd.OutOrStdout(), recipes)
				}
				return printRecipes(cmd.OutOrStdout(), recipes)
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid recipe id %q", args[0])
			}
			added, err := s.Favorites.Toggle(cmd.Context(), id)
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"recipeId": id, "favorite": added})
			}
			if added {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added recipe %d to favorites.\n", id)
			} else {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed recipe %d from favorites.\n", id)
			}
			return err
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the search history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(s *session.Session) error {
			if historyClear {
				return s.Preferences.ClearSearchHistory(cmd.Context())
			}
			history := s.Preferences.SearchHistory()
			if outputJSON {
				if history == nil {
					history = []string{}
				}
				return writeJSON(cmd.OutOrStdout(), history)
			}
			for _, q := range history {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), q); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently viewed recipes, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(s *session.Session) error {
			recipes, err := s.RecentRecipes(cmd.Context(), recentLimit)
			if err != nil {
				return err
			}
			if outputJSON {
				return writeJSON(cmd.OutOrStdout(), recipes)
			}
			return printRecipes(cmd.OutOrStdout(), recipes)
		})
	},
}
