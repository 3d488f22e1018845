// Package favorites contains handlers for the favorites endpoint.
package favorites

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apiError "github.com/matt-dz/recipefinder/internal/api/error"
	"github.com/matt-dz/recipefinder/internal/api/requestid"
	"github.com/matt-dz/recipefinder/internal/env"
	mJson "github.com/matt-dz/recipefinder/internal/json"
	"github.com/matt-dz/recipefinder/internal/recipe"
	"github.com/matt-dz/recipefinder/internal/session"
)

type ListFavoritesResponse struct {
	Recipes []recipe.Recipe `json:"recipes"`
}

type ToggleFavoriteResponse struct {
	RecipeID int64 `json:"recipeId"`
	Favorite bool  `json:"favorite"`
}

var errInvalidID = errors.New("recipe id should be a positive integer")

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// HandleListFavorites godoc
//
//	@Summary	List favorite recipes.
//	@Tags		Favorites
//	@Produce	json
//	@Success	200	{object}	ListFavoritesResponse
//	@Failure	502	{object}	apiError.Error
//	@Security	ProfileToken
//	@Router		/api/favorites [GET]
func HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ErrorID(ctx)
	sess, err := session.FromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract session from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	recipes, err := sess.FavoriteRecipes(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to resolve favorite recipes", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.UpstreamUnavailable, "recipe service unavailable", requestID)
		return
	}
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}

	if err := mJson.WriteJSON(w, http.StatusOK, ListFavoritesResponse{Recipes: recipes}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleToggleFavorite godoc
//
//	@Summary		Toggle a favorite.
//	@Description	Adds the recipe to the favorites if absent, removes it otherwise.
//	@Tags			Favorites
//	@Produce		json
//	@Param			id	path		int	true	"Recipe ID"
//	@Success		200	{object}	ToggleFavoriteResponse
//	@Failure		400	{object}	apiError.Error
//	@Failure		503	{object}	apiError.Error	"Preferences could not be saved"
//	@Security		ProfileToken
//	@Router			/api/favorites/{id} [PUT]
func HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ErrorID(ctx)
	sess, err := session.FromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract session from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		_ = apiError.EncodeError(w, apiError.InvalidRecipeID, err.Error(), requestID)
		return
	}

	favorite, err := sess.Favorites.Toggle(ctx, id)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to toggle favorite", slog.Any("error", err), slog.Int64("recipe_id", id))
		_ = apiError.EncodeError(w, apiError.PreferencesNotWritten, "favorites could not be saved", requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, ToggleFavoriteResponse{RecipeID: id, Favorite: favorite}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
