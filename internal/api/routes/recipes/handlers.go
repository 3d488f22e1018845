// Package recipes contains handlers for the recipes endpoint.
package recipes

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	apiError "github.com/matt-dz/recipefinder/internal/api/error"
	"github.com/matt-dz/recipefinder/internal/api/requestid"
	"github.com/matt-dz/recipefinder/internal/env"
	"github.com/matt-dz/recipefinder/internal/filter"
	"github.com/matt-dz/recipefinder/internal/gateway"
	mJson "github.com/matt-dz/recipefinder/internal/json"
	"github.com/matt-dz/recipefinder/internal/recipe"
	"github.com/matt-dz/recipefinder/internal/search"
	"github.com/matt-dz/recipefinder/internal/session"
)

const maxBodySize = 64 << 10

// HandleSearch godoc
//
//	@Summary		Search recipes.
//	@Description	Classifies the query as an ingredient or text search and runs it.
//	@Description	A failed search is reported in the returned state, not as an HTTP error.
//	@Tags			Recipes
//	@Produce		json
//	@Param			q	query		string	false	"Search query"
//	@Success		200	{object}	StateResponse
//	@Failure		400	{object}	apiError.Error
//	@Failure		401	{object}	apiError.Error
//	@Security		ProfileToken
//	@Router			/api/recipes/search [GET]
func HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ErrorID(ctx)
	sess, err := session.FromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract session from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	request := SearchRequest{Query: r.URL.Query().Get("q")}
	if err := newValidator().Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "query too long", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "searching recipes", slog.String("query", request.Query))
	snapshot := sess.State.Search(ctx, request.Query)
	if err := mJson.WriteJSON(w, http.StatusOK, snapshot); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleApplyFilters godoc
//
//	@Summary		Apply filters to the last query.
//	@Tags			Recipes
//	@Accept			json
//	@Produce		json
//	@Param			filters	body		ApplyFiltersRequest	true	"Filters"
//	@Success		200		{object}	StateResponse
//	@Failure		400		{object}	apiError.Error
//	@Failure		422		{object}	apiError.Error	"Invalid filter values"
//	@Security		ProfileToken
//	@Router			/api/recipes/filters [POST]
func HandleApplyFilters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ErrorID(ctx)
	sess, err := session.FromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract session from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	var request ApplyFiltersRequest
	if err := mJson.DecodeStrict(&request, http.MaxBytesReader(w, r.Body, maxBodySize)); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "malformed filters", requestID)
		return
	}
	request.normalize()

	snapshot, err := sess.State.ApplyFilters(ctx, request.Descriptor)
	if errors.Is(err, filter.ErrInvalid) {
		env.Logger.ErrorContext(ctx, "invalid filters", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidFilters, err.Error(), requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to apply filters", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, snapshot); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleGetState godoc
//
//	@Summary	Current search state.
//	@Tags		Recipes
//	@Produce	json
//	@Success	200	{object}	StateResponse
//	@Security	ProfileToken
//	@Router		/api/recipes/state [GET]
func HandleGetState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ErrorID(ctx)
	sess, err := session.FromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract session from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := mJson.WriteJSON(w, http.StatusOK, sess.State.Snapshot()); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleGetRecipe godoc
//
//	@Summary		Get a recipe.
//	@Description	Returns the recipe details and records it as recently viewed.
//	@Tags			Recipes
//	@Produce		json
//	@Param			id	path		int	true	"Recipe ID"
//	@Success		200	{object}	RecipeResponse
//	@Failure		400	{object}	apiError.Error
//	@Failure		404	{object}	apiError.Error
//	@Failure		502	{object}	apiError.Error
//	@Security		ProfileToken
//	@Router			/api/recipes/{id} [GET]
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ErrorID(ctx)
	sess, err := session.FromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract session from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	request := GetRecipeRequest{ID: recipeID(chi.URLParam(r, "id"))}
	if err := newValidator().Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate request", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidRecipeID, "invalid recipe id", requestID)
		return
	}

	found, err := sess.ViewRecipe(ctx, request.ID.Int64())
	if errors.Is(err, gateway.ErrNotFound) {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.UpstreamUnavailable, "recipe service unavailable", requestID)
		return
	}

	keyNutrients := found.KeyNutrients()
	if keyNutrients == nil {
		keyNutrients = []recipe.Nutrient{}
	}
	resp := RecipeResponse{
		Recipe:       found,
		KeyNutrients: keyNutrients,
		Favorite:     sess.Favorites.IsFavorite(found.ID),
	}
	if err := mJson.WriteJSON(w, http.StatusOK, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleSuggestions godoc
//
//	@Summary	Autocomplete suggestions for a partial query.
//	@Tags		Recipes
//	@Produce	json
//	@Param		q	query		string	false	"Partial query"
//	@Success	200	{object}	SuggestionsResponse
//	@Security	ProfileToken
//	@Router		/api/recipes/suggestions [GET]
func HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ErrorID(ctx)
	sess, err := session.FromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract session from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	q := r.URL.Query().Get("q")
	if len(q) > maxSearchQuery {
		q = q[:maxSearchQuery]
	}
	suggestions := search.Suggest(strings.TrimSpace(q), sess.Preferences.SearchHistory())
	if suggestions == nil {
		suggestions = []string{}
	}
	if err := mJson.WriteJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: suggestions}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
