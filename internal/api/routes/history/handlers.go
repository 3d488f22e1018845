// Package history contains handlers for search history and recently viewed
// recipes.
package history

import (
	"log/slog"
	"net/http"
	"strconv"

	apiError "github.com/matt-dz/recipefinder/internal/api/error"
	"github.com/matt-dz/recipefinder/internal/api/requestid"
	"github.com/matt-dz/recipefinder/internal/env"
	mJson "github.com/matt-dz/recipefinder/internal/json"
	"github.com/matt-dz/recipefinder/internal/preferences"
	"github.com/matt-dz/recipefinder/internal/recipe"
	"github.com/matt-dz/recipefinder/internal/session"
)

type SearchHistoryResponse struct {
	History []string `json:"history"`
}

type RecentlyViewedResponse struct {
	Recipes []recipe.Recipe `json:"recipes"`
}

// HandleGetSearchHistory godoc
//
//	@Summary	Recent search queries, newest first.
//	@Tags		History
//	@Produce	json
//	@Success	200	{object}	SearchHistoryResponse
//	@Security	ProfileToken
//	@Router		/api/history [GET]
func HandleGetSearchHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ErrorID(ctx)
	sess, err := session.FromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract session from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	history := sess.Preferences.SearchHistory()
	if history == nil {
		history = []string{}
	}
	if err := mJson.WriteJSON(w, http.StatusOK, SearchHistoryResponse{History: history}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleClearSearchHistory godoc
//
//	@Summary	Clear the search history.
//	@Tags		History
//	@Success	204
//	@Failure	503	{object}	apiError.Error
//	@Security	ProfileToken
//	@Router		/api/history [DELETE]
func HandleClearSearchHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ErrorID(ctx)
	sess, err := session.FromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract session from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	if err := sess.Preferences.ClearSearchHistory(ctx); err != nil {
		env.Logger.ErrorContext(ctx, "failed to clear search history", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.PreferencesNotWritten, "search history could not be cleared", requestID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRecentlyViewed godoc
//
//	@Summary	Recently viewed recipes, newest first.
//	@Tags		History
//	@Produce	json
//	@Param		limit	query		int	false	"Maximum number of recipes"
//	@Success	200		{object}	RecentlyViewedResponse
//	@Failure	400		{object}	apiError.Error
//	@Failure	502		{object}	apiError.Error
//	@Security	ProfileToken
//	@Router		/api/recently-viewed [GET]
func HandleRecentlyViewed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ErrorID(ctx)
	sess, err := session.FromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract session from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	limit := preferences.MaxRecentlyViewed
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			_ = apiError.EncodeError(w, apiError.BadRequest, "limit should be a positive integer", requestID)
			return
		}
	}

	recipes, err := sess.RecentRecipes(ctx, limit)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to resolve recently viewed recipes", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.UpstreamUnavailable, "recipe service unavailable", requestID)
		return
	}
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}

	if err := mJson.WriteJSON(w, http.StatusOK, RecentlyViewedResponse{Recipes: recipes}); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
