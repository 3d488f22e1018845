// Package profiles contains handlers for creating profiles.
package profiles

import (
	"log/slog"
	"net/http"

	"github.com/oklog/ulid/v2"

	apiError "github.com/matt-dz/recipefinder/internal/api/error"
	"github.com/matt-dz/recipefinder/internal/api/requestid"
	"github.com/matt-dz/recipefinder/internal/api/token"
	"github.com/matt-dz/recipefinder/internal/env"
	mJson "github.com/matt-dz/recipefinder/internal/json"
)

type CreateProfileResponse struct {
	ProfileID string `json:"profileId"`
	Token     string `json:"token"`
}

// HandleCreateProfile godoc
//
//	@Summary		Create a profile.
//	@Description	Creates an empty profile and returns a token for it. The token is also set as a cookie.
//	@Tags			Profiles
//	@Produce		json
//	@Success		201	{object}	CreateProfileResponse
//	@Failure		500	{object}	apiError.Error
//	@Router			/api/profiles [POST]
func HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ErrorID(ctx)

	profileID := ulid.Make().String()
	env.Logger.DebugContext(ctx, "creating profile", slog.String("profile_id", profileID))
	if _, err := env.Sessions.Get(ctx, profileID); err != nil {
		env.Logger.ErrorContext(ctx, "failed to open profile session", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	profileToken, err := token.NewProfileToken(profileID, env)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create profile token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	http.SetCookie(w, token.NewProfileTokenCookie(profileToken, env))
	resp := CreateProfileResponse{ProfileID: profileID, Token: profileToken}
	if err := mJson.WriteJSON(w, http.StatusCreated, resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
