// Package middleware contains middleware functions for the API
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	apiError "github.com/matt-dz/recipefinder/internal/api/error"
	"github.com/matt-dz/recipefinder/internal/api/requestid"
	"github.com/matt-dz/recipefinder/internal/api/token"
	"github.com/matt-dz/recipefinder/internal/env"
	"github.com/matt-dz/recipefinder/internal/log"
	"github.com/matt-dz/recipefinder/internal/session"
)

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		Level:         slog.LevelInfo,
		Schema:        httplog.SchemaECS,
		RecoverPanics: true,
		Skip: func(r *http.Request, respStatus int) bool {
			return r.URL.Path == "/metrics"
		},
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != 0 {
				return []slog.Attr{slog.Uint64("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Now()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.Uint64("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// AddCors adds the necessary CORS headers to the response.
func AddCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())
		origin := r.Header.Get("Origin")
		hostOrigin := e.Config.HostOrigin

		// Dev mode reflects any origin, prod only allows the host origin
		var allowedOrigin string
		if e.IsProd() {
			allowedOrigin = hostOrigin
		} else if origin != "" {
			allowedOrigin = origin
		}

		if allowedOrigin == "" && hostOrigin != "" {
			allowedOrigin = hostOrigin
		}

		if allowedOrigin == "" {
			e.Logger.WarnContext(r.Context(),
				"HOST_ORIGIN not set and no valid origin found; Access-Control-Allow-Origin will be empty")
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireProfile validates the profile token and loads the matching session
// into the request context.
func RequireProfile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		env := env.EnvFromCtx(ctx)
		requestID := requestid.ErrorID(ctx)

		raw, err := token.FromRequest(r, env)
		if err != nil {
			env.Logger.DebugContext(ctx, "no profile token on request")
			_ = apiError.EncodeError(w, apiError.InvalidProfileToken, "missing profile token", requestID)
			return
		}

		profileID, err := token.ValidateProfileToken(raw, env)
		if errors.Is(err, token.ErrNoSecret) {
			env.Logger.ErrorContext(ctx, "app secret not configured")
			_ = apiError.EncodeInternalError(w, requestID)
			return
		} else if errors.Is(err, jwt.ErrTokenExpired) {
			env.Logger.ErrorContext(ctx, "profile token expired", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.ExpiredProfileToken, "profile token expired", requestID)
			return
		} else if err != nil {
			env.Logger.ErrorContext(ctx, "invalid profile token", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidProfileToken, "invalid profile token", requestID)
			return
		}

		ctx = log.AppendCtx(ctx, slog.String("profile_id", profileID))
		sess, err := env.Sessions.Get(ctx, profileID)
		if errors.Is(err, session.ErrInvalidProfile) {
			env.Logger.ErrorContext(ctx, "token carries an invalid profile id", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidProfileToken, "invalid profile token", requestID)
			return
		} else if err != nil {
			env.Logger.ErrorContext(ctx, "failed to open session", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}

		ctx = token.ProfileIDWithCtx(ctx, profileID)
		ctx = session.WithCtx(ctx, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
