// Package token contains utilities for profile tokens.
package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/matt-dz/recipefinder/internal/env"
	"github.com/matt-dz/recipefinder/internal/jwt"
)

const profileTokenLifetime = int(jwt.JWTDuration / time.Second)

var (
	ErrNoToken  = errors.New("no profile token")
	ErrNoSecret = errors.New("app secret not configured")
)

type profileIDKeyType struct{}

var profileIDKey profileIDKeyType

func ProfileTokenName(env *env.Env) string {
	if env.IsProd() {
		return "__Host-Http-profile"
	}
	return "profile"
}

func secret(env *env.Env) ([]byte, string, error) {
	s := env.Config.AppSecret
	if s.Value == nil || *s.Value == "" {
		return nil, "", ErrNoSecret
	}
	version := s.Version
	if version == "" {
		version = jwt.DefaultKID
	}
	return []byte(*s.Value), version, nil
}

func NewProfileToken(profileID string, env *env.Env) (string, error) {
	key, version, err := secret(env)
	if err != nil {
		return "", err
	}
	token, err := jwt.GenerateJWT(jwt.JWTParams{ProfileID: profileID}, key, version)
	if err != nil {
		return "", fmt.Errorf("generating profile token: %w", err)
	}
	return token, nil
}

func NewProfileTokenCookie(token string, env *env.Env) *http.Cookie {
	return &http.Cookie{
		Name:     ProfileTokenName(env),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   profileTokenLifetime,
		SameSite: http.SameSiteLaxMode,
		Secure:   env.IsProd(),
	}
}

// FromRequest returns the raw profile token, preferring a bearer
// Authorization header over the cookie.
func FromRequest(r *http.Request, env *env.Env) (string, error) {
	if auth := r.Header.Get("Authorization"); auth != "" {
		raw, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			return "", ErrNoToken
		}
		return strings.TrimSpace(raw), nil
	}
	cookie, err := r.Cookie(ProfileTokenName(env))
	if err != nil {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}

// ValidateProfileToken returns the profile id carried by raw.
func ValidateProfileToken(raw string, env *env.Env) (string, error) {
	key, version, err := secret(env)
	if err != nil {
		return "", err
	}
	return jwt.ProfileID(raw, version, key)
}

func ProfileIDWithCtx(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, profileIDKey, profileID)
}

func ProfileIDFromCtx(ctx context.Context) (string, error) {
	if id, ok := ctx.Value(profileIDKey).(string); ok {
		return id, nil
	}
	return "", errors.New("profile id not found in context")
}
