// Package jwt provides functions for generating and validating JWTs
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTParams struct {
	ProfileID string
}

const (
	JWTDuration = 30 * 24 * time.Hour
	DefaultKID  = "1"
)

var ErrMissingSubject = errors.New("token has no subject")

func GenerateJWT(params JWTParams, secret []byte, version string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   params.ProfileID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(JWTDuration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = version

	signedKey, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signedKey, nil
}

func ValidateJWT(rawToken, version string, secret []byte) (*jwt.Token, error) {
	parserFunc := func(token *jwt.Token) (any, error) {
		kidVal, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("missing/invalid kid value")
		}

		if kidVal != version {
			return nil, fmt.Errorf("verifying KID value, value=%q", kidVal)
		}

		return secret, nil
	}

	token, err := jwt.ParseWithClaims(rawToken, &jwt.RegisteredClaims{}, parserFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	return token, nil
}

// ProfileID validates rawToken and returns its subject.
func ProfileID(rawToken, version string, secret []byte) (string, error) {
	token, err := ValidateJWT(rawToken, version, secret)
	if err != nil {
		return "", err
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("reading subject: %w", err)
	}
	if sub == "" {
		return "", ErrMissingSubject
	}
	return sub, nil
}
