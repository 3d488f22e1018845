package session

import (
	"context"
	"errors"
)

var ErrNoSession = errors.New("no session in context")

type sessionKeyType struct{}

var sessionKey sessionKeyType

func WithCtx(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

func FromCtx(ctx context.Context) (*Session, error) {
	if s, ok := ctx.Value(sessionKey).(*Session); ok && s != nil {
		return s, nil
	}
	return nil, ErrNoSession
}
