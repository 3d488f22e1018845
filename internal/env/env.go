// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matt-dz/recipefinder/internal/config"
	"github.com/matt-dz/recipefinder/internal/gateway"
	"github.com/matt-dz/recipefinder/internal/log"
	"github.com/matt-dz/recipefinder/internal/session"
)

type envKeyType struct{}

var envKey envKeyType

type Env struct {
	Logger   *slog.Logger
	Config   config.Config
	Gateway  gateway.Gateway
	Sessions *session.Registry
	Registry *prometheus.Registry

	closers []func() error
}

func New(logger *slog.Logger, conf config.Config, g gateway.Gateway, sessions *session.Registry,
	registry *prometheus.Registry,
) *Env {
	if logger == nil {
		logger = log.NullLogger()
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return &Env{
		Logger:   logger,
		Config:   conf,
		Gateway:  g,
		Sessions: sessions,
		Registry: registry,
	}
}

func Null() *Env {
	return &Env{
		Logger:   log.NullLogger(),
		Registry: prometheus.NewRegistry(),
	}
}

// IsProd reports whether the process runs with ENV=PROD.
func (e *Env) IsProd() bool {
	return e.Config.Env == config.EnvProd
}

// OnClose registers fn to run when Close is called. Closers run in reverse
// registration order.
func (e *Env) OnClose(fn func() error) {
	e.closers = append(e.closers, fn)
}

func (e *Env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

func WithCtx(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, envKey, e)
}

// EnvFromCtx returns the Env stored in ctx, or a null Env if there is none.
func EnvFromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey).(*Env); ok {
		return e
	}
	return Null()
}
