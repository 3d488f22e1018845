// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"

	"github.com/matt-dz/recipefinder/internal/config"
	"github.com/matt-dz/recipefinder/internal/database"
	"github.com/matt-dz/recipefinder/internal/env"
	"github.com/matt-dz/recipefinder/internal/fileserver"
	"github.com/matt-dz/recipefinder/internal/gateway"
	"github.com/matt-dz/recipefinder/internal/gateway/local"
	"github.com/matt-dz/recipefinder/internal/gateway/remote"
	mHttp "github.com/matt-dz/recipefinder/internal/http"
	"github.com/matt-dz/recipefinder/internal/kv"
	"github.com/matt-dz/recipefinder/internal/metrics"
	"github.com/matt-dz/recipefinder/internal/recipe"
	"github.com/matt-dz/recipefinder/internal/session"
)

// Gateway builds the recipe gateway selected by conf.
func Gateway(conf config.Gateway, logger *slog.Logger) (gateway.Gateway, error) {
	switch conf.Mode {
	case config.GatewayModeMock:
		latency := local.NoLatency
		if conf.SimulateLatency {
			latency = local.DefaultLatency
		}
		return local.New(recipe.SampleCatalog(), latency), nil
	case config.GatewayModeRemote:
		if conf.APIKey == "" {
			return nil, NewEnvironmentVariableMissingError("remote gateway", "RECIPE_API_KEY")
		}
		httpConfig := mHttp.DefaultConfig()
		httpConfig.Logger = logger
		return remote.New(mHttp.New(httpConfig), logger, remote.Config{
			BaseURL:           conf.BaseURL,
			APIKey:            conf.APIKey,
			PageSize:          conf.PageSize,
			RequestsPerSecond: conf.RequestsPerSecond,
			Burst:             1,
		}), nil
	}
	return nil, fmt.Errorf("unknown gateway mode %q", conf.Mode)
}

// Store opens the preferences backend selected by conf. The returned close
// function releases any connection the backend holds.
func Store(ctx context.Context, conf config.Config) (kv.Store, func() error, error) {
	noop := func() error { return nil }

	switch conf.Preferences.Backend {
	case config.BackendMemory:
		return kv.NewMemory(), noop, nil

	case config.BackendFile:
		dir, err := filepath.Abs(conf.Preferences.Directory)
		if err != nil {
			return nil, nil, fmt.Errorf("resolving preferences directory: %w", err)
		}
		return kv.NewFile(fileserver.New(dir)), noop, nil

	case config.BackendPostgres:
		db, err := database.Connect(ctx, conf.Database.URL())
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		return kv.NewPostgres(db), func() error { db.Close(); return nil }, nil

	case config.BackendRedis:
		if conf.Redis.Addr == "" {
			return nil, nil, NewEnvironmentVariableMissingError("redis backend", "REDIS_ADDR")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("pinging redis: %w", err)
		}
		return kv.NewRedis(client), client.Close, nil

	case config.BackendS3:
		if conf.ObjectStore.Endpoint == "" {
			return nil, nil, NewEnvironmentVariableMissingError("s3 backend", "S3_ENDPOINT")
		}
		if conf.ObjectStore.Bucket == "" {
			return nil, nil, NewEnvironmentVariableMissingError("s3 backend", "S3_BUCKET")
		}
		client, err := minio.New(conf.ObjectStore.Endpoint, &minio.Options{
			Creds:        credentials.NewStaticV4(conf.ObjectStore.AccessKey, conf.ObjectStore.SecretKey, ""),
			Secure:       conf.ObjectStore.UseSSL,
			Region:       conf.ObjectStore.Region,
			BucketLookup: minio.BucketLookupPath,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("creating object store client: %w", err)
		}
		store := kv.NewObject(client, conf.ObjectStore.Bucket)
		if err := store.EnsureBucket(ctx, conf.ObjectStore.Region); err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	}
	return nil, nil, fmt.Errorf("unknown preferences backend %q", conf.Preferences.Backend)
}

// Env wires the gateway, preferences backend, metrics and session registry
// into an Env. Callers must Close the returned Env.
func Env(ctx context.Context, conf config.Config, logger *slog.Logger) (*env.Env, error) {
	registry := metrics.NewRegistry()
	m := metrics.New(registry)

	g, err := Gateway(conf.Gateway, logger)
	if err != nil {
		return nil, fmt.Errorf("setting up gateway: %w", err)
	}
	g = metrics.Instrument(g, m)

	store, closeStore, err := Store(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("setting up preferences backend: %w", err)
	}
	logger.DebugContext(ctx, "preferences backend ready",
		slog.String("backend", string(conf.Preferences.Backend)))

	sessions := session.NewRegistry(session.Deps{
		Gateway: g,
		Store:   store,
		Logger:  logger,
	})

	e := env.New(logger, conf, g, sessions, registry)
	e.OnClose(closeStore)
	return e, nil
}
