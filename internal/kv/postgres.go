package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/matt-dz/recipefinder/internal/database"
)

// Postgres stores keys as rows of the preferences table.
type Postgres struct {
	db database.Querier
}

var _ Store = (*Postgres)(nil)

func NewPostgres(db database.Querier) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := p.db.GetPreference(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting preference %q: %w", key, err)
	}
	return []byte(value), nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	err := p.db.UpsertPreference(ctx, database.UpsertPreferenceParams{
		Key:   key,
		Value: string(value),
	})
	if err != nil {
		return fmt.Errorf("upserting preference %q: %w", key, err)
	}
	return nil
}
