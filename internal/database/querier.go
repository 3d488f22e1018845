package database

//go:generate mockgen -destination=../dbmock/querier.go -package=dbmock . Querier

import (
	"context"
)

type Querier interface {
	CheckPreferencesTableExists(ctx context.Context) (bool, error)
	GetPreference(ctx context.Context, key string) (string, error)
	UpsertPreference(ctx context.Context, arg UpsertPreferenceParams) error
}

var _ Querier = (*Queries)(nil)
