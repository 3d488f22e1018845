package database

import (
	"context"
)

const checkPreferencesTableExists = `-- name: CheckPreferencesTableExists :one
SELECT EXISTS (
  SELECT 1 FROM information_schema.tables
  WHERE table_schema = 'public' AND table_name = 'preferences'
)
`

func (q *Queries) CheckPreferencesTableExists(ctx context.Context) (bool, error) {
	row := q.db.QueryRow(ctx, checkPreferencesTableExists)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const getPreference = `-- name: GetPreference :one
SELECT value FROM preferences
WHERE key = $1
`

func (q *Queries) GetPreference(ctx context.Context, key string) (string, error) {
	row := q.db.QueryRow(ctx, getPreference, key)
	var value string
	err := row.Scan(&value)
	return value, err
}

const upsertPreference = `-- name: UpsertPreference :exec
INSERT INTO preferences (key, value, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, updated_at = NOW()
`

type UpsertPreferenceParams struct {
	Key   string
	Value string
}

func (q *Queries) UpsertPreference(ctx context.Context, arg UpsertPreferenceParams) error {
	_, err := q.db.Exec(ctx, upsertPreference, arg.Key, arg.Value)
	return err
}
