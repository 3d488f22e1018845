package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	value any
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	switch d := dest[0].(type) {
	case *bool:
		*d = r.value.(bool)
	case *string:
		*d = r.value.(string)
	}
	return nil
}

type fakeDB struct {
	row   fakeRow
	execs []string
	args  [][]any
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	f.args = append(f.args, args)
	return pgconn.NewCommandTag("OK"), nil
}

func (f *fakeDB) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return f.row
}

func TestEnsureSchema(t *testing.T) {
	tests := []struct {
		name      string
		row       fakeRow
		wantExecs int
		wantErr   bool
	}{
		{name: "table missing", row: fakeRow{value: false}, wantExecs: 1},
		{name: "table present", row: fakeRow{value: true}, wantExecs: 0},
		{name: "query fails", row: fakeRow{err: errors.New("boom")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeDB{row: tt.row}
			db := &Database{Queries: New(fake)}
			err := db.EnsureSchema(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("EnsureSchema() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(fake.execs) != tt.wantExecs {
				t.Fatalf("expected %d execs, got %d", tt.wantExecs, len(fake.execs))
			}
			if tt.wantExecs > 0 && !strings.Contains(fake.execs[0], "CREATE TABLE IF NOT EXISTS preferences") {
				t.Errorf("unexpected schema statement %q", fake.execs[0])
			}
		})
	}
}

func TestUpsertPreference(t *testing.T) {
	fake := &fakeDB{}
	q := New(fake)
	if err := q.UpsertPreference(context.Background(), UpsertPreferenceParams{Key: "k", Value: "[]"}); err != nil {
		t.Fatalf("UpsertPreference() error = %v", err)
	}
	if len(fake.args) != 1 || fake.args[0][0] != "k" || fake.args[0][1] != "[]" {
		t.Errorf("unexpected args %v", fake.args)
	}
}

func TestGetPreference_NoRows(t *testing.T) {
	q := New(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})
	if _, err := q.GetPreference(context.Background(), "missing"); !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("expected pgx.ErrNoRows, got %v", err)
	}
}
