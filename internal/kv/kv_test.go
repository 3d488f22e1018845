package kv

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"

	"github.com/matt-dz/recipefinder/internal/database"
	"github.com/matt-dz/recipefinder/internal/dbmock"
	"github.com/matt-dz/recipefinder/internal/fileserver"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, "favoriteRecipes"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unset key, got %v", err)
	}
	if err := s.Set(ctx, "favoriteRecipes", []byte(`[1,2]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(ctx, "favoriteRecipes", []byte(`[3]`)); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	got, err := s.Get(ctx, "favoriteRecipes")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `[3]` {
		t.Errorf("Get() = %q, want %q", got, `[3]`)
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	exerciseStore(t, m)

	value := []byte(`["a"]`)
	_ = m.Set(context.Background(), "k", value)
	value[0] = 'x'
	got, _ := m.Get(context.Background(), "k")
	if string(got) != `["a"]` {
		t.Errorf("memory store aliased caller slice: %q", got)
	}
}

func TestPrefixed(t *testing.T) {
	m := NewMemory()
	a := Prefixed(m, "profiles/a/")
	b := Prefixed(m, "profiles/b/")
	exerciseStore(t, a)

	if _, err := b.Get(context.Background(), "favoriteRecipes"); !errors.Is(err, ErrNotFound) {
		t.Errorf("prefixes leaked between profiles: %v", err)
	}
	keys := m.Keys()
	if len(keys) != 1 || keys[0] != "profiles/a/favoriteRecipes" {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestFile(t *testing.T) {
	exerciseStore(t, NewFile(fileserver.New(t.TempDir())))
	exerciseStore(t, Prefixed(NewFile(fileserver.New(t.TempDir())), "profiles/01ABC/"))
}

func TestPostgres(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := dbmock.NewMockQuerier(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		db.EXPECT().GetPreference(ctx, "favoriteRecipes").Return("", pgx.ErrNoRows),
		db.EXPECT().UpsertPreference(ctx, database.UpsertPreferenceParams{Key: "favoriteRecipes", Value: `[1,2]`}).Return(nil),
		db.EXPECT().UpsertPreference(ctx, database.UpsertPreferenceParams{Key: "favoriteRecipes", Value: `[3]`}).Return(nil),
		db.EXPECT().GetPreference(ctx, "favoriteRecipes").Return(`[3]`, nil),
	)
	exerciseStore(t, NewPostgres(db))
}

func TestPostgres_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := dbmock.NewMockQuerier(ctrl)
	boom := errors.New("connection reset")
	db.EXPECT().GetPreference(gomock.Any(), "k").Return("", boom)

	_, err := NewPostgres(db).Get(context.Background(), "k")
	if !errors.Is(err, boom) || errors.Is(err, ErrNotFound) {
		t.Errorf("expected wrapped backend error, got %v", err)
	}
}

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestRedis(t *testing.T) {
	exerciseStore(t, NewRedis(&fakeRedis{data: map[string]string{}}))

	broken := NewRedis(&fakeRedis{data: map[string]string{}, err: errors.New("dial tcp: refused")})
	if _, err := broken.Get(context.Background(), "k"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected transport error, got %v", err)
	}
	if err := broken.Set(context.Background(), "k", nil); err == nil {
		t.Error("expected set error")
	}
}

// fakeS3 serves just enough of the S3 object API for GetObject and PutObject.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key, _ := url.PathUnescape(r.URL.Path)
	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		if strings.HasPrefix(r.Header.Get("X-Amz-Content-Sha256"), "STREAMING-") {
			body = decodeAWSChunked(body)
		}
		f.objects[key] = body
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet, http.MethodHead:
		data, ok := f.objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
				`<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message>` +
				`<Key>` + key + `</Key></Error>`))
			return
		}
		w.Header().Set("ETag", `"etag"`)
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Type", jsonContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(data)
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// decodeAWSChunked strips the chunk framing of a streaming-signed upload.
func decodeAWSChunked(body []byte) []byte {
	var out []byte
	rest := string(body)
	for {
		line, after, ok := strings.Cut(rest, "\r\n")
		if !ok {
			return out
		}
		sizeHex, _, _ := strings.Cut(line, ";")
		size, err := strconv.ParseInt(sizeHex, 16, 64)
		if err != nil || size == 0 || int(size) > len(after) {
			return out
		}
		out = append(out, after[:size]...)
		rest = strings.TrimPrefix(after[size:], "\r\n")
	}
}

func TestObject(t *testing.T) {
	s3 := &fakeS3{objects: map[string][]byte{}}
	srv := httptest.NewServer(s3)
	defer srv.Close()

	client, err := minio.New(strings.TrimPrefix(srv.URL, "http://"), &minio.Options{
		Creds:        credentials.NewStaticV4("access", "secret", ""),
		Secure:       false,
		Region:       "us-east-1",
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		t.Fatalf("creating minio client: %v", err)
	}

	exerciseStore(t, NewObject(client, "preferences"))

	if _, ok := s3.objects["/preferences/favoriteRecipes.json"]; !ok {
		t.Errorf("expected object stored under bucket path, have %v", s3.objects)
	}
}
