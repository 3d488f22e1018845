package fileserver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCleanPath_Valid(t *testing.T) {
	baseDir := filepath.Join("testdata", "base")

	tests := []struct {
		name     string
		path     string
		expected string // expected cleaned relative part under base
	}{
		{
			name:     "simple relative path",
			path:     "profiles/foo.json",
			expected: filepath.Join("profiles", "foo.json"),
		},
		{
			name:     "path with dot segments",
			path:     "./profiles/./foo.json",
			expected: filepath.Join("profiles", "foo.json"),
		},
		{
			name:     "path with inner dot-dot but still inside",
			path:     "profiles/2025/../foo.json",
			expected: filepath.Join("profiles", "foo.json"),
		},
		{
			name:     "empty path resolves to base",
			path:     "",
			expected: ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := cleanPath(baseDir, tt.path)
			if err != nil {
				t.Fatalf("cleanPath() returned unexpected error: %v", err)
			}

			absBase, err := filepath.Abs(baseDir)
			if err != nil {
				t.Fatalf("failed to get abs base: %v", err)
			}
			want := filepath.Join(absBase, tt.expected)
			if got != want {
				t.Fatalf("cleanPath() = %q, want %q", got, want)
			}
		})
	}
}

func TestCleanPath_Invalid(t *testing.T) {
	baseDir := filepath.Join("testdata", "base")

	tests := []struct {
		name string
		path string
	}{
		{name: "starts with dot-dot", path: "../secret.txt"},
		{name: "cleaned becomes dot-dot", path: "foo/../../secret.txt"},
		{name: "absolute path", path: filepath.Join(string(filepath.Separator), "etc", "passwd")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := cleanPath(baseDir, tt.path)
			if !errors.Is(err, ErrInvalidPath) {
				t.Fatalf("cleanPath(%q) = %q, %v; want ErrInvalidPath", tt.path, got, err)
			}
		})
	}
}

func TestReadWrite(t *testing.T) {
	base := t.TempDir()
	fs := New(base)

	if _, err := fs.Read("profile/prefs.json"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}

	n, err := fs.Write("profile/prefs.json", []byte(`[1,2]`))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5 bytes written, got %d", n)
	}

	if _, err := fs.Write("profile/prefs.json", []byte(`[3]`)); err != nil {
		t.Fatalf("overwrite error = %v", err)
	}
	data, err := fs.Read("profile/prefs.json")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != `[3]` {
		t.Errorf("unexpected contents %q", data)
	}

	entries, err := os.ReadDir(filepath.Join(base, "profile"))
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected temp files cleaned up, found %d entries", len(entries))
	}

	ok, err := fs.Exists("profile/prefs.json")
	if err != nil || !ok {
		t.Errorf("Exists() = %v, %v", ok, err)
	}
	ok, err = fs.Exists("profile/missing.json")
	if err != nil || ok {
		t.Errorf("Exists() on missing file = %v, %v", ok, err)
	}
}

func TestWrite_RejectsEscape(t *testing.T) {
	fs := New(t.TempDir())
	if _, err := fs.Write("../outside.json", []byte("x")); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
}
