// Package fileserver reads and writes files confined to a base directory.
package fileserver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	directoryPerms = 0o755
	filePerms      = 0o600
)

var (
	ErrInvalidPath = errors.New("invalid path")
	ErrNotExist    = errors.New("file does not exist")
)

type FileServerInterface interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) (n int, err error)
	Exists(path string) (bool, error)
	BaseDirectory() string
}

type FileServer struct {
	baseDir string
}

var _ FileServerInterface = (*FileServer)(nil)

func New(baseDir string) *FileServer {
	return &FileServer{
		baseDir: baseDir,
	}
}

func (f *FileServer) BaseDirectory() string {
	return f.baseDir
}

// cleanPath resolves path against baseDir and rejects anything that would
// land outside of it.
func cleanPath(baseDir, path string) (string, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory: %w", err)
	}
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidPath, path)
	}
	full := filepath.Join(absBase, filepath.Clean(path))
	rel, err := filepath.Rel(absBase, full)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes base directory", ErrInvalidPath, path)
	}
	return full, nil
}

func (f *FileServer) Read(path string) ([]byte, error) {
	fullpath, err := cleanPath(f.baseDir, path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fullpath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// Write replaces the file at path. Data goes to a temporary sibling first and
// is renamed into place, so readers never observe a partial write.
func (f *FileServer) Write(path string, data []byte) (n int, err error) {
	fullpath, err := cleanPath(f.baseDir, path)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(fullpath), directoryPerms); err != nil {
		return 0, fmt.Errorf("creating parent directories: %w", err)
	}

	file, err := os.CreateTemp(filepath.Dir(fullpath), "."+filepath.Base(fullpath)+".*")
	if err != nil {
		return 0, fmt.Errorf("creating file: %w", err)
	}
	tmp := file.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	n, err = file.Write(data)
	if err != nil {
		_ = file.Close()
		return 0, fmt.Errorf("writing file: %w", err)
	}
	if err = file.Chmod(filePerms); err != nil {
		_ = file.Close()
		return 0, fmt.Errorf("setting permissions: %w", err)
	}
	if err = file.Close(); err != nil {
		return 0, fmt.Errorf("closing file: %w", err)
	}
	if err = os.Rename(tmp, fullpath); err != nil {
		return 0, fmt.Errorf("renaming file: %w", err)
	}
	return n, nil
}

func (f *FileServer) Exists(path string) (bool, error) {
	fullpath, err := cleanPath(f.baseDir, path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(fullpath)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
