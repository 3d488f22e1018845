package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-dz/recipefinder/internal/fileserver"
)

const fileSuffix = ".json"

// File stores each key as a JSON file below a base directory.
type File struct {
	fs fileserver.FileServerInterface
}

var _ Store = (*File)(nil)

func NewFile(fs fileserver.FileServerInterface) *File {
	return &File{fs: fs}
}

func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	data, err := f.fs.Read(key + fileSuffix)
	if errors.Is(err, fileserver.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", key, err)
	}
	return data, nil
}

func (f *File) Set(_ context.Context, key string, value []byte) error {
	if _, err := f.fs.Write(key+fileSuffix, value); err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}
