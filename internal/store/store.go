// Package store loads catalog records from, and writes them to, seed files.
// A store is only read at startup; the running server never writes to it.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/winexplorer/backend/internal/catalog"
	"github.com/winexplorer/backend/internal/domain/item"
)

var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Source yields the records a catalog is built from.
type Source interface {
	Load(ctx context.Context) ([]item.Item, error)
}

// Sink persists catalog records.
type Sink interface {
	Save(ctx context.Context, items []item.Item) error
}

// Builtin serves the compiled-in dataset stamped with Modified.
type Builtin struct {
	Modified time.Time
}

func (b Builtin) Load(context.Context) ([]item.Item, error) {
	return catalog.Seed(b.Modified), nil
}

// Format is the on-disk encoding of a catalog file.
type Format string

const (
	FormatSQLite Format = "sqlite"
	FormatYAML   Format = "yaml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Open returns the Source for path. An empty path selects the built-in
// dataset. A missing file is an error; Open never creates one.
// The returned close function must be called when done.
func Open(path string, now time.Time) (Source, func() error, error) {
	if path == "" {
		return Builtin{Modified: now}, noopClose, nil
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("open catalog: %s is a directory", path)
	}
	switch format {
	case FormatSQLite:
		s, err := NewSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return NewYAMLFile(path), noopClose, nil
	}
}

// Create returns a Sink that writes a catalog file at path.
func Create(path string) (Sink, func() error, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, nil, err
	}
	if format == FormatSQLite {
		s, err := NewSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	return NewYAMLFile(path), noopClose, nil
}

// LoadCatalog reads every record from src and validates them into a Catalog.
func LoadCatalog(ctx context.Context, src Source) (*catalog.Catalog, error) {
	items, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	c, err := catalog.New(items)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return c, nil
}

func noopClose() error { return nil }
