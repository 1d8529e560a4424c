// Package fsimport snapshots a directory on disk into catalog records.
package fsimport

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/winexplorer/backend/internal/domain/item"
	"github.com/winexplorer/backend/internal/id"
)

// Options controls a directory snapshot.
type Options struct {
	// RootName is the display name of the root folder. Defaults to the
	// directory's base name.
	RootName string
	// IncludeHidden keeps entries whose name starts with a dot.
	IncludeHidden bool
	// MaxDepth limits how far below the root entries are collected.
	// Zero means no limit.
	MaxDepth int
}

// Snapshot walks dir and returns one record per file and folder.
// Symlinks and other non-regular files are skipped.
func Snapshot(dir string, opts Options) ([]item.Item, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	rootName := opts.RootName
	if rootName == "" {
		rootName = info.Name()
	}
	rootID := id.GenerateID()
	items := []item.Item{item.NewFolder(rootID, rootName, "", info.ModTime())}

	ids := map[string]string{".": rootID}
	fsys := os.DirFS(dir)
	err = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if !opts.IncludeHidden && d.Name()[0] == '.' {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if opts.MaxDepth > 0 && depth(p) > opts.MaxDepth {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		parentID, ok := ids[path.Dir(p)]
		if !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		itemID := id.GenerateID()
		switch {
		case d.IsDir():
			ids[p] = itemID
			items = append(items, item.NewFolder(itemID, d.Name(), parentID, info.ModTime()))
		case info.Mode().IsRegular():
			items = append(items, item.NewFile(itemID, d.Name(), parentID, info.Size(), info.ModTime()))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return items, nil
}

func depth(p string) int {
	n := 1
	for _, c := range p {
		if c == '/' {
			n++
		}
	}
	return n
}
