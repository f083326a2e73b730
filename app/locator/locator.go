// Package locator finds the sidecar files of a site: the single root sidecar
// by walking up from a starting directory, and every item sidecar by walking
// down from the root record's directory.
package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tylerneylon/rss/app/record"
)

// RootNotFoundError reports that no ancestor of the starting directory holds
// a root sidecar file.
type RootNotFoundError struct {
	StartDir string
}

func (e *RootNotFoundError) Error() string {
	return fmt.Sprintf("no %s found in %s or any parent directory (run the root command first)",
		record.RootFilename, e.StartDir)
}

// DirItems pairs one directory's item records with the directory they came
// from. Dir is absolute; it is what URL derivation works from.
type DirItems struct {
	Dir   string
	Path  string // the sidecar file itself
	Items []record.Item
}

// LocateRoot searches startDir and each of its ancestors in turn for a root
// sidecar. The nearest match wins. Returns the decoded record and the
// absolute directory containing it.
func LocateRoot(startDir string) (*record.Root, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve %s: %w", startDir, err)
	}

	for {
		path := filepath.Join(dir, record.RootFilename)
		_, err := os.Stat(path)
		if err == nil {
			root, err := record.LoadRoot(path)
			if err != nil {
				return nil, "", err
			}
			return root, dir, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to check %s: %w", path, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, "", &RootNotFoundError{StartDir: startDir}
		}
		dir = parent
	}
}

// LocateItems walks every directory below rootRecordDir and collects the item
// sidecars it finds. The walk is lexicographic by path, so repeated runs over
// an unchanged tree yield the same order. A malformed sidecar anywhere aborts
// the walk; partial results are never returned.
func LocateItems(rootRecordDir string, opts Options) ([]DirItems, error) {
	rootRecordDir, err := filepath.Abs(rootRecordDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", rootRecordDir, err)
	}

	var groups []DirItems
	err = filepath.WalkDir(rootRecordDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != rootRecordDir && opts.SkipDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() != record.ItemsFilename {
			return nil
		}

		items, err := record.LoadItems(path)
		if err != nil {
			return err
		}
		groups = append(groups, DirItems{
			Dir:   filepath.Dir(path),
			Path:  path,
			Items: items,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}
