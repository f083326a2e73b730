// Package compiler wires discovery, validation, URL resolution and rendering
// into the make and check operations. A feed is never produced from records
// that have not passed validation.
package compiler

import (
	"fmt"
	"path/filepath"

	"github.com/tylerneylon/rss/app/feed"
	"github.com/tylerneylon/rss/app/locator"
	"github.com/tylerneylon/rss/app/record"
)

// Result is a successful compile: the rendered document and where the caller
// should write it.
type Result struct {
	Document  string
	OutPath   string
	ItemCount int
}

// Compiler runs the full pipeline from a starting directory. The starting
// directory is an explicit input so the pipeline can be exercised against
// synthetic trees in tests.
type Compiler struct {
	startDir string
}

func New(startDir string) *Compiler {
	return &Compiler{startDir: startDir}
}

// Run locates the root record, discovers every item record below it,
// validates all of them, resolves each item's URL and renders the feed. The
// first discovery or validation failure aborts the compile; no partial feed
// is ever returned.
func (c *Compiler) Run() (*Result, error) {
	root, rootDir, err := locator.LocateRoot(c.startDir)
	if err != nil {
		return nil, err
	}
	rootPath := filepath.Join(rootDir, record.RootFilename)
	if errs := record.ValidateRoot(root, rootPath); len(errs) > 0 {
		return nil, errs[0]
	}

	opts, err := locator.LoadOptions(rootDir)
	if err != nil {
		return nil, err
	}
	groups, err := locator.LocateItems(rootDir, opts)
	if err != nil {
		return nil, err
	}

	resolver, err := feed.NewResolver(root, rootDir)
	if err != nil {
		return nil, err
	}

	var entries []feed.Entry
	for _, group := range groups {
		for i := range group.Items {
			item := &group.Items[i]
			if errs := record.ValidateItem(item, group.Path, i+1); len(errs) > 0 {
				return nil, errs[0]
			}
			link, err := resolver.Resolve(group.Dir, item.Filename)
			if err != nil {
				return nil, err
			}
			published, err := record.ParsePubDate(item.PubDate)
			if err != nil {
				// Unreachable after validation, but never render a guess.
				return nil, &record.InvalidDateError{
					Path: group.Path, Entry: i + 1, Field: "pubDate", Value: item.PubDate, Err: err,
				}
			}
			entries = append(entries, feed.Entry{
				Title:       item.Title,
				Link:        link,
				Description: item.Description,
				Author:      item.EffectiveAuthor(root),
				Published:   published,
			})
		}
	}

	doc := feed.NewGenerator().Run(root, entries)
	return &Result{
		Document:  doc,
		OutPath:   filepath.Join(rootDir, root.RSSFilename),
		ItemCount: len(entries),
	}, nil
}

// Check validates records without rendering anything. With an item sidecar
// path it validates that one file; with a root sidecar path it validates the
// root record and the item records below it; otherwise it locates the root
// from startDir and validates everything reachable. Unlike Run, it aggregates
// all violations instead of stopping at the first, so one pass reports every
// problem. The returned error covers failures of discovery itself.
func Check(startDir, sidecarPath string) ([]error, error) {
	if sidecarPath != "" {
		return checkFile(sidecarPath)
	}

	root, rootDir, err := locator.LocateRoot(startDir)
	if err != nil {
		return nil, err
	}
	rootPath := filepath.Join(rootDir, record.RootFilename)
	violations := record.ValidateRoot(root, rootPath)

	opts, err := locator.LoadOptions(rootDir)
	if err != nil {
		return nil, err
	}
	groups, err := locator.LocateItems(rootDir, opts)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		violations = append(violations, record.ValidateItems(group.Items, group.Path)...)
	}
	return violations, nil
}

func checkFile(path string) ([]error, error) {
	switch filepath.Base(path) {
	case record.RootFilename:
		// A root sidecar governs everything below it, so checking one
		// covers the root record and every item record reachable from it.
		root, err := record.LoadRoot(path)
		if err != nil {
			return nil, err
		}
		rootDir := filepath.Dir(path)
		violations := record.ValidateRoot(root, path)

		opts, err := locator.LoadOptions(rootDir)
		if err != nil {
			return nil, err
		}
		groups, err := locator.LocateItems(rootDir, opts)
		if err != nil {
			return nil, err
		}
		for _, group := range groups {
			violations = append(violations, record.ValidateItems(group.Items, group.Path)...)
		}
		return violations, nil
	case record.ItemsFilename:
		items, err := record.LoadItems(path)
		if err != nil {
			return nil, err
		}
		return record.ValidateItems(items, path), nil
	default:
		return nil, fmt.Errorf("%s is not a %s or %s sidecar file",
			path, record.RootFilename, record.ItemsFilename)
	}
}
