package feed

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/tylerneylon/rss/app/record"
)

// PathOutsideRootError reports a directory that is not inside the configured
// site root. Such configurations are rejected outright, never clamped.
type PathOutsideRootError struct {
	Dir      string
	SiteRoot string
}

func (e *PathOutsideRootError) Error() string {
	return fmt.Sprintf("%s is outside the site root %s", e.Dir, e.SiteRoot)
}

// Resolver derives each item's public URL from its filesystem location. URLs
// use forward slashes regardless of the host OS path separator.
type Resolver struct {
	base     string // channel link without trailing slash
	siteRoot string // absolute directory serving as the site root
}

// NewResolver builds a resolver for one compile. The site root is the root
// record's rootDir resolved against the directory holding the root sidecar;
// a rootDir that escapes that directory is a configuration error.
func NewResolver(root *record.Root, rootRecordDir string) (*Resolver, error) {
	rootRecordDir, err := filepath.Abs(rootRecordDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", rootRecordDir, err)
	}

	// rootDir is relative to the root record's directory; absolute values
	// are rejected, never reinterpreted.
	if filepath.IsAbs(root.RootDir) {
		return nil, &PathOutsideRootError{Dir: root.RootDir, SiteRoot: rootRecordDir}
	}

	siteRoot := filepath.Join(rootRecordDir, root.RootDir)
	if !underDir(rootRecordDir, siteRoot) {
		return nil, &PathOutsideRootError{Dir: siteRoot, SiteRoot: rootRecordDir}
	}

	return &Resolver{
		base:     strings.TrimSuffix(root.Link, "/"),
		siteRoot: siteRoot,
	}, nil
}

// Resolve returns the public URL of filename inside the absolute directory
// dir. The URL path is the channel link plus dir's path relative to the site
// root plus the filename.
func (r *Resolver) Resolve(dir, filename string) (string, error) {
	rel, err := filepath.Rel(r.siteRoot, dir)
	if err != nil || escapes(rel) {
		return "", &PathOutsideRootError{Dir: dir, SiteRoot: r.siteRoot}
	}
	return r.base + "/" + path.Join(filepath.ToSlash(rel), filename), nil
}

// underDir reports whether target equals dir or lives below it.
func underDir(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	return err == nil && !escapes(rel)
}

func escapes(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
