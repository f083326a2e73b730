package feed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tylerneylon/rss/app/record"
)

func testRoot(rootDir string) *record.Root {
	return &record.Root{
		Title:       "My Site",
		Link:        "https://example.com/",
		Description: "Things I wrote",
		RootDir:     rootDir,
		RSSFilename: "rss.xml",
	}
}

func TestResolveAtSiteRoot(t *testing.T) {
	tempDir := t.TempDir()
	resolver, err := NewResolver(testRoot("."), tempDir)
	if err != nil {
		t.Fatal(err)
	}

	url, err := resolver.Resolve(tempDir, "index.html")
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://example.com/index.html" {
		t.Errorf("Expected https://example.com/index.html, got %q", url)
	}
}

func TestResolveNestedDirectory(t *testing.T) {
	tempDir := t.TempDir()
	resolver, err := NewResolver(testRoot("."), tempDir)
	if err != nil {
		t.Fatal(err)
	}

	dir := filepath.Join(tempDir, "blog", "2025")
	url, err := resolver.Resolve(dir, "post.html")
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://example.com/blog/2025/post.html" {
		t.Errorf("Expected https://example.com/blog/2025/post.html, got %q", url)
	}
}

func TestResolveWithRootDirSubtree(t *testing.T) {
	tempDir := t.TempDir()
	resolver, err := NewResolver(testRoot("site"), tempDir)
	if err != nil {
		t.Fatal(err)
	}

	url, err := resolver.Resolve(filepath.Join(tempDir, "site", "notes"), "note.html")
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://example.com/notes/note.html" {
		t.Errorf("Expected https://example.com/notes/note.html, got %q", url)
	}
}

// Moving an item to a different descendant directory must change only the
// path segment of its link.
func TestResolveMoveChangesOnlyPath(t *testing.T) {
	tempDir := t.TempDir()
	resolver, err := NewResolver(testRoot("."), tempDir)
	if err != nil {
		t.Fatal(err)
	}

	before, err := resolver.Resolve(filepath.Join(tempDir, "old"), "post.html")
	if err != nil {
		t.Fatal(err)
	}
	after, err := resolver.Resolve(filepath.Join(tempDir, "archive", "2024"), "post.html")
	if err != nil {
		t.Fatal(err)
	}
	if before != "https://example.com/old/post.html" {
		t.Errorf("Unexpected link %q", before)
	}
	if after != "https://example.com/archive/2024/post.html" {
		t.Errorf("Unexpected link %q", after)
	}
}

func TestResolveOutsideSiteRoot(t *testing.T) {
	tempDir := t.TempDir()
	resolver, err := NewResolver(testRoot("site"), tempDir)
	if err != nil {
		t.Fatal(err)
	}

	// The directory is under the root record's directory but outside the
	// configured site subtree.
	_, err = resolver.Resolve(filepath.Join(tempDir, "elsewhere"), "post.html")
	var outsideErr *PathOutsideRootError
	if !errors.As(err, &outsideErr) {
		t.Fatalf("Expected PathOutsideRootError, got %v", err)
	}
}

func TestRootDirEscapingRecordDirRejected(t *testing.T) {
	tempDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tempDir, "inner"), 0755); err != nil {
		t.Fatal(err)
	}

	_, err := NewResolver(testRoot("../outside"), filepath.Join(tempDir, "inner"))
	var outsideErr *PathOutsideRootError
	if !errors.As(err, &outsideErr) {
		t.Fatalf("Expected PathOutsideRootError, got %v", err)
	}
}

func TestAbsoluteRootDirRejected(t *testing.T) {
	tempDir := t.TempDir()

	_, err := NewResolver(testRoot("/srv/site"), tempDir)
	var outsideErr *PathOutsideRootError
	if !errors.As(err, &outsideErr) {
		t.Fatalf("Expected PathOutsideRootError for an absolute rootDir, got %v", err)
	}
	if outsideErr.Dir != "/srv/site" {
		t.Errorf("Expected the error to name the configured rootDir, got %q", outsideErr.Dir)
	}
}

func TestResolveTrimsTrailingSlashOnce(t *testing.T) {
	tempDir := t.TempDir()
	root := testRoot(".")
	root.Link = "https://example.com" // no trailing slash this time
	resolver, err := NewResolver(root, tempDir)
	if err != nil {
		t.Fatal(err)
	}

	url, err := resolver.Resolve(tempDir, "index.html")
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://example.com/index.html" {
		t.Errorf("Expected https://example.com/index.html, got %q", url)
	}
}
