package record

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// NewRootTemplate returns a root record with template values. The title, link
// and description placeholders must be edited before a compile succeeds;
// rootDir and rssFilename carry usable defaults.
func NewRootTemplate() *Root {
	return &Root{
		Title:       PlaceholderTitle,
		Link:        PlaceholderLink,
		Description: PlaceholderDescription,
		RootDir:     ".",
		RSSFilename: "rss.xml",
	}
}

// NewItemTemplate returns an item record for the given post file, dated now.
// defaultAuthor seeds the author field when the site's root record provides
// one; otherwise the author placeholder is written.
func NewItemTemplate(filename string, now time.Time, defaultAuthor string) Item {
	author := defaultAuthor
	if author == "" {
		author = PlaceholderAuthor
	}
	return Item{
		Filename:    filename,
		Title:       PlaceholderTitle,
		Description: PlaceholderDescription,
		Author:      author,
		PubDate:     now.Format(time.RFC1123Z),
	}
}

// WriteRoot writes a root record to path as indented JSON.
func WriteRoot(path string, root *Root) error {
	data, err := json.MarshalIndent(root, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode root sidecar: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteItems writes an item sidecar to path as indented JSON, keeping the
// given order.
func WriteItems(path string, items []Item) error {
	data, err := json.MarshalIndent(items, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode item sidecar: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// AppendItem appends an item record to the sidecar at path, creating the file
// when it does not exist yet. Existing entries keep their order.
func AppendItem(path string, item Item) error {
	var items []Item
	if _, err := os.Stat(path); err == nil {
		items, err = LoadItems(path)
		if err != nil {
			return err
		}
	}
	return WriteItems(path, append(items, item))
}
