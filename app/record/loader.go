package record

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/araddon/dateparse"
)

var rootRequiredKeys = []string{"title", "link", "description", "rootDir", "rssFilename"}
var itemRequiredKeys = []string{"filename", "title", "description", "pubDate"}

// LoadRoot reads and decodes a root sidecar file. A file that is not a JSON
// object, or that lacks a required key, yields a ParseError naming the path.
func LoadRoot(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read root sidecar: %w", err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	for _, k := range rootRequiredKeys {
		if _, ok := keys[k]; !ok {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("missing required key %q", k)}
		}
	}

	var root Root
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &root, nil
}

// LoadItems reads an item sidecar file: a JSON array of item objects. The
// array order is preserved, it is the default display order of the directory.
func LoadItems(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item sidecar: %w", err)
	}

	var rawItems []json.RawMessage
	if err := json.Unmarshal(data, &rawItems); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	items := make([]Item, 0, len(rawItems))
	for i, raw := range rawItems {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(raw, &keys); err != nil {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("entry %d: %w", i+1, err)}
		}
		for _, k := range itemRequiredKeys {
			if _, ok := keys[k]; !ok {
				return nil, &ParseError{Path: path, Err: fmt.Errorf("entry %d: missing required key %q", i+1, k)}
			}
		}
		var item Item
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("entry %d: %w", i+1, err)}
		}
		items = append(items, item)
	}
	return items, nil
}

// ParsePubDate parses an item's pubDate string. Both the RFC 2822 form the
// post command writes and ISO 8601 forms are accepted; an explicit UTC offset
// in the string is kept as recorded.
func ParsePubDate(value string) (time.Time, error) {
	return dateparse.ParseAny(value)
}
