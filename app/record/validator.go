package record

// ValidateRoot checks a root record's fields and returns every violation
// found. An empty slice means the record may be used in a compile.
func ValidateRoot(root *Root, path string) []error {
	var errs []error

	fields := []struct {
		name  string
		value string
	}{
		{"title", root.Title},
		{"link", root.Link},
		{"description", root.Description},
		{"rootDir", root.RootDir},
		{"rssFilename", root.RSSFilename},
	}
	for _, f := range fields {
		switch {
		case f.value == "":
			errs = append(errs, &MissingFieldError{Path: path, Field: f.name})
		case IsPlaceholder(f.name, f.value):
			errs = append(errs, &PlaceholderValueError{Path: path, Field: f.name, Value: f.value})
		}
	}
	return errs
}

// ValidateItem checks one item record. entry is the item's 1-based position
// within its sidecar file, used for error context.
func ValidateItem(item *Item, path string, entry int) []error {
	var errs []error

	if item.Filename == "" {
		errs = append(errs, &MissingFieldError{Path: path, Entry: entry, Field: "filename"})
	}

	fields := []struct {
		name  string
		value string
	}{
		{"title", item.Title},
		{"description", item.Description},
	}
	for _, f := range fields {
		switch {
		case f.value == "":
			errs = append(errs, &MissingFieldError{Path: path, Entry: entry, Field: f.name})
		case IsPlaceholder(f.name, f.value):
			errs = append(errs, &PlaceholderValueError{Path: path, Entry: entry, Field: f.name, Value: f.value})
		}
	}

	// Author is optional; a placeholder author counts as unset, not invalid.

	if item.PubDate == "" {
		errs = append(errs, &MissingFieldError{Path: path, Entry: entry, Field: "pubDate"})
	} else if _, err := ParsePubDate(item.PubDate); err != nil {
		errs = append(errs, &InvalidDateError{Path: path, Entry: entry, Field: "pubDate", Value: item.PubDate, Err: err})
	}

	return errs
}

// ValidateItems runs ValidateItem over a sidecar's items in file order and
// concatenates the violations.
func ValidateItems(items []Item, path string) []error {
	var errs []error
	for i := range items {
		errs = append(errs, ValidateItem(&items[i], path, i+1)...)
	}
	return errs
}
