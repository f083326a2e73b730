package record

import "fmt"

// ParseError reports a sidecar file whose content could not be decoded, or
// which is missing a required key entirely.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// entryLabel renders the "entry N" context shared by the validation errors.
// Entry is 1-based; 0 means the error is about the root record.
func entryLabel(entry int) string {
	if entry > 0 {
		return fmt.Sprintf(" (entry %d)", entry)
	}
	return ""
}

// MissingFieldError reports a required field that is empty.
type MissingFieldError struct {
	Path  string
	Entry int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s%s: required field %q is empty", e.Path, entryLabel(e.Entry), e.Field)
}

// PlaceholderValueError reports a required field still carrying its template
// placeholder value.
type PlaceholderValueError struct {
	Path  string
	Entry int
	Field string
	Value string
}

func (e *PlaceholderValueError) Error() string {
	return fmt.Sprintf("%s%s: field %q still has its template value %q, edit it before compiling",
		e.Path, entryLabel(e.Entry), e.Field, e.Value)
}

// InvalidDateError reports a pubDate that is not a valid calendar date.
type InvalidDateError struct {
	Path  string
	Entry int
	Field string
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s%s: field %q has unparseable date %q: %v",
		e.Path, entryLabel(e.Entry), e.Field, e.Value, e.Err)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}
