package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tylerneylon/rss/app/locator"
	"github.com/tylerneylon/rss/app/record"
)

type postCommand struct {
	Offset string `short:"7" long:"offset" description:"Explicit UTC offset for pubDate, e.g. --offset=-0700 or --offset=-7" value-name:"OFFSET"`

	Args struct {
		Filename string `positional-arg-name:"filename" description:"The post's HTML file name" required:"yes"`
	} `positional-args:"yes"`
}

func init() {
	parser.AddCommand("post",
		"Append a templated item record for a new post",
		"Appends a template entry for the given post file to this directory's "+
			record.ItemsFilename+", creating the file when needed. The pubDate is set "+
			"to the current time; edit the remaining template fields before running make.",
		&postCommand{})
}

func (c *postCommand) Execute(args []string) error {
	cwd := workingDir()

	now := time.Now()
	if c.Offset != "" {
		loc, err := parseUTCOffset(c.Offset)
		if err != nil {
			return err
		}
		now = now.In(loc)
	} else {
		now = now.Local()
	}

	// The root's default author seeds the template when the site has one.
	// A missing root is fine here; the post command works standalone.
	defaultAuthor := ""
	if root, _, err := locator.LocateRoot(cwd); err == nil {
		defaultAuthor = root.DefaultAuthor
	} else {
		var notFound *locator.RootNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	path := filepath.Join(cwd, record.ItemsFilename)
	item := record.NewItemTemplate(c.Args.Filename, now, defaultAuthor)
	if err := record.AppendItem(path, item); err != nil {
		return err
	}

	log.Printf("Appended template item for %s to %s", c.Args.Filename, path)
	log.Printf("Edit the title and description fields before running make.")
	return nil
}

// parseUTCOffset turns an offset like "-0700", "+05:30", "-7" or "Z" into a
// fixed time zone.
func parseUTCOffset(offset string) (*time.Location, error) {
	if offset == "Z" || offset == "z" {
		return time.UTC, nil
	}

	sign := 1
	s := offset
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	default:
		return nil, fmt.Errorf("invalid UTC offset %q: must start with + or -", offset)
	}
	s = strings.Replace(s, ":", "", 1)

	var hours, minutes int
	var err error
	switch len(s) {
	case 1, 2:
		// Bare hour count, e.g. -7.
		hours, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid UTC offset %q: %w", offset, err)
		}
	case 4:
		hours, err = strconv.Atoi(s[:2])
		if err != nil {
			return nil, fmt.Errorf("invalid UTC offset %q: %w", offset, err)
		}
		minutes, err = strconv.Atoi(s[2:])
		if err != nil {
			return nil, fmt.Errorf("invalid UTC offset %q: %w", offset, err)
		}
	default:
		return nil, fmt.Errorf("invalid UTC offset %q: expected forms like -0700, -07:00 or -7", offset)
	}
	if hours > 23 || minutes > 59 {
		return nil, fmt.Errorf("invalid UTC offset %q: out of range", offset)
	}

	seconds := sign * (hours*3600 + minutes*60)
	name := fmt.Sprintf("UTC%+03d:%02d", sign*hours, minutes)
	return time.FixedZone(name, seconds), nil
}
