package main

import (
	"log"
	"path/filepath"

	"github.com/tylerneylon/rss/app/record"
)

type addimgCommand struct {
	Args struct {
		Path string `positional-arg-name:"path" description:"Item sidecar to rewrite (default: ./rss_items.json)"`
	} `positional-args:"yes"`
}

func init() {
	parser.AddCommand("addimg",
		"Wrap item descriptions in CDATA blocks with an img tag",
		"Rewrites an item sidecar so each description is wrapped in a CDATA block "+
			"ending with an empty img tag, letting posts carry images. Descriptions "+
			"already containing CDATA are left alone. Edit the "+record.ImagePlaceholder+
			" placeholders afterward.",
		&addimgCommand{})
}

func (c *addimgCommand) Execute(args []string) error {
	path := c.Args.Path
	if path == "" {
		path = filepath.Join(workingDir(), record.ItemsFilename)
	}

	items, err := record.LoadItems(path)
	if err != nil {
		return err
	}

	changed := record.AddImageTag(items)
	if changed == 0 {
		log.Printf("Every description in %s already has a CDATA block; nothing to do.", path)
		return nil
	}
	if err := record.WriteItems(path, items); err != nil {
		return err
	}

	log.Printf("Wrapped %d description(s) in %s", changed, path)
	log.Printf("Edit the %s placeholders to point at real images.", record.ImagePlaceholder)
	return nil
}
