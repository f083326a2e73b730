package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tylerneylon/rss/app/compiler"
)

type makeCommand struct{}

func init() {
	parser.AddCommand("make",
		"Compile the feed and write it next to the root sidecar",
		"Locates the root sidecar by searching upward from the current directory, "+
			"discovers every item sidecar below it, validates all records, and writes "+
			"the rendered feed to the root record's rssFilename. Nothing is written "+
			"if any record fails validation.",
		&makeCommand{})
}

func (c *makeCommand) Execute(args []string) error {
	result, err := compiler.New(workingDir()).Run()
	if err != nil {
		return err
	}

	if err := os.WriteFile(result.OutPath, []byte(result.Document), 0644); err != nil {
		return fmt.Errorf("failed to write feed: %w", err)
	}

	log.Printf("Wrote %d item(s) to %s", result.ItemCount, result.OutPath)
	return nil
}
