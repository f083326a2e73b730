package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tylerneylon/rss/app/record"
)

type rootCommand struct{}

func init() {
	parser.AddCommand("root",
		"Create a templated root sidecar in the current directory",
		"Writes "+record.RootFilename+" with template values describing the site. "+
			"Edit the title, link and description fields before running make.",
		&rootCommand{})
}

func (c *rootCommand) Execute(args []string) error {
	path := filepath.Join(workingDir(), record.RootFilename)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists; edit it directly instead", path)
	}

	if err := record.WriteRoot(path, record.NewRootTemplate()); err != nil {
		return err
	}

	log.Printf("Wrote template root sidecar to %s", path)
	log.Printf("Edit the title, link and description fields before running make.")
	return nil
}
