// rss creates and maintains RSS feed files for a static website. It is an
// RSS writer, not a reader: sidecar JSON files next to the site's content
// describe the site and its posts, and the make command compiles them into a
// single feed document.
package main

import (
	"log"
	"os"

	"github.com/jessevdk/go-flags"
)

var parser = flags.NewParser(nil, flags.Default)

func main() {
	log.SetFlags(0)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

func workingDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to determine working directory: %v", err)
	}
	return cwd
}
