package main

import (
	"fmt"
	"log"

	"github.com/tylerneylon/rss/app/compiler"
)

type checkCommand struct {
	Args struct {
		Path string `positional-arg-name:"path" description:"A single sidecar file to validate (default: the whole tree)"`
	} `positional-args:"yes"`
}

func init() {
	parser.AddCommand("check",
		"Validate sidecar records without writing a feed",
		"With no argument, validates the root record and every item record "+
			"reachable from it, reporting all problems in one pass. With an item "+
			"sidecar path, validates just that file; with a root sidecar path, "+
			"validates it and every item record below it.",
		&checkCommand{})
}

func (c *checkCommand) Execute(args []string) error {
	violations, err := compiler.Check(workingDir(), c.Args.Path)
	if err != nil {
		return err
	}

	for _, v := range violations {
		log.Printf("%v", v)
	}
	if len(violations) > 0 {
		return fmt.Errorf("%d problem(s) found", len(violations))
	}

	log.Printf("All records are valid.")
	return nil
}
