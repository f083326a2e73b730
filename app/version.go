package main

import (
	"fmt"

	"github.com/tylerneylon/rss/app/cfg"
)

type versionCommand struct{}

func init() {
	parser.AddCommand("version", "Print the build version", "", &versionCommand{})
}

func (c *versionCommand) Execute(args []string) error {
	fmt.Println(cfg.GetVersion())
	return nil
}
