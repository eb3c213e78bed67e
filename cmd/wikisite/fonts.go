package main

import (
	"fmt"

	"github.com/skarvsladd/wikisite"
)

// Run executes the fonts command.
func (c *FontsCmd) Run(deps *Dependencies) error {
	for _, f := range wikisite.Fonts {
		if c.URLs {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", f.Name, f.URL)
			continue
		}
		fmt.Fprintln(deps.Stdout, f.Name)
	}
	return nil
}
