package main

import (
	"encoding/json"
	"fmt"

	"sitenav"
)

// Run executes the json command.
func (c *JSONCmd) Run(deps *Dependencies) error {
	sections := deps.Builder.Build(deps.Ctx)
	if c.Current != "" {
		sections = sitenav.MarkExpanded(sections, c.Current)
	}

	enc := json.NewEncoder(deps.Stdout)
	if c.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(sections); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitenav.ErrorMessage(err))
		return err
	}
	return nil
}
