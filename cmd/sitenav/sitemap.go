package main

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"sitenav"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	// Compile filters to a RouteFilter (validates regex patterns early)
	var filter *sitenav.RouteFilter
	if len(c.Include) > 0 || len(c.Exclude) > 0 {
		filter = &sitenav.RouteFilter{}
		for _, pattern := range c.Include {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid include pattern %q: %v\n", pattern, err)
				return err
			}
			filter.Include = append(filter.Include, re)
		}
		for _, pattern := range c.Exclude {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid exclude pattern %q: %v\n", pattern, err)
				return err
			}
			filter.Exclude = append(filter.Exclude, re)
		}
	}

	sections := deps.Builder.Build(deps.Ctx)

	var out io.Writer = deps.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()
		out = f
	}

	if err := deps.Sitemap.WriteSitemap(out, c.BaseURL, sections, filter); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitenav.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "wrote %s (%d pages)\n", c.Out, countRoutes(sections, filter))
	}
	return nil
}

// countRoutes reports how many navigable pages pass the filter.
func countRoutes(sections []sitenav.Section, filter *sitenav.RouteFilter) int {
	n := 0
	for _, it := range sitenav.Flatten(sections) {
		if filter.Match(it.Href) {
			n++
		}
	}
	return n
}
