package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"sitenav"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Content string
	Builder sitenav.Builder
	Sitemap sitenav.SitemapWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Content  string `help:"Content directory to scan." env:"SITENAV_CONTENT" default:"./app"`
	Fallback string `help:"YAML file replacing the compiled-in fallback navigation." env:"SITENAV_FALLBACK" type:"path"`
	Verbose  bool   `short:"v" help:"Log scan and build details to stderr."`

	Tree    TreeCmd    `cmd:"" help:"Print the navigation as a styled tree"`
	JSON    JSONCmd    `cmd:"" name:"json" help:"Print the navigation as JSON for the rendering layer"`
	Serve   ServeCmd   `cmd:"" help:"Serve the navigation over HTTP"`
	Sitemap SitemapCmd `cmd:"" help:"Write a sitemap.xml of all navigable pages"`
	Watch   WatchCmd   `cmd:"" help:"Rebuild the navigation whenever the content tree changes"`
}

// TreeCmd is the "tree" subcommand.
type TreeCmd struct {
	Current string `help:"Mark the path to this route as expanded." placeholder:"/route"`
	Plain   bool   `help:"Plain text output without styling."`
}

// JSONCmd is the "json" subcommand.
type JSONCmd struct {
	Current string `help:"Mark the path to this route as expanded." placeholder:"/route"`
	Pretty  bool   `help:"Indent the output."`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `help:"Listen address." env:"SITENAV_ADDR" default:":8080"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	BaseURL string   `name:"base-url" required:"" help:"Absolute site URL routes are joined to."`
	Out     string   `short:"o" type:"path" help:"Write to a file instead of stdout."`
	Include []string `short:"i" help:"Only include routes matching regex (repeatable)."`
	Exclude []string `short:"x" help:"Exclude routes matching regex (repeatable)."`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Interval time.Duration `help:"Minimum time between rebuilds." default:"1s"`
}
