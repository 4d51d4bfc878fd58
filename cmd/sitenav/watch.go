package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"sitenav"
	"sitenav/fs"
	"sitenav/fsnotify"
)

// Run executes the watch command. It rebuilds the navigation once per
// settled batch of content changes and prints a one-line summary, until
// interrupted.
func (c *WatchCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sections := deps.Builder.Build(ctx)
	fmt.Fprintf(deps.Stdout, "watching %s: %s\n", deps.Content, summarize(sections))

	w := &fsnotify.Watcher{
		Root:   deps.Content,
		Skip:   fs.SkipName,
		Limit:  rate.NewLimiter(rate.Every(c.Interval), 1),
		Logger: deps.Logger,
	}

	err := w.Watch(ctx, func(changed []string) {
		rebuilt := deps.Builder.Build(ctx)
		fmt.Fprintf(deps.Stdout, "%s rebuilt after %d changes: %s\n",
			time.Now().Format("15:04:05"), len(changed), summarize(rebuilt))
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitenav.ErrorMessage(err))
		return err
	}
	return nil
}

// summarize renders the one-line shape of a navigation build.
func summarize(sections []sitenav.Section) string {
	return fmt.Sprintf("%d sections, %d pages", len(sections), len(sitenav.Flatten(sections)))
}
