package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// setupLogger builds a logger writing to w at the named level. Format "json"
// emits structured lines; anything else is the pretty console format.
func setupLogger(w io.Writer, level, format string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	opts := log.Options{
		Level:           lvl,
		Prefix:          "msws",
		ReportTimestamp: true,
	}
	if format == "json" {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts), nil
}
