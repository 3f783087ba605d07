package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/bee"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Store    *bee.Store
	Loader   bee.SourceLoader
	Searcher bee.Searcher // nil when no API key is configured
	Renderer *bee.Renderer
}

// CLI defines the process command-line interface for Kong.
type CLI struct {
	APIKey      string        `short:"k" name:"api-key" env:"SHODAN_API_KEY" help:"Shodan API key used by the download command"`
	Verbose     bool          `short:"v" help:"Also log successful operations"`
	NoColor     bool          `name:"no-color" help:"Disable colored output (also set by NO_COLOR)"`
	HistoryFile string        `name:"history-file" env:"BEE_HISTORY" help:"Keep command history in this file"`
	Rate        float64       `default:"1" help:"Maximum search requests per second"`
	Timeout     time.Duration `default:"30s" help:"Search request timeout"`
	Files       []string      `arg:"" optional:"" help:"JSON, CSV or XML files to load at startup"`
}

// Validate is called by kong after parsing.
func (c *CLI) Validate() error {
	if c.Rate <= 0 {
		return errors.New("--rate must be greater than zero")
	}
	return nil
}
