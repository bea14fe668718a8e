package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobfetch"
	"github.com/fwojciec/jobfetch/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Scraper *scrape.Scraper
	Writer  jobfetch.JobWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Sources     []string        `arg:"" name:"source" help:"Job posting URLs or saved HTML files"`
	Out         string          `short:"o" default:"." help:"Base directory for job folders"`
	Cookies     string          `env:"JOBFETCH_COOKIES" help:"Netscape cookie file (default: <config dir>/jobfetch/cookies.txt)"`
	Templates   string          `env:"JOBFETCH_TEMPLATES" help:"Directory holding templates/ and templates_vf/; writes prompt.txt when set"`
	French      bool            `help:"Use the French templates"`
	Width       int             `default:"80" help:"Wrap the description at this column"`
	Timeout     time.Duration   `default:"30s" help:"Timeout per request"`
	RetryDelay  time.Duration   `default:"1s" help:"Delay before retrying a throttled request"`
	Rate        float64         `default:"1" help:"Requests per second per domain (0 disables)"`
	Concurrency int             `short:"c" default:"1" help:"Inputs processed at once"`
	DryRun      bool            `help:"Print the job instead of writing files"`
	Verbose     bool            `short:"v" help:"Log debug output"`
	Config      kong.ConfigFlag `help:"Load flags from a YAML file"`
}
