package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobfetch"
	"github.com/fwojciec/jobfetch/fs"
	"github.com/fwojciec/jobfetch/goquery"
	"github.com/fwojciec/jobfetch/html"
	jobhttp "github.com/fwojciec/jobfetch/http"
	"github.com/fwojciec/jobfetch/jsonld"
	"github.com/fwojciec/jobfetch/scrape"
	jobslog "github.com/fwojciec/jobfetch/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cookie file used when --cookies is not given. Set before calling Run().
	CookiePath string

	// Configuration files read in order, later files winning. Missing files
	// are skipped.
	ConfigPaths []string

	// HTTP client for remote pages. Uses a default client if nil.
	Client *http.Client
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CookiePath:  defaultCookiePath(),
		ConfigPaths: []string{"~/.config/jobfetch/config.yaml", "./jobfetch.yaml"},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobfetch"),
		kong.Description("Extract job postings into folders of plain text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(YAMLLoader, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	// Remote pages
	fetchOpts := []jobhttp.Option{
		jobhttp.WithTimeout(cli.Timeout),
		jobhttp.WithRetryDelay(cli.RetryDelay),
		jobhttp.WithLimiter(jobhttp.NewSiteLimiter(cli.Rate)),
		jobhttp.WithLogger(logger),
	}
	if m.Client != nil {
		fetchOpts = append(fetchOpts, jobhttp.WithClient(m.Client))
	}
	cookiePath := cli.Cookies
	if cookiePath == "" {
		cookiePath = m.CookiePath
	}
	if jar := loadCookies(cookiePath, cli.Cookies != "", logger); jar != nil {
		fetchOpts = append(fetchOpts, jobhttp.WithCookieJar(jar))
	}

	// Extraction strategies
	registry := html.NewRegistry(jobslog.NewLoggingExtractor(html.NewIndeedExtractor(), "indeed", logger))
	registry.Register(jobfetch.SiteLinkedIn, jobslog.NewLoggingExtractor(html.NewLinkedInExtractor(), "linkedin", logger))

	deps.Scraper = &scrape.Scraper{
		Sources:    fs.NewResolver(),
		Local:      jobslog.NewLoggingFetcher(fs.NewFetcher(), logger),
		Remote:     jobslog.NewLoggingFetcher(jobhttp.NewFetcher(fetchOpts...), logger),
		Structured: jobslog.NewLoggingExtractor(jsonld.NewExtractor(jsonld.WithLogger(logger)), "json-ld", logger),
		Extractors: registry,
		Detector:   jobslog.NewLoggingDetector(goquery.NewDetector(), logger),
	}

	// Job folders
	writerOpts := []fs.WriterOption{fs.WithWidth(cli.Width)}
	if cli.Templates != "" {
		writerOpts = append(writerOpts, fs.WithPrompts(fs.NewTemplateStore(cli.Templates), cli.French))
	}
	deps.Writer = jobslog.NewLoggingWriter(fs.NewWriter(cli.Out, writerOpts...), logger)

	cmd := &ScrapeCmd{
		Sources:     cli.Sources,
		DryRun:      cli.DryRun,
		Concurrency: cli.Concurrency,
	}

	return cmd.Run(deps)
}

// loadCookies reads the Netscape cookie file at path. A missing file is
// only worth a warning when the user named it explicitly. Any failure
// leaves the fetcher without cookies.
func loadCookies(path string, explicit bool, logger *slog.Logger) http.CookieJar {
	if path == "" {
		return nil
	}
	jar, err := jobhttp.LoadCookieJar(path)
	if err == nil {
		logger.Debug("loaded cookies", "path", path)
		return jar
	}
	if jobfetch.ErrorCode(err) == jobfetch.ENOTFOUND && !explicit {
		logger.Debug("no cookie file", "path", path)
		return nil
	}
	logger.Warn("ignoring cookie file", "path", path, "err", errorMessage(err))
	return nil
}

// defaultCookiePath returns <user config dir>/jobfetch/cookies.txt.
func defaultCookiePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jobfetch", "cookies.txt")
}

// errorMessage returns the message shown to the user for err. Application
// errors carry their own message; anything else is shown as is.
func errorMessage(err error) string {
	var e *jobfetch.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
