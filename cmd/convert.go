// Package cmd — convert command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → normalize → cleanup → render → write.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/docscraper/core"
	"github.com/gaurav-prasanna/docscraper/core/cleanup"
	"github.com/gaurav-prasanna/docscraper/core/extract"
	"github.com/gaurav-prasanna/docscraper/core/fetch"
	"github.com/gaurav-prasanna/docscraper/core/normalize"
	"github.com/gaurav-prasanna/docscraper/core/output"
	"github.com/gaurav-prasanna/docscraper/core/render"
	"github.com/gaurav-prasanna/docscraper/crawl"
)

// Flag variables.
var (
	flagPDF         bool
	flagMarkdown    bool
	flagJSON        bool
	flagNoVerifySSL bool
	flagAll         bool
	flagMaxPages    int
)

var convertCmd = &cobra.Command{
	Use:   "convert <url-or-file>",
	Short: "Convert a documentation page to clean Markdown",
	Long: `Convert fetches a page (or reads a saved HTML file), extracts the main
content, converts it to Markdown, normalizes it and writes the result to the
output directory as Markdown (default), PDF or JSON.

Examples:
  docscraper convert https://kubernetes.io/docs/tasks/run-application/
  docscraper convert saved/install.html --pdf
  docscraper convert https://internal.example.com/docs --no-verify-ssl --output_dir ./out
  docscraper convert https://example.com/docs/ --all --max-pages 50`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown (default)")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	convertCmd.MarkFlagsMutuallyExclusive("markdown", "pdf", "json")

	convertCmd.Flags().BoolVar(&flagAll, "all", false, "Also convert every page below the URL (sitemap.xml or link crawl)")
	convertCmd.Flags().IntVar(&flagMaxPages, "max-pages", crawl.DefaultMaxPages, "Page limit for --all")
	convertCmd.Flags().BoolVar(&flagNoVerifySSL, "no-verify-ssl", false, "Disable SSL certificate verification (URLs only)")
	convertCmd.Flags().String("output_dir", output.DefaultDir, "Output directory")
	convertCmd.Flags().Duration("timeout", fetch.DefaultTimeout, "HTTP request timeout")
	_ = viper.BindPFlag(keyOutputDir, convertCmd.Flags().Lookup("output_dir"))
	_ = viper.BindPFlag(keyTimeout, convertCmd.Flags().Lookup("timeout"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]
	cfg := loadConfig(viper.GetViper())
	if flagNoVerifySSL {
		cfg.VerifySSL = false
	}

	renderer := selectRenderer()
	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	p := newPipeline(cfg, renderer, logger)
	out := cmd.OutOrStdout()

	if flagAll {
		if !fetch.IsURL(source) {
			return fmt.Errorf("%w: --all needs an http(s) URL", core.ErrInvalidSource)
		}
		return runAll(cmd, p, writer, source, cfg)
	}

	fmt.Fprintf(out, "Reading content from %s...\n", source)
	data, err := p.process(cmd.Context(), source)
	if err != nil {
		return explain(err, cfg)
	}

	path, err := writer.Write(source, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Written: %s\n", path)
	return nil
}

// runAll discovers the pages below source and converts each of them. Output
// files mirror the page paths below the section.
// Failed pages are reported and skipped; the run only fails when no page
// could be written.
func runAll(cmd *cobra.Command, p *pipeline, writer *output.Writer, source string, cfg Config) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(out, "Discovering pages from %s...\n", source)
	pages, err := crawl.NewDiscoverer(p.fetcher, flagMaxPages, p.logger).Discover(ctx, source)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", explain(err, cfg))
	}
	fmt.Fprintf(out, "Found %d pages to process\n", len(pages))

	start, err := url.Parse(source)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidSource, err)
	}
	prefix := crawl.NewScope(start).Prefix

	var failed int
	for i, page := range pages {
		fmt.Fprintf(out, "[%d/%d] Processing %s\n", i+1, len(pages), page)

		data, err := p.process(ctx, page)
		if err == nil {
			var path string
			if path, err = writer.WriteAll(page, prefix, data, p.renderer.Extension()); err == nil {
				fmt.Fprintf(out, "  ✓ Written: %s\n", path)
				continue
			}
		}
		failed++
		fmt.Fprintf(cmd.ErrOrStderr(), "  ✗ Error: %v\n", err)
	}

	if failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%d/%d pages failed\n", failed, len(pages))
	}
	if failed == len(pages) {
		return fmt.Errorf("no page of %s could be converted", source)
	}
	return nil
}

// selectRenderer creates the Renderer chosen by flags.
func selectRenderer() core.Renderer {
	switch {
	case flagPDF:
		return render.NewPDFRenderer()
	case flagJSON:
		return render.NewJSONRenderer()
	default:
		return render.NewMarkdownRenderer()
	}
}

// explain adds the hints the user needs for common fetch failures.
func explain(err error, cfg Config) error {
	switch {
	case errors.Is(err, core.ErrTLSVerify):
		return fmt.Errorf("%w\nTip: Try running with --no-verify-ssl if you trust this site", err)
	case errors.Is(err, core.ErrTimeout):
		return fmt.Errorf("%w (limit %s)", err, cfg.Timeout)
	}
	return err
}

// pipeline wires the stages for one run.
type pipeline struct {
	fetcher    core.Fetcher
	extractor  core.Extractor
	normalizer core.Normalizer
	cleaner    *cleanup.Cleaner
	renderer   core.Renderer
	logger     *slog.Logger
}

func newPipeline(cfg Config, renderer core.Renderer, logger *slog.Logger) *pipeline {
	return &pipeline{
		fetcher: fetch.New(fetch.Options{
			Timeout:            cfg.Timeout,
			UserAgent:          cfg.UserAgent,
			InsecureSkipVerify: !cfg.VerifySSL,
			Retries:            cfg.Retries,
			Logger:             logger,
		}),
		extractor:  extract.New(),
		normalizer: normalize.New(),
		cleaner:    cleanup.New(cfg.Vocabulary()),
		renderer:   renderer,
		logger:     logger,
	}
}

// process runs a single source through the full pipeline.
func (p *pipeline) process(ctx context.Context, source string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Fetch
	result, err := p.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	// 2. Extract main content
	content, err := p.extractor.Extract(result.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	// 3. Normalize to raw Markdown
	raw, err := p.normalizer.Normalize(content)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	// 4. Clean up
	cleaned := p.cleaner.Process(raw)
	p.logger.Debug("cleaned markdown",
		"source", source,
		"code_blocks", cleaned.Stats.CodeBlocks,
		"yaml_blocks", cleaned.Stats.YAMLBlocks,
		"commands", cleaned.Stats.Commands,
		"tables", cleaned.Stats.Tables,
		"headers", cleaned.Stats.Headers,
	)
	if strings.TrimSpace(cleaned.Markdown) == "" {
		return nil, fmt.Errorf("cleanup: %w", core.ErrEmptyMarkdown)
	}

	// 5. Render
	title, lang := extract.Metadata(result.HTML)
	meta := core.PageMetadata{
		Source:    source,
		Title:     title,
		Language:  lang,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := p.renderer.Render(cleaned.Markdown, meta)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}
