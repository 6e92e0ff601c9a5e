package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goarticle/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		timeout   time.Duration
		userAgent string
		format    string
		verbose   bool
	)

	flag.DurationVar(&timeout, "timeout", app.DefaultTimeout, "Timeout for the article fetch")
	flag.StringVar(&userAgent, "ua", app.DefaultUserAgent, "User-Agent header for the outbound request")
	flag.StringVar(&format, "format", "text", "Output format: text, json, or yaml")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Usage = usage
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	cfg := app.Config{
		UserAgent: userAgent,
		Timeout:   timeout,
	}

	if err := run(cfg, format, flag.Arg(0)); err != nil {
		log.Error().Err(err).Msg("scrape failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: goarticle [flags] <article-url>")
	fmt.Fprintln(os.Stderr, "Example: goarticle https://example.com/news-article")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func run(cfg app.Config, format, url string) error {
	ctx := context.Background()

	scraper := app.New(cfg)
	rec, err := scraper.Scrape(ctx, url)
	if err != nil {
		return err
	}

	out, err := app.Render(rec, format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
