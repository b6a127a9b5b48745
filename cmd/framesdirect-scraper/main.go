package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/lensware/framesdirect-scraper/internal/browser"
	"github.com/lensware/framesdirect-scraper/internal/config"
	"github.com/lensware/framesdirect-scraper/internal/export"
	"github.com/lensware/framesdirect-scraper/internal/scraper"
)

func main() {
	var (
		url      = flag.String("url", "", "Catalog URL to scrape (default: SCRAPER_START_URL)")
		pages    = flag.Int("pages", 0, "Number of pages to scrape (0 prompts interactively)")
		csvPath  = flag.String("csv", "", "CSV output path (default: OUTPUT_CSV_PATH)")
		jsonPath = flag.String("json", "", "JSON output path (default: OUTPUT_JSON_PATH)")
		headless = flag.Bool("headless", true, "Run browser in headless mode")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *url != "" {
		cfg.Scraper.StartURL = *url
	}
	if *csvPath != "" {
		cfg.Output.CSVPath = *csvPath
	}
	if *jsonPath != "" {
		cfg.Output.JSONPath = *jsonPath
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := newLogger(cfg.Logging).With("run", uuid.NewString())
	slog.SetDefault(logger)

	maxPages := *pages
	if maxPages <= 0 {
		maxPages = promptPageCount(os.Stdin, os.Stdout)
		if maxPages < 1 {
			fmt.Println("Cancelled.")
			return
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutdown signal received")
		cancel()
	}()

	browserOpts := browser.DefaultOptions()
	browserOpts.Headless = *headless && cfg.Browser.Headless
	browserOpts.Timeout = cfg.Browser.Timeout
	browserOpts.ViewportWidth = cfg.Browser.ViewportWidth
	browserOpts.ViewportHeight = cfg.Browser.ViewportHeight
	browserOpts.AcceptLanguage = cfg.Browser.AcceptLanguage
	browserOpts.TimezoneID = cfg.Browser.TimezoneID
	browserOpts.Locale = cfg.Browser.Locale

	b, err := browser.New(browserOpts)
	if err != nil {
		logger.Error("failed to initialize browser", "error", err)
		os.Exit(1)
	}
	defer b.Close()

	logger.Info("starting scrape", "url", cfg.Scraper.StartURL, "max_pages", maxPages)

	cs := scraper.NewCatalogScraper(b, cfg.Scraper)
	records, err := cs.Scrape(ctx, cfg.Scraper.StartURL, maxPages)
	if err != nil {
		logger.Error("scrape aborted", "error", err)
	}

	written, err := export.WriteCSV(records, cfg.Output.CSVPath)
	if err != nil {
		logger.Error("failed to write CSV", "error", err)
	} else if !written {
		logger.Info("CSV skipped, no records")
	}

	if err := export.WriteJSON(records, cfg.Output.JSONPath); err != nil {
		logger.Error("failed to write JSON", "error", err)
	}

	logger.Info("done", "records", len(records))
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// promptPageCount asks how many pages to scrape. Empty input defaults to one
// page, invalid input re-prompts, and counts above 100 need confirmation.
// Returns 0 when input ends without an answer.
func promptPageCount(r io.Reader, w io.Writer) int {
	scanner := bufio.NewScanner(r)

	for {
		fmt.Fprint(w, "How many pages would you like to scrape? (default=1): ")
		if !scanner.Scan() {
			return 0
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			return 1
		}

		pages, err := strconv.Atoi(input)
		if err != nil || pages < 1 {
			fmt.Fprintln(w, "Please enter a number greater than 0")
			continue
		}

		if pages > 100 {
			fmt.Fprintf(w, "Scraping %d pages might take a long time. Continue? (y/n): ", pages)
			if !scanner.Scan() {
				return 0
			}
			confirm := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if confirm != "y" && confirm != "yes" {
				continue
			}
		}

		return pages
	}
}
