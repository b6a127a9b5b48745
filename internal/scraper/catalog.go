package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lensware/framesdirect-scraper/internal/browser"
	"github.com/lensware/framesdirect-scraper/internal/config"
	"github.com/lensware/framesdirect-scraper/internal/models"
	"github.com/lensware/framesdirect-scraper/internal/parser"
)

// CatalogScraper walks the paginated catalog with a single browsing session,
// strictly sequential: fetch, parse, navigate, repeat.
type CatalogScraper struct {
	browser       *browser.Browser
	openSession   func(url string) (Session, error)
	parser        parser.Parser
	nav           *Navigator
	logger        *slog.Logger
	markerTimeout time.Duration
	settleDelay   time.Duration
	maxRetries    int
}

func NewCatalogScraper(b *browser.Browser, cfg config.ScraperConfig) *CatalogScraper {
	cs := &CatalogScraper{
		browser:       b,
		parser:        parser.NewFramesDirectParser(),
		nav:           NewNavigator(cfg.SettleDelay),
		logger:        slog.Default().With("component", "catalog_scraper"),
		markerTimeout: cfg.MarkerTimeout,
		settleDelay:   cfg.SettleDelay,
		maxRetries:    cfg.MaxRetries,
	}
	cs.openSession = cs.openPlaywrightSession
	return cs
}

// openPlaywrightSession opens a fresh page and loads the start URL on it.
// When navigation never succeeds the page is closed here, so the caller
// only ever owns a session that actually reached the catalog.
func (cs *CatalogScraper) openPlaywrightSession(url string) (Session, error) {
	page, err := cs.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	if err := cs.browser.NavigateWithRetry(page, url, cs.maxRetries); err != nil {
		page.Close()
		return nil, fmt.Errorf("failed to fetch start page: %w", err)
	}

	return NewSession(page), nil
}

// Scrape opens a fresh session, walks the catalog up to maxPages and returns
// every record extracted along the way, in page-visit order. The session is
// closed exactly once, on every exit path. An error is returned only when
// the initial page never becomes available; later failures end the walk
// early and the partial results are returned as-is.
func (cs *CatalogScraper) Scrape(ctx context.Context, startURL string, maxPages int) ([]models.ProductRecord, error) {
	cs.logger.Info("visiting start page", "url", startURL)

	session, err := cs.openSession(startURL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := session.Close(); err != nil {
			cs.logger.Warn("failed to close session", "error", err)
		}
	}()

	return cs.run(ctx, session, maxPages)
}

// run drives the parse/advance loop over an already-open session.
func (cs *CatalogScraper) run(ctx context.Context, session Session, maxPages int) ([]models.ProductRecord, error) {
	cs.logger.Info("waiting for product list marker")
	if err := session.WaitForSelector(ProductMarkerSelector, cs.markerTimeout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarkerNotFound, err)
	}

	records := make([]models.ProductRecord, 0)
	pagesScraped := 0

	for pagesScraped < maxPages {
		select {
		case <-ctx.Done():
			cs.logger.Warn("scrape cancelled, returning partial results", "records", len(records))
			return records, nil
		default:
		}

		pageNum := cs.nav.CurrentPageNumber(session)

		html, err := session.Content()
		if err != nil {
			cs.logger.Error("failed to read page content, returning partial results", "page", pageNum, "error", err)
			return records, nil
		}

		pageRecords, err := cs.parser.ParseProducts(html)
		if err != nil {
			cs.logger.Error("failed to parse page, returning partial results", "page", pageNum, "error", err)
			return records, nil
		}

		cs.logger.Info("scraped page", "page", pageNum, "records", len(pageRecords))
		records = append(records, pageRecords...)
		pagesScraped++

		if pagesScraped >= maxPages {
			break
		}

		cs.logger.Info("advancing to next page", "from", pageNum)
		if !cs.nav.AdvancePage(session, cs.markerTimeout) {
			// Control absence or non-advancement is how the last page
			// announces itself; there is no total-page-count signal.
			cs.logger.Info("could not advance, stopping", "pages_scraped", pagesScraped)
			break
		}

		time.Sleep(cs.settleDelay)
	}

	cs.logger.Info("scrape finished", "pages_scraped", pagesScraped, "records", len(records))
	return records, nil
}
