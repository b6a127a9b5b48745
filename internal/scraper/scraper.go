package scraper

import (
	"errors"
	"time"
)

const (
	// ProductMarkerSelector is the container whose presence signals that
	// catalog content for the current page has finished loading.
	ProductMarkerSelector = "#product-list-container"

	anchorSelector       = "a"
	overlaySelector      = ".fancybox-overlay"
	overlayCloseSelector = ".fancybox-close, .modal-close, .close, [aria-label='Close']"
)

var ErrMarkerNotFound = errors.New("product list marker not found")

// Session is the live browsing state a scrape exclusively owns for its
// duration. Current URL and DOM are always read from the session on demand,
// never cached across calls.
type Session interface {
	URL() string
	Content() (string, error)
	Goto(url string) error
	WaitForSelector(selector string, timeout time.Duration) error
	FindAll(selector string) []Element
	Evaluate(js string) error
	PressEscape() error
	Close() error
}

// Element is one matched node on the session's current page.
type Element interface {
	Attr(name string) string
	Text() string
	Visible() bool
	Click() error
	ClickJS() error
	ScrollIntoView() error
}
