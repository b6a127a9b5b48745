package scraper

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// pageParamRe matches the page-index query parameter in a catalog address,
// e.g. /eyeglasses/?p=3&type=pagestate.
var pageParamRe = regexp.MustCompile(`[?&]p=(\d+)`)

// nextControlStrategies is the ordered fallback chain for locating the
// next-page control among the page's anchors. Each strategy is a pure
// predicate; a later strategy is consulted only when every earlier one
// matched nothing.
var nextControlStrategies = []struct {
	name  string
	match func(a Element, nextPage int) bool
}{
	{
		name: "aria-label next page",
		match: func(a Element, _ int) bool {
			return a.Attr("aria-label") == "next page"
		},
	},
	{
		name: "aria-label nextpage",
		match: func(a Element, _ int) bool {
			return a.Attr("aria-label") == "nextpage"
		},
	},
	{
		name: "chevron class, next text or page param",
		match: func(a Element, _ int) bool {
			return strings.Contains(a.Attr("class"), "icon-cheveron-right") ||
				strings.Contains(a.Text(), "next") ||
				strings.Contains(a.Attr("href"), "p=")
		},
	},
	{
		name: "explicit next page param",
		match: func(a Element, nextPage int) bool {
			return strings.Contains(a.Attr("href"), fmt.Sprintf("p=%d", nextPage))
		},
	},
}

// Navigator advances a live session through the paginated catalog. It owns
// no state of its own; everything is read from the session it is handed.
type Navigator struct {
	logger      *slog.Logger
	settleDelay time.Duration
	shortDelay  time.Duration
}

func NewNavigator(settleDelay time.Duration) *Navigator {
	return &Navigator{
		logger:      slog.Default().With("component", "navigator"),
		settleDelay: settleDelay,
		shortDelay:  time.Second,
	}
}

// CurrentPageNumber reads the page-index parameter from the session's
// current address. It never fails: a missing or unparsable parameter means
// page 1.
func (n *Navigator) CurrentPageNumber(s Session) int {
	return pageNumberFromURL(s.URL())
}

func pageNumberFromURL(raw string) int {
	match := pageParamRe.FindStringSubmatch(raw)
	if match == nil {
		return 1
	}

	page, err := strconv.Atoi(match[1])
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// AdvancePage tries to move the session to the next catalog page and
// reports whether it actually advanced. A false result is a normal outcome
// on the last page, not an error. Success means the address changed or the
// page number strictly increased.
func (n *Navigator) AdvancePage(s Session, timeout time.Duration) bool {
	beforeURL := s.URL()
	beforePage := n.CurrentPageNumber(s)

	control, strategy := n.findNextControl(s, beforePage+1)
	if control == nil {
		n.logger.Info("no next page control found", "page", beforePage)
		return false
	}
	n.logger.Info("found next page control", "strategy", strategy)

	href := control.Attr("href")
	if href == "" || strings.Contains(href, "javascript:") {
		n.logger.Info("next page control has no usable target", "href", href)
		return false
	}

	n.DismissOverlays(s)

	if !n.activate(s, control, href) {
		return false
	}

	time.Sleep(n.settleDelay)

	if err := s.WaitForSelector(ProductMarkerSelector, timeout); err != nil {
		n.logger.Warn("product marker not found after navigation, continuing", "error", err)
	}

	afterPage := n.CurrentPageNumber(s)
	if s.URL() != beforeURL || afterPage > beforePage {
		n.logger.Info("navigated to next page", "page", afterPage)
		return true
	}

	n.logger.Info("navigation did not advance", "page", beforePage)
	return false
}

func (n *Navigator) findNextControl(s Session, nextPage int) (Element, string) {
	anchors := s.FindAll(anchorSelector)

	for _, strategy := range nextControlStrategies {
		for _, anchor := range anchors {
			if strategy.match(anchor, nextPage) {
				return anchor, strategy.name
			}
		}
	}

	return nil, ""
}

// activate tries the click tactics in order, moving to the next tactic only
// when the previous one returned an error.
func (n *Navigator) activate(s Session, control Element, href string) bool {
	if err := control.ClickJS(); err == nil {
		n.logger.Debug("scripted click succeeded")
		return true
	} else {
		n.logger.Warn("scripted click failed", "error", err)
	}

	if err := s.Goto(href); err == nil {
		n.logger.Debug("direct navigation succeeded", "href", href)
		return true
	} else {
		n.logger.Warn("direct navigation failed", "error", err)
	}

	if err := control.ScrollIntoView(); err != nil {
		n.logger.Warn("scroll into view failed", "error", err)
		n.logger.Info("all click tactics failed")
		return false
	}
	time.Sleep(n.shortDelay)
	n.DismissOverlays(s)

	if err := control.Click(); err == nil {
		n.logger.Debug("native click succeeded")
		return true
	} else {
		n.logger.Warn("native click failed", "error", err)
	}

	n.logger.Info("all click tactics failed")
	return false
}

// DismissOverlays closes popups and modals that could intercept a click.
// Best effort: every failure here is swallowed.
func (n *Navigator) DismissOverlays(s Session) {
	for _, overlay := range s.FindAll(overlaySelector) {
		if overlay.Visible() {
			n.logger.Debug("closing fancybox overlay")
			if err := s.Evaluate("jQuery.fancybox.close();"); err != nil {
				n.logger.Debug("fancybox close failed", "error", err)
			}
			time.Sleep(n.shortDelay)
			break
		}
	}

	for _, button := range s.FindAll(overlayCloseSelector) {
		if button.Visible() {
			if err := button.Click(); err != nil {
				n.logger.Debug("overlay close button click failed", "error", err)
			}
			time.Sleep(n.shortDelay / 2)
		}
	}

	if err := s.PressEscape(); err == nil {
		time.Sleep(n.shortDelay / 2)
	}
}
