package scraper

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// fakeAnchor is an in-memory Element for navigator tests.
type fakeAnchor struct {
	attrs      map[string]string
	text       string
	clicks     int
	jsClicks   int
	clickErr   error
	clickJSErr error
	scrollErr  error
	onActivate func()
}

func (a *fakeAnchor) Attr(name string) string { return a.attrs[name] }
func (a *fakeAnchor) Text() string            { return a.text }
func (a *fakeAnchor) Visible() bool           { return true }
func (a *fakeAnchor) ScrollIntoView() error   { return a.scrollErr }

func (a *fakeAnchor) Click() error {
	a.clicks++
	if a.clickErr != nil {
		return a.clickErr
	}
	if a.onActivate != nil {
		a.onActivate()
	}
	return nil
}

func (a *fakeAnchor) ClickJS() error {
	a.jsClicks++
	if a.clickJSErr != nil {
		return a.clickJSErr
	}
	if a.onActivate != nil {
		a.onActivate()
	}
	return nil
}

// fakePage is one address the fake session can sit on.
type fakePage struct {
	html      string
	anchors   []*fakeAnchor
	hasMarker bool
}

// fakeSession is an in-memory Session over a fixed set of addresses.
type fakeSession struct {
	url     string
	pages   map[string]*fakePage
	gotoErr error
	closed  int
}

func (s *fakeSession) URL() string { return s.url }

func (s *fakeSession) Content() (string, error) {
	page, ok := s.pages[s.url]
	if !ok {
		return "", errors.New("no page at " + s.url)
	}
	return page.html, nil
}

func (s *fakeSession) Goto(url string) error {
	if s.gotoErr != nil {
		return s.gotoErr
	}
	s.url = url
	return nil
}

func (s *fakeSession) WaitForSelector(selector string, timeout time.Duration) error {
	if page, ok := s.pages[s.url]; ok && page.hasMarker {
		return nil
	}
	return errors.New("timeout waiting for " + selector)
}

func (s *fakeSession) FindAll(selector string) []Element {
	if selector != anchorSelector {
		return nil
	}
	page, ok := s.pages[s.url]
	if !ok {
		return nil
	}
	elements := make([]Element, 0, len(page.anchors))
	for _, anchor := range page.anchors {
		elements = append(elements, anchor)
	}
	return elements
}

func (s *fakeSession) Evaluate(js string) error { return nil }
func (s *fakeSession) PressEscape() error       { return nil }

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

func newTestNavigator() *Navigator {
	nav := NewNavigator(0)
	nav.shortDelay = 0
	return nav
}

func holdersHTML(page string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		fmt.Fprintf(&sb, `<div class="prod-holder"><div class="product_name">%s frame %02d</div></div>`, page, i)
	}
	return sb.String()
}
