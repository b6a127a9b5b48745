package scraper

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

type playwrightSession struct {
	page playwright.Page
}

// NewSession wraps a playwright page as a Session.
func NewSession(page playwright.Page) Session {
	return &playwrightSession{page: page}
}

func (s *playwrightSession) URL() string {
	return s.page.URL()
}

func (s *playwrightSession) Content() (string, error) {
	return s.page.Content()
}

func (s *playwrightSession) Goto(url string) error {
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	return err
}

func (s *playwrightSession) WaitForSelector(selector string, timeout time.Duration) error {
	_, err := s.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return err
}

func (s *playwrightSession) FindAll(selector string) []Element {
	locators, err := s.page.Locator(selector).All()
	if err != nil {
		return nil
	}

	elements := make([]Element, 0, len(locators))
	for _, loc := range locators {
		elements = append(elements, &playwrightElement{loc: loc})
	}
	return elements
}

func (s *playwrightSession) Evaluate(js string) error {
	_, err := s.page.Evaluate(js)
	return err
}

func (s *playwrightSession) PressEscape() error {
	return s.page.Keyboard().Press("Escape")
}

func (s *playwrightSession) Close() error {
	return s.page.Close()
}

type playwrightElement struct {
	loc playwright.Locator
}

func (e *playwrightElement) Attr(name string) string {
	value, err := e.loc.GetAttribute(name)
	if err != nil {
		return ""
	}
	return value
}

func (e *playwrightElement) Text() string {
	text, err := e.loc.TextContent()
	if err != nil {
		return ""
	}
	return text
}

func (e *playwrightElement) Visible() bool {
	visible, err := e.loc.IsVisible()
	return err == nil && visible
}

func (e *playwrightElement) Click() error {
	return e.loc.Click()
}

// ClickJS activates the element from script, which bypasses overlays that
// would intercept a native click.
func (e *playwrightElement) ClickJS() error {
	_, err := e.loc.Evaluate("el => el.click()", nil)
	return err
}

func (e *playwrightElement) ScrollIntoView() error {
	return e.loc.ScrollIntoViewIfNeeded()
}
