package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lensware/framesdirect-scraper/internal/models"
)

// Selectors for the FramesDirect catalog markup.
const (
	productHolderSelector = "div.prod-holder"
	catalogInfoSelector   = "div.catalog-container"
	catalogNameSelector   = "div.catalog-name"
	productNameSelector   = "div.product_name"
	discountSelector      = "div.frame-discount"
	priceWrapSelector     = "div.prod-price-wrap"
	retailPriceSelector   = "div.prod-catalog-retail-price"
	discountPriceSelector = "div.prod-aslowas"
)

type FramesDirectParser struct {
	priceRe *regexp.Regexp
}

func NewFramesDirectParser() *FramesDirectParser {
	return &FramesDirectParser{
		priceRe: regexp.MustCompile(`[\d,.]+`),
	}
}

// ParseProducts extracts one ProductRecord per product holder in document
// order. Missing sub-elements degrade the affected fields to nil; a holder
// is never dropped, and malformed HTML does not fail the parse.
func (p *FramesDirectParser) ParseProducts(html string) ([]models.ProductRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	records := make([]models.ProductRecord, 0)
	doc.Find(productHolderSelector).Each(func(i int, holder *goquery.Selection) {
		retail, discounted := p.extractPrices(holder)
		records = append(records, models.ProductRecord{
			Brand:           p.extractBrand(holder),
			ProductName:     p.extractName(holder),
			RetailPrice:     retail,
			DiscountedPrice: discounted,
			Discount:        p.extractDiscount(holder),
		})
	})

	return records, nil
}

// extractBrand reads the catalog name inside the holder's catalog info
// container. Either container missing means no brand.
func (p *FramesDirectParser) extractBrand(holder *goquery.Selection) *string {
	info := holder.Find(catalogInfoSelector).First()
	if info.Length() == 0 {
		return nil
	}

	name := info.Find(catalogNameSelector).First()
	if name.Length() == 0 {
		return nil
	}

	brand := strings.TrimSpace(name.Text())
	return &brand
}

func (p *FramesDirectParser) extractName(holder *goquery.Selection) *string {
	tag := holder.Find(productNameSelector).First()
	if tag.Length() == 0 {
		return nil
	}

	name := strings.TrimSpace(tag.Text())
	return &name
}

// extractDiscount strips whitespace and non-breaking spaces from the
// discount label; a label that is empty after stripping counts as absent.
func (p *FramesDirectParser) extractDiscount(holder *goquery.Selection) *string {
	tag := holder.Find(discountSelector).First()
	if tag.Length() == 0 {
		return nil
	}

	discount := strings.TrimSpace(strings.ReplaceAll(tag.Text(), "\u00a0", ""))
	if discount == "" {
		return nil
	}
	return &discount
}

// extractPrices reads retail and discounted prices independently from the
// holder's price wrap. A missing wrap yields both absent; a price node with
// no numeric run yields absent, not zero.
func (p *FramesDirectParser) extractPrices(holder *goquery.Selection) (retail, discounted *string) {
	wrap := holder.Find(priceWrapSelector).First()
	if wrap.Length() == 0 {
		return nil, nil
	}

	retail = p.extractAmount(wrap.Find(retailPriceSelector).First())
	discounted = p.extractAmount(wrap.Find(discountPriceSelector).First())
	return retail, discounted
}

// extractAmount returns the first contiguous run of digits, commas and
// periods in the node's text, with thousands-separator commas stripped.
func (p *FramesDirectParser) extractAmount(node *goquery.Selection) *string {
	if node.Length() == 0 {
		return nil
	}

	match := p.priceRe.FindString(node.Text())
	if match == "" {
		return nil
	}

	amount := strings.ReplaceAll(match, ",", "")
	return &amount
}
