package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holderHTML(inner string) string {
	return `<div class="prod-holder">` + inner + `</div>`
}

func TestParseProductsFullHolder(t *testing.T) {
	parser := NewFramesDirectParser()

	html := holderHTML(`
		<div class="catalog-container">
			<div class="catalog-name"> Ray-Ban </div>
		</div>
		<div class="product_name">RB5154 Clubmaster</div>
		<div class="frame-discount">30%&nbsp;Off</div>
		<div class="prod-price-wrap">
			<div class="prod-catalog-retail-price">$1,234.56</div>
			<div class="prod-aslowas">As low as $864.19</div>
		</div>`)

	records, err := parser.ParseProducts(html)
	require.NoError(t, err)
	require.Len(t, records, 1)

	record := records[0]
	require.NotNil(t, record.Brand)
	assert.Equal(t, "Ray-Ban", *record.Brand)
	require.NotNil(t, record.ProductName)
	assert.Equal(t, "RB5154 Clubmaster", *record.ProductName)
	require.NotNil(t, record.RetailPrice)
	assert.Equal(t, "1234.56", *record.RetailPrice)
	require.NotNil(t, record.DiscountedPrice)
	assert.Equal(t, "864.19", *record.DiscountedPrice)
	require.NotNil(t, record.Discount)
	assert.Equal(t, "30%Off", *record.Discount)
}

func TestParseProductsFieldFallbacks(t *testing.T) {
	parser := NewFramesDirectParser()

	t.Run("empty holder still produces a record", func(t *testing.T) {
		records, err := parser.ParseProducts(holderHTML(``))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].Brand)
		assert.Nil(t, records[0].ProductName)
		assert.Nil(t, records[0].RetailPrice)
		assert.Nil(t, records[0].DiscountedPrice)
		assert.Nil(t, records[0].Discount)
	})

	t.Run("missing catalog name means no brand", func(t *testing.T) {
		records, err := parser.ParseProducts(holderHTML(`<div class="catalog-container"></div>`))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].Brand)
	})

	t.Run("missing price wrap leaves both prices absent", func(t *testing.T) {
		records, err := parser.ParseProducts(holderHTML(`<div class="product_name">Frame</div>`))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].RetailPrice)
		assert.Nil(t, records[0].DiscountedPrice)
	})

	t.Run("retail price without discounted price", func(t *testing.T) {
		records, err := parser.ParseProducts(holderHTML(`
			<div class="prod-price-wrap">
				<div class="prod-catalog-retail-price">$1,234.56</div>
			</div>`))
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.NotNil(t, records[0].RetailPrice)
		assert.Equal(t, "1234.56", *records[0].RetailPrice)
		assert.Nil(t, records[0].DiscountedPrice)
	})

	t.Run("price node without digits yields absent", func(t *testing.T) {
		records, err := parser.ParseProducts(holderHTML(`
			<div class="prod-price-wrap">
				<div class="prod-catalog-retail-price">Call for price</div>
			</div>`))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].RetailPrice)
	})

	t.Run("discount of whitespace and nbsp only is absent", func(t *testing.T) {
		records, err := parser.ParseProducts(holderHTML(`<div class="frame-discount"> &nbsp; </div>`))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].Discount)
	})
}

func TestParseProductsCountAndOrder(t *testing.T) {
	parser := NewFramesDirectParser()

	var sb strings.Builder
	for i := 0; i < 24; i++ {
		sb.WriteString(holderHTML(fmt.Sprintf(`<div class="product_name">Frame %02d</div>`, i)))
	}

	records, err := parser.ParseProducts(sb.String())
	require.NoError(t, err)
	require.Len(t, records, 24)

	for i, record := range records {
		require.NotNil(t, record.ProductName)
		assert.Equal(t, fmt.Sprintf("Frame %02d", i), *record.ProductName)
	}
}

func TestParseProductsNoHolders(t *testing.T) {
	parser := NewFramesDirectParser()

	records, err := parser.ParseProducts(`<html><body><p>maintenance page</p></body></html>`)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseProductsMalformedHTML(t *testing.T) {
	parser := NewFramesDirectParser()

	// Truncated markup still parses; the holder keeps what it has.
	records, err := parser.ParseProducts(`<div class="prod-holder"><div class="product_name">Aviator`)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].ProductName)
	assert.Equal(t, "Aviator", *records[0].ProductName)
}
