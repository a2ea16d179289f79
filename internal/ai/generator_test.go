package ai

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxcopy/maxcopy-backend/internal/models"
)

func TestKnownChannel(t *testing.T) {
	assert.True(t, KnownChannel("ebay"))
	assert.True(t, KnownChannel("shopify"))
	assert.True(t, KnownChannel("instagram"))
	assert.False(t, KnownChannel("etsy"))
	assert.False(t, KnownChannel(""))
}

func TestContentTypeForChannel(t *testing.T) {
	assert.Equal(t, "full_listing", ContentTypeForChannel("ebay"))
	assert.Equal(t, "full_listing", ContentTypeForChannel("shopify"))
	assert.Equal(t, "caption", ContentTypeForChannel("instagram"))
}

func TestBuildPrompt(t *testing.T) {
	sku := "W-1"
	price := decimal.NewFromFloat(9.99)
	prompt := BuildPrompt(ListingRequest{
		Product: models.Product{ID: 1, Name: "Widget", SKU: &sku, Price: &price},
		Channel: "ebay",
	})

	assert.Contains(t, prompt, "eBay full_listing")
	assert.Contains(t, prompt, "Product name: Widget")
	assert.Contains(t, prompt, "SKU: W-1")
	assert.Contains(t, prompt, "Price: 9.99")
	assert.Contains(t, prompt, `"seo_keywords"`)
}

func TestBuildPromptOmitsMissingFields(t *testing.T) {
	prompt := BuildPrompt(ListingRequest{
		Product: models.Product{ID: 2, Name: "Gadget"},
		Channel: "instagram",
	})

	assert.Contains(t, prompt, "Instagram caption")
	assert.NotContains(t, prompt, "SKU:")
	assert.NotContains(t, prompt, "Price:")
}

func TestStubGeneratorIsDeterministic(t *testing.T) {
	gen := StubGenerator{}
	req := ListingRequest{
		Product: models.Product{ID: 1, Name: "Widget"},
		Channel: "ebay",
	}

	payload, err := gen.GenerateListing(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "[DEMO] eBay title for product #1", payload["title"])
	assert.Equal(t, "Demo subtitle generated by AI.", payload["subtitle"])
	assert.Equal(t, "<p>This is a demo eBay listing description.</p>", payload["description_html"])
	assert.Equal(t, []string{"demo", "ebay", "ai"}, payload["seo_keywords"])

	again, err := gen.GenerateListing(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, payload, again)
}

func TestStubGeneratorPerChannel(t *testing.T) {
	gen := StubGenerator{}
	payload, err := gen.GenerateListing(context.Background(), ListingRequest{
		Product: models.Product{ID: 7, Name: "Gadget"},
		Channel: "instagram",
	})
	require.NoError(t, err)
	assert.Equal(t, "[DEMO] Instagram title for product #7", payload["title"])
	assert.Equal(t, []string{"demo", "instagram", "ai"}, payload["seo_keywords"])
}
