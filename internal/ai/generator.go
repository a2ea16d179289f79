package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxcopy/maxcopy-backend/internal/models"
)

// Supported publishing channels.
const (
	ChannelEbay      = "ebay"
	ChannelShopify   = "shopify"
	ChannelInstagram = "instagram"
)

var channelDisplayNames = map[string]string{
	ChannelEbay:      "eBay",
	ChannelShopify:   "Shopify",
	ChannelInstagram: "Instagram",
}

// KnownChannel reports whether the given channel can be generated for.
func KnownChannel(channel string) bool {
	_, ok := channelDisplayNames[channel]
	return ok
}

// ContentTypeForChannel maps a channel to the content type its listing
// generation produces.
func ContentTypeForChannel(channel string) string {
	if channel == ChannelInstagram {
		return "caption"
	}
	return "full_listing"
}

// ListingRequest carries everything a generator needs to produce a listing
// for one product on one channel.
type ListingRequest struct {
	Product   models.Product
	Channel   string
	ModelName string
}

// ListingGenerator is the seam to the external content provider: prompt in,
// structured JSON payload out, may fail. The service layer persists nothing
// when it fails.
type ListingGenerator interface {
	GenerateListing(ctx context.Context, req ListingRequest) (models.JSONMap, error)
}

// BuildPrompt renders the provider prompt from the product fields.
func BuildPrompt(req ListingRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s %s for the following product.\n",
		channelDisplayNames[req.Channel], ContentTypeForChannel(req.Channel))
	fmt.Fprintf(&b, "Product name: %s\n", req.Product.Name)
	if req.Product.SKU != nil {
		fmt.Fprintf(&b, "SKU: %s\n", *req.Product.SKU)
	}
	if req.Product.Price != nil {
		fmt.Fprintf(&b, "Price: %s\n", req.Product.Price.StringFixed(2))
	}
	b.WriteString("Respond with a JSON object containing the keys " +
		`"title", "subtitle", "description_html" and "seo_keywords" (a list of strings).`)
	return b.String()
}

// StubGenerator fabricates a deterministic placeholder payload instead of
// calling a real provider. It keeps the same contract, so a real generator
// can replace it without touching the service layer.
type StubGenerator struct{}

func (StubGenerator) GenerateListing(_ context.Context, req ListingRequest) (models.JSONMap, error) {
	display := channelDisplayNames[req.Channel]
	return models.JSONMap{
		"title":            fmt.Sprintf("[DEMO] %s title for product #%d", display, req.Product.ID),
		"subtitle":         "Demo subtitle generated by AI.",
		"description_html": fmt.Sprintf("<p>This is a demo %s listing description.</p>", display),
		"seo_keywords":     []string{"demo", req.Channel, "ai"},
	}, nil
}
