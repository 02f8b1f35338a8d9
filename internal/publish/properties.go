package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Property names looked up by ResolveProperties.
const (
	sizePropertyName      = "size"
	printTypePropertyName = "print type"
)

// PropertyResolution maps the size and print type properties of a listing's
// taxonomy to their numeric IDs. A nil ID means the taxonomy has no such
// property.
type PropertyResolution struct {
	ListingID           int64           `json:"listing_id"`
	TaxonomyID          int64           `json:"taxonomy_id"`
	SizePropertyID      *int64          `json:"size_property_id"`
	PrintTypePropertyID *int64          `json:"print_type_property_id"`
	Inventory           json.RawMessage `json:"inventory,omitempty"`
}

// ResolveProperties fetches the listing, then its taxonomy's properties, and
// returns the IDs of the "size" and "print type" properties together with the
// listing's current inventory. Results are not cached.
func (p *Pipeline) ResolveProperties(ctx context.Context, listingID int64) (*PropertyResolution, error) {
	listing, err := p.gateway.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	tax := gjson.GetBytes(listing, "taxonomy_id")
	if tax.Type != gjson.Number || tax.Int() == 0 {
		return nil, fmt.Errorf("listing %d: %w", listingID, ErrNoTaxonomy)
	}

	props, err := p.gateway.GetTaxonomyProperties(ctx, tax.Int())
	if err != nil {
		return nil, err
	}

	res := &PropertyResolution{
		ListingID:           listingID,
		TaxonomyID:          tax.Int(),
		SizePropertyID:      findProperty(props, sizePropertyName),
		PrintTypePropertyID: findProperty(props, printTypePropertyName),
	}
	if inv := gjson.GetBytes(listing, "inventory"); inv.Exists() && inv.Type != gjson.Null {
		res.Inventory = json.RawMessage(inv.Raw)
	}

	p.log.Debug("properties resolved",
		"listing_id", listingID,
		"taxonomy_id", res.TaxonomyID,
		"size_found", res.SizePropertyID != nil,
		"print_type_found", res.PrintTypePropertyID != nil,
	)
	return res, nil
}

// findProperty scans results[] for a case-insensitive name match.
func findProperty(props json.RawMessage, name string) *int64 {
	var found *int64
	gjson.GetBytes(props, "results").ForEach(func(_, prop gjson.Result) bool {
		if !strings.EqualFold(strings.TrimSpace(prop.Get("name").String()), name) {
			return true
		}
		id := prop.Get("property_id")
		if id.Type != gjson.Number {
			return true
		}
		v := id.Int()
		found = &v
		return false
	})
	return found
}
