package etsy

import "encoding/json"

// InventoryUpdate is the body of PUT /listings/{listing_id}/inventory.
// Every property ID used in a product's property_values must appear in the
// role list that matches how it varies, or Etsy rejects the update.
type InventoryUpdate struct {
	ListingID          int64           `json:"-"`
	Products           json.RawMessage `json:"products"`
	PriceOnProperty    []int64         `json:"price_on_property"`
	QuantityOnProperty []int64         `json:"quantity_on_property"`
	SKUOnProperty      []int64         `json:"sku_on_property"`
}

// MarshalJSON writes empty role lists as [] rather than null.
func (u InventoryUpdate) MarshalJSON() ([]byte, error) {
	type alias InventoryUpdate
	a := alias(u)
	if a.PriceOnProperty == nil {
		a.PriceOnProperty = []int64{}
	}
	if a.QuantityOnProperty == nil {
		a.QuantityOnProperty = []int64{}
	}
	if a.SKUOnProperty == nil {
		a.SKUOnProperty = []int64{}
	}
	if len(a.Products) == 0 {
		a.Products = json.RawMessage("[]")
	}
	return json.Marshal(a)
}

// MediaFile is an in-memory image or video ready for upload.
type MediaFile struct {
	Data     []byte
	Filename string
	MimeType string
}
