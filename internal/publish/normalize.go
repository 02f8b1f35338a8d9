package publish

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
)

// listingIntegerFields must be sent to createDraftListing as integers.
var listingIntegerFields = []string{
	"shop_id",
	"taxonomy_id",
	"shipping_profile_id",
	"quantity",
	"processing_min",
	"processing_max",
}

const productionPartnersField = "production_partner_ids"

// Numbers outside these bounds are rejected before any arithmetic that
// would expand their exponent.
const (
	maxIntegerDigits  = 19
	maxFractionDigits = 18
)

var (
	errNotInteger = errors.New("must be an integer")
	errOutOfRange = errors.New("is out of range")
	errNotANumber = errors.New("must be a number")
)

// PropertyRoles declares which property IDs drive price, quantity and SKU
// variance in an inventory update.
type PropertyRoles struct {
	PriceOnProperty    []int64 `json:"price_on_property" yaml:"price_on_property"`
	QuantityOnProperty []int64 `json:"quantity_on_property" yaml:"quantity_on_property"`
	SKUOnProperty      []int64 `json:"sku_on_property" yaml:"sku_on_property"`
}

// DefaultPropertyRoles has price varying by pricePropertyID only.
func DefaultPropertyRoles(pricePropertyID int64) PropertyRoles {
	return PropertyRoles{PriceOnProperty: []int64{pricePropertyID}}
}

// NormalizeListing coerces the listing's identifier-like fields to integers
// and returns the rewritten body with the shop ID. Fields that are absent or
// null are left as they are; every other field is passed through untouched.
func NormalizeListing(raw []byte) (json.RawMessage, int64, error) {
	if err := requireObject(raw); err != nil {
		return nil, 0, err
	}

	out := raw
	for _, field := range listingIntegerFields {
		v := gjson.GetBytes(out, field)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		n, err := toInt(v)
		if err != nil {
			return nil, 0, &InvalidFieldError{Field: field, Reason: err.Error()}
		}
		if out, err = sjson.SetBytes(out, field, n); err != nil {
			return nil, 0, fmt.Errorf("rewriting %s: %w", field, err)
		}
	}

	if v := gjson.GetBytes(out, productionPartnersField); v.Exists() && v.Type != gjson.Null {
		ids, err := toIntList(productionPartnersField, v)
		if err != nil {
			return nil, 0, err
		}
		if out, err = sjson.SetBytes(out, productionPartnersField, ids); err != nil {
			return nil, 0, fmt.Errorf("rewriting %s: %w", productionPartnersField, err)
		}
	}

	shop := gjson.GetBytes(out, "shop_id")
	if shop.Type != gjson.Number {
		return nil, 0, &InvalidFieldError{Field: "shop_id", Reason: "required"}
	}
	return json.RawMessage(out), shop.Int(), nil
}

// NormalizeInventory parses an update-inventory request body
// {listing_id, products[], price_on_property?, quantity_on_property?,
// sku_on_property?}. Role lists the caller leaves out come from defaults.
func NormalizeInventory(raw []byte, defaults PropertyRoles) (*etsy.InventoryUpdate, error) {
	if err := requireObject(raw); err != nil {
		return nil, err
	}

	v := gjson.GetBytes(raw, "listing_id")
	if !v.Exists() || v.Type == gjson.Null {
		return nil, &InvalidFieldError{Field: "listing_id", Reason: "required"}
	}
	listingID, err := toInt(v)
	if err != nil {
		return nil, &InvalidFieldError{Field: "listing_id", Reason: err.Error()}
	}

	update, err := normalizeInventoryBody(raw, defaults)
	if err != nil {
		return nil, err
	}
	update.ListingID = listingID
	return update, nil
}

// normalizeInventoryBody handles everything but listing_id, which the
// pipeline only learns after the listing is created.
func normalizeInventoryBody(raw []byte, defaults PropertyRoles) (*etsy.InventoryUpdate, error) {
	if err := requireObject(raw); err != nil {
		return nil, err
	}

	products := gjson.GetBytes(raw, "products")
	if !products.IsArray() {
		return nil, &InvalidFieldError{Field: "products", Reason: "must be an array"}
	}
	normalized, err := normalizeProducts([]byte(products.Raw))
	if err != nil {
		return nil, err
	}

	update := &etsy.InventoryUpdate{
		Products:           normalized,
		PriceOnProperty:    slices.Clone(defaults.PriceOnProperty),
		QuantityOnProperty: slices.Clone(defaults.QuantityOnProperty),
		SKUOnProperty:      slices.Clone(defaults.SKUOnProperty),
	}

	roles := []struct {
		field string
		dst   *[]int64
	}{
		{"price_on_property", &update.PriceOnProperty},
		{"quantity_on_property", &update.QuantityOnProperty},
		{"sku_on_property", &update.SKUOnProperty},
	}
	for _, r := range roles {
		v := gjson.GetBytes(raw, r.field)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		ids, err := toIntList(r.field, v)
		if err != nil {
			return nil, err
		}
		*r.dst = ids
	}

	return update, nil
}

// normalizeProducts coerces offering prices to decimal numbers and offering
// quantities and property IDs to integers.
func normalizeProducts(products []byte) (json.RawMessage, error) {
	out := products

	for i, product := range gjson.ParseBytes(products).Array() {
		if !product.IsObject() {
			return nil, &InvalidFieldError{Field: fmt.Sprintf("products[%d]", i), Reason: "must be an object"}
		}

		for j, offering := range product.Get("offerings").Array() {
			if price := offering.Get("price"); price.Exists() && price.Type != gjson.Null {
				d, err := toDecimal(price)
				if err != nil {
					return nil, &InvalidFieldError{
						Field:  fmt.Sprintf("products[%d].offerings[%d].price", i, j),
						Reason: err.Error(),
					}
				}
				path := fmt.Sprintf("%d.offerings.%d.price", i, j)
				var setErr error
				if out, setErr = sjson.SetRawBytes(out, path, []byte(d.String())); setErr != nil {
					return nil, fmt.Errorf("rewriting %s: %w", path, setErr)
				}
			}

			if qty := offering.Get("quantity"); qty.Exists() && qty.Type != gjson.Null {
				n, err := toInt(qty)
				if err != nil {
					return nil, &InvalidFieldError{
						Field:  fmt.Sprintf("products[%d].offerings[%d].quantity", i, j),
						Reason: err.Error(),
					}
				}
				path := fmt.Sprintf("%d.offerings.%d.quantity", i, j)
				var setErr error
				if out, setErr = sjson.SetBytes(out, path, n); setErr != nil {
					return nil, fmt.Errorf("rewriting %s: %w", path, setErr)
				}
			}
		}

		for k, pv := range product.Get("property_values").Array() {
			id := pv.Get("property_id")
			if !id.Exists() || id.Type == gjson.Null {
				continue
			}
			n, err := toInt(id)
			if err != nil {
				return nil, &InvalidFieldError{
					Field:  fmt.Sprintf("products[%d].property_values[%d].property_id", i, k),
					Reason: err.Error(),
				}
			}
			path := fmt.Sprintf("%d.property_values.%d.property_id", i, k)
			var setErr error
			if out, setErr = sjson.SetBytes(out, path, n); setErr != nil {
				return nil, fmt.Errorf("rewriting %s: %w", path, setErr)
			}
		}
	}

	return json.RawMessage(out), nil
}

func requireObject(raw []byte) error {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return &InvalidFieldError{Field: "body", Reason: "must be a JSON object"}
	}
	return nil
}

func toIntList(field string, v gjson.Result) ([]int64, error) {
	if !v.IsArray() {
		return nil, &InvalidFieldError{Field: field, Reason: "must be an array"}
	}
	elems := v.Array()
	ids := make([]int64, 0, len(elems))
	for i, e := range elems {
		n, err := toInt(e)
		if err != nil {
			return nil, &InvalidFieldError{Field: fmt.Sprintf("%s[%d]", field, i), Reason: err.Error()}
		}
		ids = append(ids, n)
	}
	return ids, nil
}

// toInt accepts JSON numbers and numeric strings with no fractional part.
func toInt(v gjson.Result) (int64, error) {
	d, err := toDecimal(v)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, errNotInteger
	}
	if !d.BigInt().IsInt64() {
		return 0, errOutOfRange
	}
	return d.IntPart(), nil
}

func toDecimal(v gjson.Result) (decimal.Decimal, error) {
	var s string
	switch v.Type {
	case gjson.Number:
		s = v.Raw
	case gjson.String:
		s = strings.TrimSpace(v.Str)
	default:
		return decimal.Decimal{}, errNotANumber
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errNotANumber
	}
	if err := checkMagnitude(d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// checkMagnitude bounds the digits on each side of the decimal point using
// only the coefficient and exponent, so 1e2000000000 is never expanded.
func checkMagnitude(d decimal.Decimal) error {
	exp := int64(d.Exponent())
	if exp < -maxFractionDigits {
		return errOutOfRange
	}
	if int64(d.NumDigits())+exp > maxIntegerDigits {
		return errOutOfRange
	}
	return nil
}
