package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// RawProduct is the narrowly typed shape parsed out of a webhook payload.
// Shopify sends much more; only the fields the canonical record derives
// from are decoded, everything else is dropped at the parse step.
type RawProduct struct {
	ID          FlexString   `json:"id"`
	Title       string       `json:"title"`
	Vendor      string       `json:"vendor"`
	ProductType string       `json:"product_type"`
	Handle      string       `json:"handle"`
	Status      string       `json:"status"`
	Tags        string       `json:"tags"`
	UpdatedAt   string       `json:"updated_at"`
	Variants    []RawVariant `json:"variants"`
}

type RawVariant struct {
	Price FlexString `json:"price"`
}

// FlexString accepts a JSON string or number and keeps it as a string.
// Shopify product ids exceed float64 precision, so the numeric form must
// never round-trip through a float; variant prices arrive either quoted
// or bare depending on the sender.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// ParseProduct decodes a raw webhook body into the typed payload.
func ParseProduct(payload json.RawMessage) (RawProduct, error) {
	var raw RawProduct
	if err := json.Unmarshal(payload, &raw); err != nil {
		return RawProduct{}, err
	}
	return raw, nil
}
