package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCreatePayload(t *testing.T) {
	payload := []byte(`{
		"id": 123,
		"title": "Red Shirt",
		"handle": "red-shirt",
		"variants": [{"price": "19.99"}, {"price": "24.99"}]
	}`)

	raw, err := ParseProduct(payload)
	require.NoError(t, err)

	product, err := Normalize(raw, "my-store.myshopify.com")
	require.NoError(t, err)

	assert.Equal(t, "123", product.ProductID)
	assert.Equal(t, "Red Shirt", product.Title)
	assert.Equal(t, 19.99, product.PriceMin)
	assert.Equal(t, 24.99, product.PriceMax)
	assert.Equal(t, "https://my-store.myshopify.com/products/red-shirt", product.ProductURL)
	assert.Equal(t, StatusActive, product.Status)
}

func TestNormalizeMissingID(t *testing.T) {
	for name, payload := range map[string]string{
		"null id":   `{"id": null, "title": "x"}`,
		"absent id": `{"title": "x"}`,
		"blank id":  `{"id": "  "}`,
	} {
		t.Run(name, func(t *testing.T) {
			raw, err := ParseProduct([]byte(payload))
			require.NoError(t, err)

			_, err = Normalize(raw, "")
			assert.ErrorIs(t, err, ErrProductIDRequired)
		})
	}
}

func TestNormalizeLargeNumericID(t *testing.T) {
	// Shopify ids exceed float64 precision; the digits must survive.
	raw, err := ParseProduct([]byte(`{"id": 9007199254740993}`))
	require.NoError(t, err)

	product, err := Normalize(raw, "")
	require.NoError(t, err)
	assert.Equal(t, "9007199254740993", product.ProductID)
}

func TestNormalizePriceBounds(t *testing.T) {
	tests := []struct {
		name     string
		variants []RawVariant
		min, max float64
	}{
		{"no variants", nil, 0, 0},
		{"single price", []RawVariant{{Price: "10.50"}}, 10.50, 10.50},
		{"unordered", []RawVariant{{Price: "24.99"}, {Price: "19.99"}}, 19.99, 24.99},
		{"invalid discarded", []RawVariant{{Price: "abc"}, {Price: ""}, {Price: "5"}}, 5, 5},
		{"negative discarded", []RawVariant{{Price: "-3"}, {Price: "7"}}, 7, 7},
		{"all invalid", []RawVariant{{Price: "n/a"}, {Price: "-1"}}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := Normalize(RawProduct{ID: "1", Variants: tt.variants}, "")
			require.NoError(t, err)
			assert.Equal(t, tt.min, product.PriceMin)
			assert.Equal(t, tt.max, product.PriceMax)
			assert.LessOrEqual(t, product.PriceMin, product.PriceMax)
			assert.GreaterOrEqual(t, product.PriceMin, 0.0)
		})
	}
}

func TestNormalizeNumericVariantPrice(t *testing.T) {
	raw, err := ParseProduct([]byte(`{"id": 1, "variants": [{"price": 12.5}]}`))
	require.NoError(t, err)

	product, err := Normalize(raw, "")
	require.NoError(t, err)
	assert.Equal(t, 12.5, product.PriceMin)
}

func TestNormalizeProductURL(t *testing.T) {
	tests := []struct {
		name   string
		handle string
		shop   string
		want   string
	}{
		{"no handle", "", "my-store.myshopify.com", ""},
		{"with shop", "red-shirt", "my-store.myshopify.com", "https://my-store.myshopify.com/products/red-shirt"},
		{"strips https scheme", "red-shirt", "https://my-store.myshopify.com", "https://my-store.myshopify.com/products/red-shirt"},
		{"strips http scheme", "red-shirt", "http://my-store.myshopify.com", "https://my-store.myshopify.com/products/red-shirt"},
		{"no shop", "red-shirt", "", "/products/red-shirt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := Normalize(RawProduct{ID: "1", Handle: tt.handle}, tt.shop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, product.ProductURL)
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	product, err := Normalize(RawProduct{ID: "42"}, "")
	require.NoError(t, err)

	assert.Equal(t, "42", product.ProductID)
	assert.Equal(t, "", product.Title)
	assert.Equal(t, "", product.Vendor)
	assert.Equal(t, "", product.ProductType)
	assert.Equal(t, 0.0, product.PriceMin)
	assert.Equal(t, 0.0, product.PriceMax)
	assert.Equal(t, StatusActive, product.Status)
	assert.Equal(t, "", product.Tags)
	assert.Equal(t, "", product.ProductURL)
	assert.WithinDuration(t, time.Now().UTC(), product.UpdatedAt, 5*time.Second)
}

func TestNormalizeStatusPassthrough(t *testing.T) {
	product, err := Normalize(RawProduct{ID: "1", Status: StatusDraft}, "")
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, product.Status)
}

func TestNormalizeKeepsSourceTimestamp(t *testing.T) {
	product, err := Normalize(RawProduct{ID: "1", UpdatedAt: "2024-06-01T10:00:00Z"}, "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), product.UpdatedAt)
}

func TestNormalizeDeterministic(t *testing.T) {
	raw := RawProduct{
		ID:        "9",
		Title:     "Mug",
		UpdatedAt: "2024-06-01T10:00:00Z",
		Variants:  []RawVariant{{Price: "4.20"}},
	}

	first, err := Normalize(raw, "shop.example")
	require.NoError(t, err)
	second, err := Normalize(raw, "shop.example")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseProductStringID(t *testing.T) {
	raw, err := ParseProduct([]byte(`{"id": "abc-123"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc-123", raw.ID.String())
}

func TestParseProductRejectsMalformedShape(t *testing.T) {
	_, err := ParseProduct(json.RawMessage(`{"variants": "not-a-list"}`))
	assert.Error(t, err)
}
