package domain

import (
	"strconv"
	"strings"
	"time"
)

// Normalize maps a raw Shopify payload plus the shop domain from the
// webhook header into a complete canonical record. Pure, no I/O.
func Normalize(raw RawProduct, shopDomain string) (Product, error) {
	productID := strings.TrimSpace(raw.ID.String())
	if productID == "" {
		return Product{}, ErrProductIDRequired
	}

	priceMin, priceMax := priceBounds(raw.Variants)

	status := strings.TrimSpace(raw.Status)
	if status == "" {
		status = StatusActive
	}

	return Product{
		ProductID:   productID,
		Title:       raw.Title,
		Vendor:      raw.Vendor,
		ProductType: raw.ProductType,
		PriceMin:    priceMin,
		PriceMax:    priceMax,
		Status:      status,
		Tags:        raw.Tags,
		ProductURL:  productURL(raw.Handle, shopDomain),
		UpdatedAt:   updatedAt(raw.UpdatedAt),
	}, nil
}

// priceBounds derives min/max over the variant prices that parse as
// non-negative numbers. Both bounds are zero when no valid price exists.
func priceBounds(variants []RawVariant) (float64, float64) {
	var (
		min, max float64
		found    bool
	)
	for _, v := range variants {
		price, err := strconv.ParseFloat(strings.TrimSpace(v.Price.String()), 64)
		if err != nil || price < 0 {
			continue
		}
		if !found {
			min, max = price, price
			found = true
			continue
		}
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}
	return min, max
}

func productURL(handle, shopDomain string) string {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return ""
	}

	cleanShop := strings.TrimSpace(shopDomain)
	cleanShop = strings.TrimPrefix(cleanShop, "https://")
	cleanShop = strings.TrimPrefix(cleanShop, "http://")
	if cleanShop == "" {
		return "/products/" + handle
	}
	return "https://" + cleanShop + "/products/" + handle
}

// updatedAt keeps the source timestamp when it parses, otherwise the
// wall clock at normalization.
func updatedAt(source string) time.Time {
	source = strings.TrimSpace(source)
	if source != "" {
		if ts, err := time.Parse(time.RFC3339, source); err == nil {
			return ts.UTC()
		}
	}
	return time.Now().UTC()
}
