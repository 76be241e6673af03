package domain

import (
	"context"
)

// Repository is the narrow gateway over the durable store. Atomicity of
// the upsert is delegated to the store's native conflict handling; the
// gateway holds no locks of its own.
type Repository interface {
	// Upsert inserts or replaces the whole row keyed on product_id.
	Upsert(ctx context.Context, product *Product) error
	// SoftDelete flips status to deleted and refreshes updated_at.
	// A zero-row match is not an error.
	SoftDelete(ctx context.Context, productID string) (int64, error)
	// Search matches the query case-insensitively against title, vendor,
	// product_type and tags, excluding soft-deleted rows.
	Search(ctx context.Context, query string, limit int) ([]Product, error)
	// Recent returns non-deleted rows ordered by updated_at descending.
	Recent(ctx context.Context, limit int) ([]Product, error)
	// RecordDelivery appends a settled webhook outcome to the delivery log.
	RecordDelivery(ctx context.Context, delivery *WebhookDelivery) error
}
