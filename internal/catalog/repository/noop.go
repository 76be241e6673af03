package repository

import (
	"context"

	"github.com/shoplight/shoplight/internal/catalog/domain"
	"go.uber.org/zap"
)

// noopRepo stands in when the store is unconfigured or unreachable.
// Mutations succeed with empty results and queries return nothing, so
// events are still acknowledged in a development/offline setup.
type noopRepo struct {
	log *zap.Logger
}

func (r *noopRepo) Upsert(ctx context.Context, product *domain.Product) error {
	r.log.Debug("store unavailable, skipping upsert", zap.String("product_id", product.ProductID))
	return nil
}

func (r *noopRepo) SoftDelete(ctx context.Context, productID string) (int64, error) {
	r.log.Debug("store unavailable, skipping soft delete", zap.String("product_id", productID))
	return 0, nil
}

func (r *noopRepo) Search(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	return nil, nil
}

func (r *noopRepo) Recent(ctx context.Context, limit int) ([]domain.Product, error) {
	return nil, nil
}

func (r *noopRepo) RecordDelivery(ctx context.Context, delivery *domain.WebhookDelivery) error {
	return nil
}
