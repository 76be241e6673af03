package repository

import (
	"context"
	"strings"
	"time"

	"github.com/shoplight/shoplight/internal/catalog/domain"
	"github.com/shoplight/shoplight/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	db *gorm.DB
}

// Provide returns the gorm-backed gateway, or a no-op gateway when the
// store handle is detached so the pipeline keeps running offline.
func Provide(handle *db.Handle, log *zap.Logger) domain.Repository {
	conn, ok := handle.Get()
	if !ok {
		return &noopRepo{log: log.Named("catalog.repository")}
	}
	return &repo{db: conn}
}

func (r *repo) Upsert(ctx context.Context, product *domain.Product) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			UpdateAll: true,
		}).
		Create(product).Error
	return domain.NewStoreError("upsert", err)
}

func (r *repo) SoftDelete(ctx context.Context, productID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("product_id = ?", productID).
		Updates(map[string]any{
			"status":     domain.StatusDeleted,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, domain.NewStoreError("soft_delete", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *repo) Search(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	term := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var items []domain.Product
	err := r.db.WithContext(ctx).
		Where("status <> ?", domain.StatusDeleted).
		Where(
			"LOWER(title) LIKE ? OR LOWER(vendor) LIKE ? OR LOWER(product_type) LIKE ? OR LOWER(tags) LIKE ?",
			term, term, term, term,
		).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, domain.NewStoreError("search", err)
	}
	return items, nil
}

func (r *repo) Recent(ctx context.Context, limit int) ([]domain.Product, error) {
	var items []domain.Product
	err := r.db.WithContext(ctx).
		Where("status <> ?", domain.StatusDeleted).
		Order("updated_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, domain.NewStoreError("recent", err)
	}
	return items, nil
}

func (r *repo) RecordDelivery(ctx context.Context, delivery *domain.WebhookDelivery) error {
	err := r.db.WithContext(ctx).Create(delivery).Error
	return domain.NewStoreError("record_delivery", err)
}
