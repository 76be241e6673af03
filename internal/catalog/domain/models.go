package domain

import (
	"time"
)

const (
	StatusActive   = "active"
	StatusDraft    = "draft"
	StatusArchived = "archived"
	// StatusDeleted is the terminal soft-delete marker. It is set only by
	// the delete path and stays until a later upsert overwrites the row.
	StatusDeleted = "deleted"
)

// Product is the canonical record derived from a Shopify payload. Every
// field has a defined default; a normalized product is always complete so
// the upsert can replace the whole row.
type Product struct {
	ProductID   string    `json:"product_id" gorm:"column:product_id;primaryKey;type:text"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Vendor      string    `json:"vendor" gorm:"type:text;not null"`
	ProductType string    `json:"product_type" gorm:"type:text;not null"`
	PriceMin    float64   `json:"price_min" gorm:"not null"`
	PriceMax    float64   `json:"price_max" gorm:"not null"`
	Status      string    `json:"status" gorm:"type:text;not null"`
	Tags        string    `json:"tags" gorm:"type:text;not null"`
	ProductURL  string    `json:"product_url" gorm:"type:text;not null"`
	// autoUpdateTime is disabled: updated_at carries the source-supplied
	// timestamp, not the write time.
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;autoUpdateTime:false"`
}

func (Product) TableName() string { return "products" }

// WebhookDelivery records the settled outcome of one inbound webhook
// event, kept for diagnostics without replaying the event.
type WebhookDelivery struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	Topic      string    `json:"topic" gorm:"type:text;not null"`
	ShopDomain string    `json:"shop_domain" gorm:"type:text;not null"`
	ProductID  string    `json:"product_id" gorm:"type:text;not null"`
	Success    bool      `json:"success" gorm:"not null"`
	Error      string    `json:"error" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
}

func (WebhookDelivery) TableName() string { return "webhook_deliveries" }
