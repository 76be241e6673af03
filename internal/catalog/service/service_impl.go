package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shoplight/shoplight/internal/catalog/domain"
	"github.com/shoplight/shoplight/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Cfg   config.Config
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

// Service is the ingestion coordinator: it routes an event by topic,
// sequences the store call and settles every event with an outcome. The
// acknowledgment is synchronous: the caller waits for the store work,
// bounded by the configured timeout, so updates are never silently
// dropped by an early response.
type Service struct {
	log     *zap.Logger
	repo    domain.Repository
	genID   *snowflake.Node
	timeout time.Duration
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("catalog.service"),
		repo:    p.Repo,
		genID:   p.GenID,
		timeout: p.Cfg.WebhookTimeout,
	}
}

func (s *Service) Ingest(ctx context.Context, event domain.Event) domain.Outcome {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	outcome := s.route(ctx, event)

	if outcome.Err != nil {
		s.log.Error("webhook event settled with failure",
			zap.String("topic", event.Topic),
			zap.String("shop", event.ShopDomain),
			zap.String("product_id", outcome.ProductID),
			zap.Error(outcome.Err),
		)
	} else {
		s.log.Info("webhook event settled",
			zap.String("topic", event.Topic),
			zap.String("product_id", outcome.ProductID),
		)
	}

	s.recordDelivery(ctx, event, outcome)
	return outcome
}

func (s *Service) route(ctx context.Context, event domain.Event) domain.Outcome {
	switch event.Topic {
	case domain.TopicProductDelete:
		return s.handleDelete(ctx, event)
	case domain.TopicProductCreate, domain.TopicProductUpdate:
		return s.handleUpsert(ctx, event)
	default:
		s.log.Info("unhandled webhook topic", zap.String("topic", event.Topic))
		return domain.Outcome{Success: true}
	}
}

func (s *Service) handleUpsert(ctx context.Context, event domain.Event) domain.Outcome {
	raw, err := domain.ParseProduct(event.Payload)
	if err != nil {
		return domain.Outcome{Err: err}
	}

	product, err := domain.Normalize(raw, event.ShopDomain)
	if err != nil {
		return domain.Outcome{Err: err}
	}

	if err := s.repo.Upsert(ctx, &product); err != nil {
		return domain.Outcome{ProductID: product.ProductID, Err: err}
	}
	return domain.Outcome{ProductID: product.ProductID, Success: true}
}

// handleDelete extracts the identifier only; no full normalization is
// needed to flip a row to deleted.
func (s *Service) handleDelete(ctx context.Context, event domain.Event) domain.Outcome {
	raw, err := domain.ParseProduct(event.Payload)
	if err != nil {
		return domain.Outcome{Err: err}
	}

	productID := raw.ID.String()
	if productID == "" {
		return domain.Outcome{Err: domain.ErrProductIDRequired}
	}

	rows, err := s.repo.SoftDelete(ctx, productID)
	if err != nil {
		return domain.Outcome{ProductID: productID, Err: err}
	}
	if rows == 0 {
		s.log.Info("delete matched no rows", zap.String("product_id", productID))
	}
	return domain.Outcome{ProductID: productID, Success: true}
}

// recordDelivery appends the settled outcome to the delivery log. Best
// effort: a logging failure never changes the outcome, and the write is
// detached from the event deadline so a timed-out event still gets its
// failure recorded.
func (s *Service) recordDelivery(ctx context.Context, event domain.Event, outcome domain.Outcome) {
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	delivery := &domain.WebhookDelivery{
		ID:         s.genID.Generate().Int64(),
		Topic:      event.Topic,
		ShopDomain: event.ShopDomain,
		ProductID:  outcome.ProductID,
		Success:    outcome.Success,
		CreatedAt:  time.Now().UTC(),
	}
	if outcome.Err != nil {
		delivery.Error = outcome.Err.Error()
	}

	if err := s.repo.RecordDelivery(logCtx, delivery); err != nil {
		s.log.Warn("delivery log write failed", zap.Error(err))
	}
}
