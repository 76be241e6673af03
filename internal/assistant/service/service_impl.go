package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shoplight/shoplight/internal/assistant/domain"
	catalogdomain "github.com/shoplight/shoplight/internal/catalog/domain"
	"github.com/shoplight/shoplight/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const systemPromptFormat = `You are a helpful shopping assistant for an online store.
You help customers find products, answer questions about them, and provide recommendations.

Available Products:
%s

Instructions:
- Be friendly and helpful
- If asked about products, use the product list above
- If a product isn't in the list, say it's not currently available
- Include prices when relevant
- Keep responses concise but informative`

type Params struct {
	fx.In

	Cfg       config.Config
	Log       *zap.Logger
	Repo      catalogdomain.Repository
	Responder domain.Responder
}

type Service struct {
	log          *zap.Logger
	repo         catalogdomain.Repository
	responder    domain.Responder
	contextLimit int
}

func New(p Params) domain.Service {
	return &Service{
		log:          p.Log.Named("assistant.service"),
		repo:         p.Repo,
		responder:    p.Responder,
		contextLimit: p.Cfg.ChatContextLimit,
	}
}

func (s *Service) Chat(ctx context.Context, message string) (*domain.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrEmptyMessage
	}

	products, rendered := s.BuildContext(ctx, strings.ToLower(message), s.contextLimit)
	s.log.Info("chat context assembled", zap.Int("products", len(products)))

	reply, err := s.responder.Complete(ctx, fmt.Sprintf(systemPromptFormat, rendered), message)
	if err != nil {
		return nil, err
	}

	return &domain.ChatResponse{
		Reply:        reply,
		ProductsUsed: len(products),
	}, nil
}

// BuildContext picks candidate products for the query and renders a
// bounded context block. A query with no hits falls back to the most
// recently updated products rather than an empty context.
func (s *Service) BuildContext(ctx context.Context, query string, limit int) ([]catalogdomain.Product, string) {
	products := s.search(ctx, query, limit)
	if len(products) == 0 {
		products = s.recent(ctx, limit)
	}
	return products, renderContext(products)
}

func (s *Service) search(ctx context.Context, query string, limit int) []catalogdomain.Product {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	products, err := s.repo.Search(ctx, query, limit)
	if err != nil {
		s.log.Error("product search failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	return products
}

func (s *Service) recent(ctx context.Context, limit int) []catalogdomain.Product {
	products, err := s.repo.Recent(ctx, limit)
	if err != nil {
		s.log.Error("product fetch failed", zap.Error(err))
		return nil
	}
	return products
}

func renderContext(products []catalogdomain.Product) string {
	if len(products) == 0 {
		return "No products available."
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		vendor := p.Vendor
		if vendor == "" {
			vendor = "No vendor"
		}
		url := p.ProductURL
		if url == "" {
			url = "No URL"
		}

		price := "₹" + formatPrice(p.PriceMin)
		if p.PriceMax > p.PriceMin {
			price += " to ₹" + formatPrice(p.PriceMax)
		}

		lines = append(lines, fmt.Sprintf("- %s (%s) - %s - %s", p.Title, vendor, price, url))
	}
	return strings.Join(lines, "\n")
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
