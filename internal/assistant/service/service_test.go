package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shoplight/shoplight/internal/assistant/domain"
	catalogdomain "github.com/shoplight/shoplight/internal/catalog/domain"
	"github.com/shoplight/shoplight/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCatalogRepo struct {
	searchResults []catalogdomain.Product
	recentResults []catalogdomain.Product
	searchErr     error
	searchCalls   int
	recentCalls   int
}

func (f *fakeCatalogRepo) Upsert(ctx context.Context, product *catalogdomain.Product) error {
	return nil
}

func (f *fakeCatalogRepo) SoftDelete(ctx context.Context, productID string) (int64, error) {
	return 0, nil
}

func (f *fakeCatalogRepo) Search(ctx context.Context, query string, limit int) ([]catalogdomain.Product, error) {
	f.searchCalls++
	return f.searchResults, f.searchErr
}

func (f *fakeCatalogRepo) Recent(ctx context.Context, limit int) ([]catalogdomain.Product, error) {
	f.recentCalls++
	return f.recentResults, nil
}

func (f *fakeCatalogRepo) RecordDelivery(ctx context.Context, delivery *catalogdomain.WebhookDelivery) error {
	return nil
}

type fakeResponder struct {
	reply            string
	err              error
	lastSystemPrompt string
	lastUserMessage  string
}

func (f *fakeResponder) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	f.lastSystemPrompt = systemPrompt
	f.lastUserMessage = userMessage
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestService(repo catalogdomain.Repository, responder domain.Responder) domain.Service {
	return New(Params{
		Cfg:       config.Config{ChatContextLimit: 15},
		Log:       zap.NewNop(),
		Repo:      repo,
		Responder: responder,
	})
}

func sampleProduct(id, title string) catalogdomain.Product {
	return catalogdomain.Product{
		ProductID:  id,
		Title:      title,
		Vendor:     "Acme",
		PriceMin:   19.99,
		PriceMax:   24.99,
		Status:     catalogdomain.StatusActive,
		ProductURL: "https://shop.example/products/" + id,
		UpdatedAt:  time.Now().UTC(),
	}
}

func TestBuildContextEmptyQueryUsesRecent(t *testing.T) {
	repo := &fakeCatalogRepo{recentResults: []catalogdomain.Product{sampleProduct("1", "Red Shirt")}}
	svc := newTestService(repo, &fakeResponder{}).(*Service)

	products, rendered := svc.BuildContext(context.Background(), "", 10)

	assert.Len(t, products, 1)
	assert.Equal(t, 0, repo.searchCalls)
	assert.Equal(t, 1, repo.recentCalls)
	assert.Contains(t, rendered, "Red Shirt")
}

func TestBuildContextFallsBackToRecent(t *testing.T) {
	repo := &fakeCatalogRepo{recentResults: []catalogdomain.Product{sampleProduct("1", "Red Shirt")}}
	svc := newTestService(repo, &fakeResponder{}).(*Service)

	products, rendered := svc.BuildContext(context.Background(), "unmatched query", 10)

	// zero search hits must not mean empty context
	assert.Len(t, products, 1)
	assert.Equal(t, 1, repo.searchCalls)
	assert.Equal(t, 1, repo.recentCalls)
	assert.NotContains(t, rendered, "No products available.")
}

func TestBuildContextSearchErrorDegrades(t *testing.T) {
	repo := &fakeCatalogRepo{
		searchErr:     catalogdomain.NewStoreError("search", assert.AnError),
		recentResults: []catalogdomain.Product{sampleProduct("1", "Red Shirt")},
	}
	svc := newTestService(repo, &fakeResponder{}).(*Service)

	products, _ := svc.BuildContext(context.Background(), "shirt", 10)
	assert.Len(t, products, 1)
}

func TestRenderContext(t *testing.T) {
	ranged := sampleProduct("1", "Red Shirt")

	single := sampleProduct("2", "Mug")
	single.PriceMin = 10
	single.PriceMax = 10

	bare := catalogdomain.Product{ProductID: "3", Title: "Mystery Item"}

	rendered := renderContext([]catalogdomain.Product{ranged, single, bare})
	lines := strings.Split(rendered, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "- Red Shirt (Acme) - ₹19.99 to ₹24.99 - https://shop.example/products/1", lines[0])
	assert.Equal(t, "- Mug (Acme) - ₹10 - https://shop.example/products/2", lines[1])
	assert.Equal(t, "- Mystery Item (No vendor) - ₹0 - No URL", lines[2])
}

func TestRenderContextEmpty(t *testing.T) {
	assert.Equal(t, "No products available.", renderContext(nil))
}

func TestChatEmptyMessage(t *testing.T) {
	svc := newTestService(&fakeCatalogRepo{}, &fakeResponder{})

	_, err := svc.Chat(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
}

func TestChatAssemblesContextAndReplies(t *testing.T) {
	repo := &fakeCatalogRepo{searchResults: []catalogdomain.Product{
		sampleProduct("1", "Red Shirt"),
		sampleProduct("2", "Blue Shirt"),
	}}
	responder := &fakeResponder{reply: "We have two shirts in stock."}
	svc := newTestService(repo, responder)

	resp, err := svc.Chat(context.Background(), "Do you have shirts?")
	require.NoError(t, err)

	assert.Equal(t, "We have two shirts in stock.", resp.Reply)
	assert.Equal(t, 2, resp.ProductsUsed)
	assert.Equal(t, "Do you have shirts?", responder.lastUserMessage)
	assert.Contains(t, responder.lastSystemPrompt, "Red Shirt")
	assert.Contains(t, responder.lastSystemPrompt, "shopping assistant")
}

func TestChatResponderFailure(t *testing.T) {
	svc := newTestService(&fakeCatalogRepo{}, &fakeResponder{err: domain.ErrResponderUnavailable})

	_, err := svc.Chat(context.Background(), "hello")
	assert.ErrorIs(t, err, domain.ErrResponderUnavailable)
}
