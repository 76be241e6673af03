package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/shoplight/shoplight/internal/catalog/domain"
)

const (
	headerShopifyTopic      = "X-Shopify-Topic"
	headerShopifyShopDomain = "X-Shopify-Shop-Domain"
)

type webhookResponse struct {
	Received bool   `json:"received"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// HandleProductWebhook acknowledges every processable delivery with 200
// so the sender is never induced to retry an internal fault it cannot
// fix. Only an unparseable body is rejected with 400.
func (s *Server) HandleProductWebhook(c *gin.Context) {
	topic := strings.TrimSpace(c.GetHeader(headerShopifyTopic))
	shop := strings.TrimSpace(c.GetHeader(headerShopifyShopDomain))

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	if !json.Valid(payload) {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	outcome := s.catalogSvc.Ingest(c.Request.Context(), catalogdomain.Event{
		Topic:      topic,
		ShopDomain: shop,
		Payload:    payload,
	})
	s.metrics.ObserveWebhook(topic, outcome.Success)

	resp := webhookResponse{Received: true, Success: outcome.Success}
	if outcome.Err != nil {
		resp.Error = outcome.Err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
