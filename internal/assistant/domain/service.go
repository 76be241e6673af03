package domain

import (
	"context"
	"errors"
	"fmt"

	catalogdomain "github.com/shoplight/shoplight/internal/catalog/domain"
)

// Responder is the stateless text-completion collaborator behind chat
// replies.
type Responder interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Service answers product questions over the stored catalog.
type Service interface {
	Chat(ctx context.Context, message string) (*ChatResponse, error)
	BuildContext(ctx context.Context, query string, limit int) ([]catalogdomain.Product, string)
}

type ChatResponse struct {
	Reply        string `json:"reply"`
	ProductsUsed int    `json:"productsUsed"`
}

var (
	ErrEmptyMessage = errors.New("invalid_message")
	// ErrResponderUnavailable means no completion backend is configured.
	// There is no meaningful fallback reply, so the chat path hard-fails.
	ErrResponderUnavailable = errors.New("responder_unavailable")
)

// ResponderError wraps a failed completion call.
type ResponderError struct {
	Err error
}

func (e *ResponderError) Error() string {
	return fmt.Sprintf("responder: %v", e.Err)
}

func (e *ResponderError) Unwrap() error { return e.Err }
