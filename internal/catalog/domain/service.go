package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	TopicProductCreate = "products/create"
	TopicProductUpdate = "products/update"
	TopicProductDelete = "products/delete"
)

// Event is one inbound webhook delivery: topic and shop from the
// transport headers, the body still raw.
type Event struct {
	Topic      string
	ShopDomain string
	Payload    json.RawMessage
}

// Outcome is the settled result of an event. Failures carry the error so
// the transport can report it while still acknowledging the sender.
type Outcome struct {
	ProductID string
	Success   bool
	Err       error
}

// Service sequences an event from receipt to a settled outcome.
type Service interface {
	Ingest(ctx context.Context, event Event) Outcome
}

var (
	ErrProductIDRequired = errors.New("product_id_required")
)

// StoreError wraps a failed store operation with the provider detail.
// It is surfaced to the coordinator, never swallowed.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
