// Package service defines interfaces for external collaborators consumed by
// the usecase layer.
package service

import (
	"context"
)

// ShareEvent is emitted after a share has been durably recorded. Consumers
// (e.g. the chat backend) receive it asynchronously; delivery is
// best-effort and never blocks the share itself.
type ShareEvent struct {
	RequestID     string  `json:"request_id,omitempty"` // For distributed tracing
	ShareID       string  `json:"share_id"`
	CafeID        string  `json:"cafe_id"`
	CafeName      string  `json:"cafe_name"`
	RecipientID   string  `json:"recipient_id"`
	RecipientName string  `json:"recipient_name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	SharedAt      string  `json:"shared_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishShareEvent publishes a share event for async processing
	PublishShareEvent(ctx context.Context, event *ShareEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
