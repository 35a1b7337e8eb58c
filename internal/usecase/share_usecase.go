package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// ShareUsecase records a venue-to-recipient share durably: one entry in the
// global share history and one shared-venue message in the recipient's chat
// log, as a single logical operation. Not idempotent: every call is a
// distinct user action and produces fresh log entries.
type ShareUsecase interface {
	// Share appends to the share history, then to the recipient's chat
	// log, in strict order. It returns only after both writes are
	// durable; any failure is total from the caller's point of view.
	Share(ctx context.Context, venue *entity.Venue, recipient entity.Recipient) (*entity.ShareRecord, error)

	// History returns the global share-history log, oldest first.
	History(ctx context.Context) ([]*entity.ShareRecord, error)

	// Messages returns a recipient's chat log, oldest first.
	Messages(ctx context.Context, recipientID string) ([]*entity.ChatMessage, error)
}
