package impl

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"
	"nearby/internal/util"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
)

// shareService implements the share recorder. A share is six strictly
// ordered steps: read, append and persist the global share history, then
// read, append and persist the recipient's chat log. Success is reported
// only after the final write; any failure is total from the caller's point
// of view. Calls are serialized per recipient key so concurrent shares to
// the same chat thread cannot lose an update.
type shareService struct {
	store     repository.KVStore
	publisher service.EventPublisher
	logger    *slog.Logger
	locks     *util.KeyedMutex
	now       func() time.Time
}

// NewShareService creates a new share recorder instance.
func NewShareService(store repository.KVStore, publisher service.EventPublisher, logger *slog.Logger) usecase.ShareUsecase {
	return &shareService{
		store:     store,
		publisher: publisher,
		logger:    logger,
		locks:     util.NewKeyedMutex(),
		now:       time.Now,
	}
}

// Share records one share action. Deliberately not idempotent: two calls
// with the same arguments produce two distinct records with fresh ids and
// timestamps, because each call is a distinct user action.
func (s *shareService) Share(ctx context.Context, venue *entity.Venue, recipient entity.Recipient) (*entity.ShareRecord, error) {
	if venue == nil {
		return nil, errors.New("venue is required")
	}
	if recipient.ID == "" {
		return nil, errors.New("recipient id is required")
	}

	// Serialize the whole operation per recipient; the history lock nests
	// inside and is always taken in the same order.
	unlockRecipient := s.locks.Lock(repository.ChatMessagesKey(recipient.ID))
	defer unlockRecipient()

	sharedAt := s.now()
	record := &entity.ShareRecord{
		ID:            uuid.New(),
		CafeID:        venue.ID,
		CafeName:      venue.Name,
		CafeAddress:   venue.Address,
		Coordinate:    venue.Coordinate,
		RecipientID:   recipient.ID,
		RecipientName: recipient.Name,
		SharedAt:      sharedAt,
	}

	if err := s.appendShareRecord(ctx, record); err != nil {
		return nil, err
	}

	message := &entity.ChatMessage{
		ID:        newMessageID(sharedAt),
		Sender:    entity.SenderMe,
		Text:      fmt.Sprintf("Check out %s!", venue.Name),
		Timestamp: sharedAt,
		SharedCafe: &entity.SharedCafe{
			CafeID:      venue.ID,
			CafeName:    venue.Name,
			CafeAddress: venue.Address,
			Coordinate:  venue.Coordinate,
		},
	}

	if err := s.appendChatMessage(ctx, recipient.ID, message); err != nil {
		return nil, err
	}

	s.publishShareEvent(ctx, record)

	return record, nil
}

// History returns the global share-history log, oldest first.
func (s *shareService) History(ctx context.Context) ([]*entity.ShareRecord, error) {
	records, err := readLog[entity.ShareRecord](ctx, s.store, repository.ShareHistoryKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read share history: %w", err)
	}

	return records, nil
}

// Messages returns a recipient's chat log, oldest first.
func (s *shareService) Messages(ctx context.Context, recipientID string) ([]*entity.ChatMessage, error) {
	messages, err := readLog[entity.ChatMessage](ctx, s.store, repository.ChatMessagesKey(recipientID))
	if err != nil {
		return nil, fmt.Errorf("failed to read chat messages: %w", err)
	}

	return messages, nil
}

// appendShareRecord runs steps 1-3: read the history log, append, persist.
func (s *shareService) appendShareRecord(ctx context.Context, record *entity.ShareRecord) error {
	unlock := s.locks.Lock(repository.ShareHistoryKey)
	defer unlock()

	records, err := readLog[entity.ShareRecord](ctx, s.store, repository.ShareHistoryKey)
	if err != nil {
		return domainerrors.NewStorageExecuteError(err, "read share history")
	}

	records = append(records, record)

	if err := writeLog(ctx, s.store, repository.ShareHistoryKey, records); err != nil {
		return domainerrors.NewStorageExecuteError(err, "persist share history")
	}

	return nil
}

// appendChatMessage runs steps 4-6: read the chat log, append, persist.
// The caller already holds the recipient lock.
func (s *shareService) appendChatMessage(ctx context.Context, recipientID string, message *entity.ChatMessage) error {
	key := repository.ChatMessagesKey(recipientID)

	messages, err := readLog[entity.ChatMessage](ctx, s.store, key)
	if err != nil {
		return domainerrors.NewStorageExecuteError(err, "read chat messages")
	}

	messages = append(messages, message)

	if err := writeLog(ctx, s.store, key, messages); err != nil {
		return domainerrors.NewStorageExecuteError(err, "persist chat messages")
	}

	return nil
}

// publishShareEvent emits the share event after both writes are durable.
// Best-effort: a publish failure is logged, never surfaced, because the
// share itself already committed.
func (s *shareService) publishShareEvent(ctx context.Context, record *entity.ShareRecord) {
	event := &service.ShareEvent{
		ShareID:       record.ID.String(),
		CafeID:        record.CafeID,
		CafeName:      record.CafeName,
		RecipientID:   record.RecipientID,
		RecipientName: record.RecipientName,
		Latitude:      record.Coordinate.Latitude,
		Longitude:     record.Coordinate.Longitude,
		SharedAt:      record.SharedAt.Format(time.RFC3339),
	}

	if err := s.publisher.PublishShareEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish share event",
			slog.String("shareId", event.ShareID),
			slog.Any("error", err),
		)
	}
}

// readLog loads a JSON array log from the store; an absent key is an empty
// log, not an error.
func readLog[T any](ctx context.Context, store repository.KVStore, key string) ([]*T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return []*T{}, nil
		}

		return nil, err
	}

	var items []*T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, errors.Wrapf(err, "corrupt log under key %q", key)
	}

	return items, nil
}

// writeLog persists a JSON array log to the store.
func writeLog[T any](ctx context.Context, store repository.KVStore, key string, items []*T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "failed to encode log for key %q", key)
	}

	return store.Set(ctx, key, string(raw))
}

// newMessageID derives a message id from its creation time.
func newMessageID(at time.Time) string {
	entropy := ulid.Monotonic(rand.Reader, 0)

	return ulid.MustNew(ulid.Timestamp(at), entropy).String()
}
