// Package repository defines the persistence interfaces the domain depends on.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned by Get when no value exists for a key.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the durable key-value storage the share recorder writes
// through. Both persisted logs (the global share history and the
// per-recipient chat logs) are JSON array strings under a single key, so
// the interface stays a plain string get/set; serialization of concurrent
// read-modify-write cycles is the caller's responsibility.
type KVStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}

// Well-known keys used by the share recorder.
const (
	// ShareHistoryKey holds the global share-history log.
	ShareHistoryKey = "share_history"

	// ChatMessagesKeyPrefix prefixes the per-recipient chat message logs.
	ChatMessagesKeyPrefix = "chat_messages_"
)

// ChatMessagesKey returns the chat log key for a recipient.
func ChatMessagesKey(recipientID string) string {
	return ChatMessagesKeyPrefix + recipientID
}
