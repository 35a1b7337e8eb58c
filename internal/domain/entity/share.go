package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShareRecord is an append-only log entry recording that a venue was shared
// with a recipient. Records are created by the share recorder and never
// mutated or deleted afterwards; retention is out of scope.
type ShareRecord struct {
	ID            uuid.UUID  `json:"id"`
	CafeID        string     `json:"cafeId"`
	CafeName      string     `json:"cafeName"`
	CafeAddress   string     `json:"cafeAddress"`
	Coordinate    Coordinate `json:"coordinate"`
	RecipientID   string     `json:"recipientId"`
	RecipientName string     `json:"recipientName"`
	SharedAt      time.Time  `json:"sharedAt"`
}

// SenderMe is the sentinel sender value meaning "the local user".
const SenderMe = "me"

// SharedCafe is the venue payload carried by a shared-venue chat message.
type SharedCafe struct {
	CafeID      string     `json:"cafeId"`
	CafeName    string     `json:"cafeName"`
	CafeAddress string     `json:"cafeAddress"`
	Coordinate  Coordinate `json:"coordinate"`
}

// ChatMessage is produced, not owned, by this subsystem: ownership transfers
// to the chat screen once the message is appended to a recipient's log.
// Timestamp marshals as RFC 3339, matching the ISO-8601 wire contract.
type ChatMessage struct {
	ID         string      `json:"id"`
	Sender     string      `json:"sender"`
	Text       string      `json:"text"`
	Timestamp  time.Time   `json:"timestamp"`
	SharedCafe *SharedCafe `json:"sharedCafe,omitempty"`
}
