// Package model contains the GORM-specific persistence structs.
package model

import "time"

// KVEntryModel is the GORM struct for the 'kv_entries' table, the durable
// key-value storage behind the share-history and chat-message logs.
type KVEntryModel struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KVEntryModel) TableName() string {
	return "kv_entries"
}
