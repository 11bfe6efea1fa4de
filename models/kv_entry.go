package models

import "time"

// KVEntry is a single key-value record. Rate-limit state is stored here
// as JSON under keys of the form "rate_limit_<name>".
type KVEntry struct {
	Key       string    `gorm:"column:entry_key;primaryKey;size:255" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for KVEntry
func (KVEntry) TableName() string {
	return "kv_entries"
}
