package models

import "time"

// StoreRecord is one serialized value in the flat key-value namespace.
// Every collection (sessions, per-room participants, per-device profile)
// lives whole under a single key and is re-serialized on every write.
type StoreRecord struct {
	Key       string    `gorm:"primaryKey;size:255" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StoreRecord) TableName() string {
	return "store_records"
}
