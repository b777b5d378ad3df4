package entity

import "time"

// StateRecord is the only table in the database: one row per storage key,
// holding the whole AppState as a JSON blob.
type StateRecord struct {
	Key       string `gorm:"primaryKey" json:"key"`
	Document  []byte `gorm:"type:blob" json:"-"`
	UpdatedAt time.Time
}
