package repository

import (
	"encoding/json"
	"errors"

	"github.com/Krypton102019/dk-deli/entity"
	"gorm.io/gorm"
)

// StateRepository keeps the whole AppState as one JSON document in a single
// row identified by Key. Read once at startup, written after every mutation.
type StateRepository struct {
	DB  *gorm.DB
	Key string
}

func NewStateRepository(db *gorm.DB, key string) *StateRepository {
	return &StateRepository{DB: db, Key: key}
}

// Load returns the saved state. A missing row or a document that no longer
// parses both count as "no saved state" and return the zero state.
func (r *StateRepository) Load() (entity.AppState, error) {
	var rec entity.StateRecord
	err := r.DB.Where("key = ?", r.Key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.AppState{}, nil
	}
	if err != nil {
		return entity.AppState{}, err
	}

	var st entity.AppState
	if err := json.Unmarshal(rec.Document, &st); err != nil {
		return entity.AppState{}, nil
	}
	return st, nil
}

func (r *StateRepository) Save(st entity.AppState) error {
	doc, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return r.DB.Save(&entity.StateRecord{Key: r.Key, Document: doc}).Error
}
