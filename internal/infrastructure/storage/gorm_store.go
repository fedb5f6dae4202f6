package storage

import (
	"context"
	"errors"
	"time"

	"github.com/unmined/spinrewards/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one row of the key-value table
type KVEntry struct {
	Key       string    `gorm:"primaryKey;column:entry_key;type:varchar(255)"`
	Value     string    `gorm:"column:entry_value;type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for KVEntry
func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormStore implements domain.Store on a SQL table
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new gorm backed store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get retrieves a value by key
func (s *GormStore) Get(ctx context.Context, key string) (string, error) {
	var entry KVEntry
	result := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", domain.ErrKeyNotFound
		}
		return "", result.Error
	}
	return entry.Value, nil
}

// Set upserts the whole value in a single statement
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	entry := KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete removes a key
func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&KVEntry{}).Error
}
