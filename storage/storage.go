package storage

import (
	"errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Keys for the persisted collections. Each collection owns exactly one key
// and rewrites its full document on every mutation.
const (
	KeyCart           = "gikibites-cart"
	KeyVendorProducts = "gikibites-vendor-products"
	KeyVendorOrders   = "gikibites-vendor-orders"
	KeyUserSession    = "gikibites-user"
)

// ErrNotFound is returned by Get when the key has no entry.
var ErrNotFound = errors.New("storage: key not found")

// KV is the persistence collaborator: JSON documents stored by key.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

type entry struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

func (entry) TableName() string { return "kv_entries" }

// Store implements KV on a local SQLite database.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at path and migrates the entry table.
// Pass ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key string) ([]byte, error) {
	var e entry
	if err := s.db.First(&e, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(e.Value), nil
}

func (s *Store) Set(key string, value []byte) error {
	e := entry{Key: key, Value: string(value)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&e).Error
}

func (s *Store) Remove(key string) error {
	return s.db.Delete(&entry{}, "key = ?", key).Error
}
