package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"advibes_site/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KeyValueStore is the storage the rate limiter keeps its records in.
// Get reports found=false with a nil error when the key is absent.
type KeyValueStore interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}

// PrefixDeleter is implemented by stores that can drop entries in bulk.
// remove sees every entry whose key starts with prefix.
type PrefixDeleter interface {
	DeletePrefixFunc(prefix string, remove func(key, value string) bool) (int, error)
}

// MemoryStore is a process-local KeyValueStore
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) DeletePrefixFunc(prefix string, remove func(key, value string) bool) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k, v := range m.data {
		if strings.HasPrefix(k, prefix) && remove(k, v) {
			delete(m.data, k)
			n++
		}
	}
	return n, nil
}

// GormStore persists entries in the kv_entries table
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, errors.New("key-value store: database not initialized")
	}
	var entry models.KVEntry
	result := s.db.Where(&models.KVEntry{Key: key}).Limit(1).Find(&entry)
	if result.Error != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(key, value string) error {
	if s.db == nil {
		return errors.New("key-value store: database not initialized")
	}
	entry := models.KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

const deleteBatchSize = 500

func (s *GormStore) DeletePrefixFunc(prefix string, remove func(key, value string) bool) (int, error) {
	if s.db == nil {
		return 0, errors.New("key-value store: database not initialized")
	}

	// LIKE treats _ as a wildcard, so matches are re-checked below.
	var doomed []string
	var batch []models.KVEntry
	err := s.db.Where("entry_key LIKE ?", prefix+"%").
		FindInBatches(&batch, deleteBatchSize, func(tx *gorm.DB, _ int) error {
			for _, entry := range batch {
				if strings.HasPrefix(entry.Key, prefix) && remove(entry.Key, entry.Value) {
					doomed = append(doomed, entry.Key)
				}
			}
			return nil
		}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to scan keys with prefix %s: %w", prefix, err)
	}

	deleted := 0
	for start := 0; start < len(doomed); start += deleteBatchSize {
		end := min(start+deleteBatchSize, len(doomed))
		res := s.db.Where("entry_key IN ?", doomed[start:end]).Delete(&models.KVEntry{})
		if res.Error != nil {
			return deleted, fmt.Errorf("failed to delete expired keys: %w", res.Error)
		}
		deleted += int(res.RowsAffected)
	}
	return deleted, nil
}
