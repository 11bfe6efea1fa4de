package services

import (
	"bytes"
	"fmt"
	"log"
	"testing"
	"time"

	"advibes_site/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(&models.KVEntry{}))
	return testDB
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, found, err := store.Get("missing")
	assert.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set("k", "v1"))
	require.NoError(t, store.Set("k", "v2"))
	v, found, err := store.Get("k")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v2", v)
}

func TestGormStore(t *testing.T) {
	store := NewGormStore(setupTestDB(t))

	_, found, err := store.Get("rate_limit_contact_form")
	assert.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set("rate_limit_contact_form", `{"count":1,"resetAt":1}`))
	require.NoError(t, store.Set("rate_limit_contact_form", `{"count":2,"resetAt":1}`))

	v, found, err := store.Get("rate_limit_contact_form")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"count":2,"resetAt":1}`, v)
}

func TestGormStoreWithoutDB(t *testing.T) {
	store := NewGormStore(nil)
	_, _, err := store.Get("k")
	assert.Error(t, err)
	assert.Error(t, store.Set("k", "v"))
}

func TestRateLimiterOverGormStore(t *testing.T) {
	clock := newFakeClock()
	rl := NewRateLimiter(NewGormStore(setupTestDB(t)), clock, nil)

	got := []bool{}
	for i := 0; i < 4; i++ {
		got = append(got, rl.CheckRateLimit("contact_form", 3, time.Minute))
	}
	assert.Equal(t, []bool{true, true, true, false}, got)

	clock.Advance(2 * time.Minute)
	assert.True(t, rl.CheckRateLimit("contact_form", 3, time.Minute))
}

func TestGormStoreMissingKeyIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	testDB := setupTestDB(t)
	testDB.Logger = logger.New(log.New(&buf, "", 0), logger.Config{LogLevel: logger.Warn})
	store := NewGormStore(testDB)

	_, found, err := store.Get("rate_limit_contact_form:203.0.113.1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NotContains(t, buf.String(), "record not found")
}

func TestGormStoreDeletePrefixFunc(t *testing.T) {
	store := NewGormStore(setupTestDB(t))
	require.NoError(t, store.Set("rate_limit_a", "old"))
	require.NoError(t, store.Set("rate_limit_b", "new"))
	require.NoError(t, store.Set("rateXlimitXc", "old"))
	require.NoError(t, store.Set("other", "old"))

	n, err := store.DeletePrefixFunc("rate_limit_", func(key, value string) bool {
		return value == "old"
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	for key, want := range map[string]bool{"rate_limit_a": false, "rate_limit_b": true, "rateXlimitXc": true, "other": true} {
		_, found, err := store.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, found, key)
	}

	_, err = NewGormStore(nil).DeletePrefixFunc("rate_limit_", func(string, string) bool { return true })
	assert.Error(t, err)
}

func TestPruneOverGormStore(t *testing.T) {
	clock := newFakeClock()
	testDB := setupTestDB(t)
	rl := NewRateLimiter(NewGormStore(testDB), clock, nil)

	for i := 0; i < 50; i++ {
		rl.CheckRateLimit(fmt.Sprintf("contact_form:198.51.100.%d", i), 3, time.Minute)
	}
	rl.CheckRateLimit("contact_form:late", 3, 2*time.Hour)

	clock.Advance(time.Hour)
	assert.Equal(t, 50, rl.Prune())

	var remaining int64
	require.NoError(t, testDB.Model(&models.KVEntry{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)
}
