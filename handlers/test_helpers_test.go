package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"advibes_site/config"
	"advibes_site/db"
	"advibes_site/models"
	"advibes_site/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:      "test",
		AppURL:           "https://advibes.in",
		RateLimitMax:     3,
		RateLimitWindow:  time.Minute,
		WhatsAppNumber:   "9876543210",
		CarouselInterval: 6 * time.Second,
	}
}

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, testDB.AutoMigrate(&models.KVEntry{}))

	db.DB = testDB
	t.Cleanup(func() { db.DB = nil })
	return testDB
}

type stubClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stubClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type stubRelay struct {
	mu   sync.Mutex
	sent []*services.ContactMessage
	err  error
}

func (r *stubRelay) Name() string { return "stub" }

func (r *stubRelay) Send(_ context.Context, msg *services.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

// setupContact installs a contact service backed by the test database
func setupContact(t *testing.T, cfg *config.Config) (*stubRelay, *stubClock) {
	testDB := setupTestDB(t)
	relay := &stubRelay{}
	clock := &stubClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	limiter := services.NewRateLimiter(services.NewGormStore(testDB), clock, nil)

	services.Contact = services.NewContactService(cfg, relay, limiter, clock, nil)
	t.Cleanup(func() { services.Contact = nil })
	return relay, clock
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Asha Rao"},
		"email":   {"asha@example.com"},
		"phone":   {"+91 98765 43210"},
		"company": {"Rao Foods"},
		"service": {"ad-films"},
		"message": {"We need a 30 second ad film for our new product launch."},
	}
}

func formBody(v url.Values) io.Reader {
	return strings.NewReader(v.Encode())
}
