package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultRateLimitKey is the identifier the contact form throttles under
	DefaultRateLimitKey = "contact_form"
	// DefaultCountryCode is prefixed to WhatsApp numbers that carry no country code
	DefaultCountryCode = "91"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Database (rate-limit records)
	DBPath           string
	TursoDatabaseURL string
	TursoAuthToken   string
	// Email relay (EmailJS)
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	// Email relay (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, the Resend relay is skipped and submissions are simulated
	ContactInbox  string
	// Contact form
	RateLimitKey    string
	RateLimitMax    int
	RateLimitWindow time.Duration
	WhatsAppNumber  string
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Cloudflare R2 Storage (portfolio media)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
	MediaDir          string
	// Presentation
	CarouselInterval time.Duration
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		AppURL:             getEnv("APP_URL", "http://localhost:8080"),
		DBPath:             getEnv("DB_PATH", "db/site.db"),
		TursoDatabaseURL:   getEnv("TURSO_DATABASE_URL", ""),
		TursoAuthToken:     getEnv("TURSO_AUTH_TOKEN", ""),
		EmailJSServiceID:   getEnv("EMAILJS_SERVICE_ID", ""),
		EmailJSTemplateID:  getEnv("EMAILJS_TEMPLATE_ID", ""),
		EmailJSPublicKey:   getEnv("EMAILJS_PUBLIC_KEY", ""),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@advibes.in"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "AD~VIBES Website"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		ContactInbox:       getEnv("CONTACT_INBOX", "hello@advibes.in"),
		RateLimitKey:       getEnv("CONTACT_RATE_LIMIT_KEY", DefaultRateLimitKey),
		RateLimitMax:       getEnvInt("CONTACT_RATE_LIMIT_MAX", 3),
		RateLimitWindow:    getEnvDuration("CONTACT_RATE_LIMIT_WINDOW", time.Minute),
		WhatsAppNumber:     getEnv("WHATSAPP_NUMBER", "9876543210"),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		R2AccountID:        getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:      getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:  getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:       getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:        getEnv("R2_PUBLIC_URL", ""),
		MediaDir:           getEnv("MEDIA_DIR", "static/media"),
		CarouselInterval:   getEnvDuration("CAROUSEL_INTERVAL", 6*time.Second),
	}
}

// HasEmailJS reports whether all three EmailJS identifiers are present.
// A missing identifier disables the live relay.
func (c *Config) HasEmailJS() bool {
	return c.EmailJSServiceID != "" && c.EmailJSTemplateID != "" && c.EmailJSPublicKey != ""
}

// HasR2 reports whether Cloudflare R2 credentials are complete
func (c *Config) HasR2() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		if !strings.Contains(key, "SECRET") && !strings.Contains(key, "KEY") && !strings.Contains(key, "TOKEN") {
			log.Printf("Using default value for %s: %s", key, defaultValue)
		}
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid integer for %s (%q), using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
