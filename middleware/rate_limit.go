package middleware

import (
	"context"
	"html"
	"net/http"
	"time"

	"advibes_site/metrics"
	"advibes_site/services"

	"github.com/labstack/echo/v4"
)

// FormBannerID is the id of the contact form's banner element. Throttled
// htmx requests are retargeted onto it.
const FormBannerID = "form-banner"

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Name scopes the limiter's keys so several limiters can share a store
	Name string
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc is a function that returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
	// Metrics receives the limiter's decisions; may be nil
	Metrics *metrics.Manager
}

// RateLimiter throttles requests per client using the same fixed-window
// counter as the contact form, over a process-local store.
type RateLimiter struct {
	config  RateLimitConfig
	limiter *services.RateLimiter
}

// NewRateLimiter creates a new rate limiter with the given configuration.
// Expired windows are pruned every minute until ctx is done.
func NewRateLimiter(ctx context.Context, config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}
	if config.Name == "" {
		config.Name = "requests"
	}

	rl := &RateLimiter{
		config:  config,
		limiter: services.NewRateLimiter(services.NewMemoryStore(), services.SystemClock, config.Metrics),
	}

	go rl.limiter.Run(ctx, time.Minute)

	return rl
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := rl.config.Name + ":" + rl.config.KeyFunc(c)
			if rl.limiter.CheckRateLimit(key, rl.config.Requests, rl.config.Window) {
				return next(c)
			}

			// htmx only swaps 2xx responses, so the banner is sent as a
			// retargeted 200.
			if c.Request().Header.Get("HX-Request") == "true" {
				c.Response().Header().Set("HX-Retarget", "#"+FormBannerID)
				c.Response().Header().Set("HX-Reswap", "outerHTML")
				return c.HTML(http.StatusOK, `<div id="`+FormBannerID+`" class="form-banner form-banner--error" role="alert">`+html.EscapeString(rl.config.Message)+`</div>`)
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, rl.config.Message)
		}
	}
}

// FieldValidationRateLimiter limits per-field validation requests to 120 per minute per IP
func FieldValidationRateLimiter(ctx context.Context, m *metrics.Manager) *RateLimiter {
	return NewRateLimiter(ctx, RateLimitConfig{
		Name:     "field_validation",
		Requests: 120,
		Window:   1 * time.Minute,
		Message:  "Slow down a little, then try again.",
		Metrics:  m,
	})
}

// PublicFormRateLimiter limits raw contact form posts to 10 per minute per IP.
// The contact service applies its own stricter submission limit on top.
func PublicFormRateLimiter(ctx context.Context, m *metrics.Manager) *RateLimiter {
	return NewRateLimiter(ctx, RateLimitConfig{
		Name:     "public_form",
		Requests: 10,
		Window:   1 * time.Minute,
		Message:  "Too many form submissions. Please wait before trying again.",
		Metrics:  m,
	})
}
