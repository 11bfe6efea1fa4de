package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// CSPNonce middleware generates a nonce for each request, adds it to the
// context and sends a Content-Security-Policy built around it. imgSources
// are extra origins allowed to serve images, e.g. the media bucket.
func CSPNonce(imgSources ...string) echo.MiddlewareFunc {
	img := []string{"'self'", "data:", "https://i.postimg.cc"}
	for _, src := range imgSources {
		if src = strings.TrimSuffix(strings.TrimSpace(src), "/"); src != "" {
			img = append(img, src)
		}
	}
	imgSrc := strings.Join(img, " ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				c.Logger().Errorf("Failed to generate nonce: %v", err)
				nonce = "fallback-nonce-value"
			}

			// Add to Echo context (for handlers)
			c.Set(string(NonceKey), nonce)

			// Add to Request context (for components)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			csp := fmt.Sprintf("default-src 'self'; script-src 'self' 'nonce-%s' https://unpkg.com https://challenges.cloudflare.com; style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; img-src %s; font-src 'self' https://fonts.gstatic.com; connect-src 'self' https://challenges.cloudflare.com; frame-src https://challenges.cloudflare.com; form-action 'self'; base-uri 'self'; object-src 'none'", nonce, imgSrc)

			c.Response().Header().Set("Content-Security-Policy", csp)

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
