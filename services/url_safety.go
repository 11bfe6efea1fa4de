package services

import (
	"log"
	"net/url"
	"strings"

	"advibes_site/config"
)

// OutboundLink is a gated external link ready to render as an anchor
type OutboundLink struct {
	Href   string
	Target string
	Rel    string
}

// ValidateURL reports whether raw is an absolute http or https URL.
// Anything else, including javascript: and data: URLs, is rejected.
func ValidateURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}
	return u.Host != ""
}

// SafeOpenURL gates raw through ValidateURL and returns a link that opens
// in target with rel="noopener noreferrer", so the opened page gets no
// window.opener handle. Rejected URLs are logged and yield ok=false.
func SafeOpenURL(raw, target string) (OutboundLink, bool) {
	if !ValidateURL(raw) {
		log.Printf("[SECURITY] Blocked outbound link with disallowed URL: %q", raw)
		return OutboundLink{}, false
	}
	if target == "" {
		target = "_blank"
	}
	return OutboundLink{
		Href:   strings.TrimSpace(raw),
		Target: target,
		Rel:    "noopener noreferrer",
	}, true
}

// WhatsAppURL builds a wa.me chat link for phone. Numbers of ten digits or
// fewer are assumed local and get the default country code.
func WhatsAppURL(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := strings.TrimLeft(digits.String(), "0")
	if len(number) <= 10 {
		number = config.DefaultCountryCode + number
	}

	link := "https://wa.me/" + number
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}
