package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler generates the XML sitemap from the route table
func GetSitemapHandler(c echo.Context) error {
	baseURL := strings.TrimSuffix(siteConfig(c).AppURL, "/")

	var urls []SitemapURL
	for _, r := range PageRoutes() {
		if r.ChangeFreq == "" {
			continue
		}
		urls = append(urls, SitemapURL{Loc: baseURL + r.Path, ChangeFreq: r.ChangeFreq, Priority: r.Priority})
	}
	for _, path := range WorksPaths() {
		urls = append(urls, SitemapURL{Loc: baseURL + path, ChangeFreq: "monthly", Priority: 0.6})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// RobotsHandler serves robots.txt. Non-production environments are kept out
// of search indexes entirely.
func RobotsHandler(c echo.Context) error {
	cfg := siteConfig(c)
	if !cfg.IsProduction() {
		return c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
	}
	body := "User-agent: *\n" +
		"Allow: /\n" +
		"Disallow: /contact/validate/\n" +
		"Disallow: /contact/banner\n" +
		"Disallow: /testimonials/\n" +
		"Disallow: /metrics\n" +
		"\nSitemap: " + strings.TrimSuffix(cfg.AppURL, "/") + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}
