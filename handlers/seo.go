package handlers

import (
	"strings"

	"advibes_site/content"
	"advibes_site/models"
)

const defaultOGImage = "/static/images/og-image.jpg"

// pageSEO holds the metadata of each routed page, keyed by route name.
// Canonical and image URLs are relative and resolved against APP_URL.
var pageSEO = map[string]models.SEO{
	"home": {
		Title:       "AD~VIBES Media House | Video Production & Advertising Agency in Pune",
		Description: "Corporate documentaries, ad films, reels, motion design and photography. AD~VIBES Media House produces video that moves your audience.",
		Keywords:    "video production pune, ad film makers, corporate documentary, video marketing agency, motion design",
		Canonical:   "/",
	},
	"about": {
		Title:       "About Us | AD~VIBES Media House",
		Description: "Meet the directors, editors and strategists behind AD~VIBES Media House and the values that guide every production.",
		Keywords:    "about advibes, video production team, creative agency pune",
		Canonical:   "/about",
	},
	"services": {
		Title:       "Services | AD~VIBES Media House",
		Description: "Corporate documentaries, ad films, video marketing reels, motion design, photography and corporate interviews.",
		Keywords:    "ad films, corporate video, reels production, motion graphics, product photography",
		Canonical:   "/services",
	},
	"portfolio": {
		Title:       "Portfolio | AD~VIBES Media House",
		Description: "Browse films, reels and campaigns produced by AD~VIBES Media House for brands across Maharashtra.",
		Keywords:    "video portfolio, ad film portfolio, documentary samples",
		Canonical:   "/portfolio",
	},
	"contact": {
		Title:       "Contact Us | AD~VIBES Media House",
		Description: "Tell us about your next project. Offices in Pune and Mumbai, replies within one business day.",
		Keywords:    "contact advibes, video production quote, hire ad film maker",
		Canonical:   "/contact",
	},
}

// seoFor returns the metadata for a named page with absolute URLs
func seoFor(name, appURL string) *models.SEO {
	base, ok := pageSEO[name]
	if !ok {
		base = *models.DefaultSEO(content.BrandFull, "")
	}
	seo := base
	if seo.OGType == "" {
		seo.OGType = "website"
	}
	if seo.TwitterCard == "" {
		seo.TwitterCard = "summary_large_image"
	}
	if seo.Canonical != "" {
		seo.Canonical = absoluteURL(appURL, seo.Canonical)
	}
	return seo.WithOGImage(absoluteURL(appURL, defaultOGImage))
}

// worksSEO builds the metadata of a per-service works page
func worksSEO(service models.Service, appURL string) *models.SEO {
	return models.DefaultSEO(service.Title+" | AD~VIBES Media House", service.Description).
		WithCanonical(absoluteURL(appURL, "/works/"+service.Slug)).
		WithOGImage(absoluteURL(appURL, defaultOGImage))
}

func absoluteURL(appURL, path string) string {
	return strings.TrimSuffix(appURL, "/") + path
}
