package handlers

import (
	"advibes_site/content"

	"github.com/labstack/echo/v4"
)

// Route is an entry of the site's static route table
type Route struct {
	Name       string
	Path       string
	Handler    echo.HandlerFunc
	ChangeFreq string  // sitemap hint, empty keeps the route out of the sitemap
	Priority   float32 // sitemap hint
}

// PageRoutes is the table of routed pages
func PageRoutes() []Route {
	return []Route{
		{Name: "home", Path: "/", Handler: HomeHandler, ChangeFreq: "weekly", Priority: 1.0},
		{Name: "about", Path: "/about", Handler: AboutHandler, ChangeFreq: "monthly", Priority: 0.8},
		{Name: "services", Path: "/services", Handler: ServicesHandler, ChangeFreq: "monthly", Priority: 0.9},
		{Name: "portfolio", Path: "/portfolio", Handler: PortfolioHandler, ChangeFreq: "weekly", Priority: 0.9},
		{Name: "contact", Path: "/contact", Handler: ContactPageHandler, ChangeFreq: "yearly", Priority: 0.7},
	}
}

// WorksPaths returns the per-service works page paths
func WorksPaths() []string {
	paths := make([]string, 0, len(content.Services))
	for _, s := range content.Services {
		paths = append(paths, "/works/"+s.Slug)
	}
	return paths
}

// RegisterRoutes wires every route of the site. formLimit guards contact
// submissions, fieldLimit guards per-field validation.
func RegisterRoutes(e *echo.Echo, formLimit, fieldLimit echo.MiddlewareFunc) {
	for _, r := range PageRoutes() {
		e.GET(r.Path, r.Handler)
	}
	e.GET("/works/:slug", WorksHandler)
	e.GET("/testimonials/spotlight", SpotlightHandler)

	e.POST("/contact", SubmitContactHandler, formLimit)
	e.POST("/contact/validate/:field", ValidateFieldHandler, fieldLimit)
	e.GET("/contact/banner", DismissBannerHandler)

	e.GET("/sitemap.xml", GetSitemapHandler)
	e.GET("/robots.txt", RobotsHandler)
	e.GET("/healthz", HealthHandler)
}
