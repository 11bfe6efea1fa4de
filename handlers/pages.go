package handlers

import (
	"net/http"

	"advibes_site/content"
	"advibes_site/middleware"
	"advibes_site/models"
	"advibes_site/services"
	"advibes_site/templates/components"
	"advibes_site/templates/pages"

	"github.com/labstack/echo/v4"
)

const whatsAppGreeting = "Hi AD~VIBES, I'd like to discuss a project."

// Spotlight rotates the featured testimonial. It is started by the server
// and may be nil, in which case the first testimonial is shown.
var Spotlight *services.Rotator[models.Testimonial]

func pageMeta(c echo.Context, seo *models.SEO) components.PageMeta {
	cfg := siteConfig(c)
	nonce, _ := c.Get(string(middleware.NonceKey)).(string)

	meta := components.PageMeta{
		SEO:   seo,
		Path:  c.Request().URL.Path,
		Nonce: nonce,
	}
	if cfg.WhatsAppNumber != "" {
		meta.WhatsAppURL = services.WhatsAppURL(cfg.WhatsAppNumber, whatsAppGreeting)
	}
	return meta
}

func namedPageMeta(c echo.Context, name string) components.PageMeta {
	siteMetrics(c).ObservePageView(name)
	return pageMeta(c, seoFor(name, siteConfig(c).AppURL))
}

func spotlightView(c echo.Context) components.SpotlightView {
	view := components.SpotlightView{
		Total:    len(content.Testimonials),
		Interval: siteConfig(c).CarouselInterval,
	}
	if Spotlight != nil {
		if t, idx, ok := Spotlight.Current(); ok {
			view.Testimonial, view.Index, view.Total = t, idx, Spotlight.Len()
			return view
		}
	}
	if len(content.Testimonials) > 0 {
		view.Testimonial = content.Testimonials[0]
	}
	return view
}

func HomeHandler(c echo.Context) error {
	return render(c, pages.Home(namedPageMeta(c, "home"), spotlightView(c)))
}

func AboutHandler(c echo.Context) error {
	return render(c, pages.About(namedPageMeta(c, "about")))
}

func ServicesHandler(c echo.Context) error {
	return render(c, pages.Services(namedPageMeta(c, "services")))
}

// PortfolioHandler renders the portfolio, filtered by the category query
// parameter. Filter clicks from htmx only get the grid back.
func PortfolioHandler(c echo.Context) error {
	category := c.QueryParam("category")
	if !isPortfolioCategory(category) {
		category = "All"
	}

	projects := make([]models.Project, 0, len(content.Projects))
	for _, p := range content.Projects {
		if category == "All" || p.Category == category {
			projects = append(projects, p)
		}
	}

	if isHTMX(c) && htmxTarget(c) == components.PortfolioGridID {
		return render(c, pages.PortfolioGrid(projects))
	}
	return render(c, pages.Portfolio(namedPageMeta(c, "portfolio"), projects, category))
}

func isPortfolioCategory(category string) bool {
	for _, cat := range content.PortfolioCategories() {
		if cat == category {
			return true
		}
	}
	return false
}

// WorksHandler lists the projects of one service
func WorksHandler(c echo.Context) error {
	service, ok := content.ServiceBySlug(c.Param("slug"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Page not found")
	}
	siteMetrics(c).ObservePageView("works")
	meta := pageMeta(c, worksSEO(service, siteConfig(c).AppURL))
	return render(c, pages.Works(meta, service, content.ProjectsForService(service.Slug)))
}

// SpotlightHandler returns the current testimonial for the rotating spotlight
func SpotlightHandler(c echo.Context) error {
	return render(c, pages.Spotlight(spotlightView(c)))
}
