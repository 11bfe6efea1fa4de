// Package pages composes the site's sections into routed pages.
package pages

import (
	"context"
	"strings"
	"time"

	"advibes_site/content"
	"advibes_site/middleware"
	"advibes_site/models"
	"advibes_site/services"
	"advibes_site/templates"
	"advibes_site/templates/components"
	"advibes_site/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func page(meta components.PageMeta, sections ...g.Node) templ.Component {
	return templates.ComponentFunc(func(ctx context.Context) g.Node {
		if meta.Nonce == "" {
			meta.Nonce = middleware.GetNonce(ctx)
		}
		return components.Layout(meta, sections...)
	})
}

func Home(meta components.PageMeta, spot components.SpotlightView) templ.Component {
	return page(meta,
		components.Hero(content.HeroStats),
		components.ClientLogos(content.ClientLogos),
		components.ServicesGrid(content.Services, true),
		components.Portfolio(content.Projects, content.PortfolioCategories(), "All"),
		components.CaseStudies(content.CaseStudies),
		components.BehindTheBuild(content.BehindTheBuild),
		components.Testimonials(spot, content.Testimonials),
		components.CTA(content.CTAFeatures, meta.WhatsAppURL),
	)
}

func About(meta components.PageMeta) templ.Component {
	return page(meta,
		components.PageHeader("About", "The people behind the camera",
			"Directors, editors and strategists who care about what happens after the film goes live."),
		components.About(content.AboutStats, content.CoreValues),
		components.CaseStudies(content.CaseStudies),
		components.CTA(content.CTAFeatures, meta.WhatsAppURL),
	)
}

func Services(meta components.PageMeta) templ.Component {
	return page(meta,
		components.PageHeader("Services", "Everything your brand needs on screen",
			"Pick a service to see the work we have produced for it."),
		components.ServicesGrid(content.Services, false),
		components.CTA(content.CTAFeatures, meta.WhatsAppURL),
	)
}

func Portfolio(meta components.PageMeta, projects []models.Project, category string) templ.Component {
	return page(meta,
		components.PageHeader("Portfolio", "Work we are proud of", ""),
		components.Portfolio(projects, content.PortfolioCategories(), category),
		components.ClientLogos(content.ClientLogos),
	)
}

// Works lists the projects produced for one service
func Works(meta components.PageMeta, service models.Service, projects []models.Project) templ.Component {
	return page(meta,
		components.PageHeader("Our Work", service.Title, service.Description),
		h.Section(h.Class("section"),
			h.Div(h.Class("container"),
				components.PortfolioGrid(projects),
				h.P(h.Class("center"),
					h.A(h.Href("/contact"), h.Class("btn btn--primary"), g.Textf("Talk to us about %s", strings.ToLower(service.Title))),
				),
			),
		),
		components.CTA(content.CTAFeatures, meta.WhatsAppURL),
	)
}

func Contact(meta components.PageMeta, form partials.ContactFormView) templ.Component {
	info := content.Contact
	return page(meta,
		components.PageHeader("Contact", "Let's make something memorable",
			"Tell us about your project. We reply within one business day."),
		h.Section(h.ID("contact"), h.Class("section"),
			h.Div(h.Class("container split"),
				partials.ContactForm(form),
				h.Aside(h.Class("contact-aside"),
					h.Div(h.Class("card"),
						h.H3(g.Text("Get in touch")),
						components.ContactDetails(info, meta.WhatsAppURL),
					),
					h.Div(h.Class("card"),
						h.H3(g.Text("Business hours")),
						h.P(components.Multiline(info.BusinessHours)),
					),
					components.WhyChooseUs(content.WhyChooseUs),
				),
			),
		),
	)
}

// ContactForm is the htmx fragment returned by form submissions
func ContactForm(form partials.ContactFormView) templ.Component {
	return templates.Component(partials.ContactForm(form))
}

// ContactField is the htmx fragment returned by blur validation
func ContactField(form partials.ContactFormView, field services.Field) templ.Component {
	return templates.Component(partials.Field(form.State, field, form.Services))
}

// FormBanner is the htmx fragment that replaces an expiring banner
func FormBanner(b services.Banner, now time.Time) templ.Component {
	return templates.Component(partials.Banner(b, now))
}

// PortfolioGrid is the htmx fragment swapped by the category filter
func PortfolioGrid(projects []models.Project) templ.Component {
	return templates.Component(components.PortfolioGrid(projects))
}

// Spotlight is the htmx fragment polled by the testimonial rotation
func Spotlight(spot components.SpotlightView) templ.Component {
	return templates.Component(components.Spotlight(spot))
}
