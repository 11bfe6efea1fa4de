package pages

import (
	"bytes"
	"context"
	"testing"
	"time"

	"advibes_site/content"
	"advibes_site/middleware"
	"advibes_site/models"
	"advibes_site/services"
	"advibes_site/templates/components"
	"advibes_site/templates/partials"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, comp templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	ctx := context.WithValue(context.Background(), middleware.NonceKey, "ctx-nonce")
	require.NoError(t, comp.Render(ctx, &buf))
	return buf.String()
}

func meta(path string) components.PageMeta {
	return components.PageMeta{SEO: models.DefaultSEO("Test", "desc"), Path: path, WhatsAppURL: "https://wa.me/919876543210"}
}

func TestHome(t *testing.T) {
	spot := components.SpotlightView{Testimonial: content.Testimonials[0], Total: len(content.Testimonials), Interval: 6 * time.Second}
	out := renderPage(t, Home(meta("/"), spot))

	assert.Contains(t, out, `id="home"`)
	assert.Contains(t, out, `id="services"`)
	assert.Contains(t, out, `id="portfolio-grid"`)
	assert.Contains(t, out, `id="testimonial-spotlight"`)
	assert.Contains(t, out, `nonce="ctx-nonce"`)
}

func TestInnerPages(t *testing.T) {
	assert.Contains(t, renderPage(t, About(meta("/about"))), "Creative Excellence")
	assert.Contains(t, renderPage(t, Services(meta("/services"))), "/works/motion-design")
	assert.Contains(t, renderPage(t, Portfolio(meta("/portfolio"), content.Projects, "All")), "Work we are proud of")

	svc, _ := content.ServiceBySlug("photography")
	works := renderPage(t, Works(meta("/works/photography"), svc, content.ProjectsForService("photography")))
	assert.Contains(t, works, "Photography")
	assert.Contains(t, works, "Talk to us about photography")
}

func TestContactPage(t *testing.T) {
	form := partials.ContactFormView{State: services.NewFormState(), CSRFToken: "tok", Now: time.Now(), Services: content.Services}
	out := renderPage(t, Contact(meta("/contact"), form))

	assert.Contains(t, out, `id="contact-form"`)
	assert.Contains(t, out, "Business hours")
	assert.Contains(t, out, "Sunday: Closed")
	assert.Contains(t, out, "Why choose us?")
}

func TestFragments(t *testing.T) {
	form := partials.ContactFormView{State: services.NewFormState()}
	assert.Contains(t, renderPage(t, ContactField(form, services.FieldName)), `id="field-name"`)
	assert.NotContains(t, renderPage(t, ContactForm(form)), "<html")
	assert.Equal(t, `<div id="form-banner"></div>`, renderPage(t, FormBanner(services.Banner{}, time.Now())))
	assert.Contains(t, renderPage(t, PortfolioGrid(content.Projects[:1])), content.Projects[0].Title)
}
