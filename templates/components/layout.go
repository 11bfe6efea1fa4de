package components

import (
	"advibes_site/content"
	"advibes_site/middleware"
	"advibes_site/models"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// PageMeta is what every page needs besides its own sections
type PageMeta struct {
	SEO         *models.SEO
	Path        string // current route, highlights the navbar entry
	Nonce       string
	WhatsAppURL string
}

// Layout renders the HTML document shell: head metadata, navbar, the page
// sections and the footer.
func Layout(meta PageMeta, sections ...g.Node) g.Node {
	seo := meta.SEO
	if seo == nil {
		seo = models.DefaultSEO(content.BrandFull, "")
	}

	return c.HTML5(c.HTML5Props{
		Title:       seo.Title,
		Description: seo.Description,
		Language:    "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			seoHead(seo),
			h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href(middleware.AssetURL(middleware.AssetFavicon))),
			h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
			h.Link(h.Rel("stylesheet"), h.Href("https://fonts.googleapis.com/css2?family=Poppins:wght@400;500;600;700;800&display=swap")),
			h.Link(h.Rel("stylesheet"), h.Href(middleware.AssetURL(middleware.AssetCSS))),
			h.Script(h.Src(htmxSrc), g.Attr("nonce", meta.Nonce), g.Attr("defer")),
			h.Script(h.Src(middleware.AssetURL(middleware.AssetJS)), g.Attr("nonce", meta.Nonce), g.Attr("defer")),
		},
		Body: []g.Node{
			Navbar(meta.Path),
			h.Main(h.ID("main"), g.Group(sections)),
			Footer(meta.WhatsAppURL),
		},
	})
}

func seoHead(seo *models.SEO) g.Node {
	return g.Group{
		g.If(seo.Keywords != "", h.Meta(h.Name("keywords"), h.Content(seo.Keywords))),
		g.If(seo.Canonical != "", h.Link(h.Rel("canonical"), h.Href(seo.Canonical))),
		g.If(seo.NoIndex, h.Meta(h.Name("robots"), h.Content("noindex, nofollow"))),
		h.Meta(g.Attr("property", "og:title"), h.Content(seo.GetOGTitle())),
		h.Meta(g.Attr("property", "og:description"), h.Content(seo.GetOGDesc())),
		h.Meta(g.Attr("property", "og:type"), h.Content(seo.OGType)),
		g.If(seo.Canonical != "", h.Meta(g.Attr("property", "og:url"), h.Content(seo.Canonical))),
		g.If(seo.OGImage != "", h.Meta(g.Attr("property", "og:image"), h.Content(seo.OGImage))),
		h.Meta(h.Name("twitter:card"), h.Content(seo.TwitterCard)),
	}
}

// SectionHeading is the eyebrow + title + lead used at the top of sections
func SectionHeading(eyebrow, title, lead string) g.Node {
	return h.Div(h.Class("section-heading"),
		g.If(eyebrow != "", h.Span(h.Class("eyebrow"), g.Text(eyebrow))),
		h.H2(g.Text(title)),
		g.If(lead != "", h.P(h.Class("lead"), g.Text(lead))),
	)
}

// PageHeader is the compact banner at the top of inner pages
func PageHeader(eyebrow, title, lead string) g.Node {
	return h.Section(h.Class("page-header"),
		h.Div(h.Class("container"),
			h.Span(h.Class("eyebrow"), g.Text(eyebrow)),
			h.H1(g.Text(title)),
			g.If(lead != "", h.P(h.Class("lead"), g.Text(lead))),
		),
	)
}
