package components

import (
	"strings"

	"advibes_site/content"
	"advibes_site/models"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// Navbar renders the top navigation with the entry for active highlighted
func Navbar(active string) g.Node {
	return h.Header(h.Class("navbar"),
		h.Nav(h.Class("navbar__inner container"), g.Attr("aria-label", "Main"),
			h.A(h.Href("/"), h.Class("brand"),
				h.Span(h.Class("brand__mark"), g.Text(content.BrandName)),
				h.Span(h.Class("brand__sub"), g.Text("Media House")),
			),
			h.Button(
				h.Type("button"),
				h.Class("navbar__toggle"),
				g.Attr("aria-controls", "nav-links"),
				g.Attr("aria-expanded", "false"),
				g.Attr("data-nav-toggle"),
				h.Span(h.Class("sr-only"), g.Text("Toggle navigation")),
				g.Text("☰"),
			),
			h.Ul(h.ID("nav-links"), h.Class("navbar__links"),
				g.Map(content.NavItems, func(item models.NavItem) g.Node {
					return h.Li(navLink(item, active))
				}),
			),
			h.A(h.Href("/contact"), h.Class("btn btn--primary navbar__cta"), g.Text("Get a Quote")),
		),
	)
}

func navLink(item models.NavItem, active string) g.Node {
	isActive := IsActivePath(item.Path, active)
	return h.A(
		h.Href(item.Path),
		c.Classes{"navbar__link": true, "is-active": isActive},
		g.If(isActive, g.Attr("aria-current", "page")),
		g.Text(item.Label),
	)
}

// IsActivePath reports whether a nav entry should be highlighted for the
// current path. Works pages highlight Services.
func IsActivePath(itemPath, current string) bool {
	if itemPath == "/" {
		return current == "/"
	}
	if itemPath == "/services" && strings.HasPrefix(current, "/works/") {
		return true
	}
	return current == itemPath
}
