package components

import (
	"net/url"

	"advibes_site/models"
	"advibes_site/services"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// PortfolioGridID is the element the category filter swaps
const PortfolioGridID = "portfolio-grid"

// Portfolio renders the category filter and the project grid. Filter links
// work without JavaScript; with htmx they only swap the grid.
func Portfolio(projects []models.Project, categories []string, active string) g.Node {
	return h.Section(h.ID("portfolio"), h.Class("section"),
		h.Div(h.Class("container"),
			SectionHeading("Portfolio", "Our Recent Work",
				"A selection of films, reels and campaigns we have produced for our clients."),
			h.Div(h.Class("filters"), g.Attr("role", "group"), g.Attr("aria-label", "Filter by category"),
				g.Map(categories, func(cat string) g.Node {
					return filterLink(cat, active)
				}),
			),
			PortfolioGrid(projects),
		),
	)
}

func filterLink(category, active string) g.Node {
	href := "/portfolio"
	if category != "All" {
		href += "?category=" + url.QueryEscape(category)
	}
	return h.A(
		h.Href(href),
		c.Classes{"filter": true, "is-active": category == active},
		g.Attr("hx-get", href),
		g.Attr("hx-target", "#"+PortfolioGridID),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-push-url", "true"),
		g.Text(category),
	)
}

// PortfolioGrid is the swappable grid of project cards
func PortfolioGrid(projects []models.Project) g.Node {
	return h.Div(h.ID(PortfolioGridID), h.Class("grid grid--3"),
		g.If(len(projects) == 0, h.P(h.Class("empty"), g.Text("No projects in this category yet."))),
		g.Map(projects, ProjectCard),
	)
}

func ProjectCard(p models.Project) g.Node {
	return h.Article(h.Class("card project-card"),
		h.Figure(h.Class("project-card__media"),
			h.Img(h.Src(services.ResolveMedia(p.Media)), h.Alt(p.Title), g.Attr("loading", "lazy")),
			h.Span(h.Class("badge"), g.Text(p.Category)),
		),
		h.Div(h.Class("card__body"),
			h.H3(g.Text(p.Title)),
			h.P(g.Text(p.Description)),
			h.Ul(h.Class("tags"),
				g.Map(p.Tags, func(tag string) g.Node { return h.Li(g.Text(tag)) }),
			),
		),
	)
}
