package components

import (
	"strconv"

	"advibes_site/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Hero is the landing banner with the primary calls to action
func Hero(stats []models.Stat) g.Node {
	return h.Section(h.ID("home"), h.Class("hero"),
		h.Div(h.Class("hero__glow"), g.Attr("aria-hidden", "true")),
		h.Div(h.Class("hero__inner container"),
			h.Span(h.Class("eyebrow"), g.Text("Video Production & Advertising Agency")),
			h.H1(h.Class("hero__title"),
				g.Text("Stories that "), h.Span(h.Class("text-gradient"), g.Text("move")), g.Text(" your audience"),
			),
			h.P(h.Class("lead"),
				g.Text("Corporate documentaries, ad films, reels and motion design crafted in Pune and Mumbai for brands that want to be remembered."),
			),
			h.Div(h.Class("hero__actions"),
				h.A(h.Href("/contact"), h.Class("btn btn--primary"), g.Text("Start Your Project")),
				h.A(h.Href("/portfolio"), h.Class("btn btn--ghost"), g.Text("View Our Work")),
			),
			StatList("hero__stats", stats),
		),
	)
}

// StatList renders headline numbers such as "50+ Happy Clients"
func StatList(class string, stats []models.Stat) g.Node {
	return h.Ul(h.Class("stats "+class),
		g.Map(stats, func(s models.Stat) g.Node {
			return h.Li(h.Class("stat"),
				h.Strong(h.Class("stat__value"), g.Text(strconv.Itoa(s.Value)+s.Suffix)),
				h.Span(h.Class("stat__label"), g.Text(s.Label)),
			)
		}),
	)
}
