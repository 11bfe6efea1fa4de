package components

import (
	"advibes_site/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// About renders the agency story, its numbers and its core values
func About(stats []models.Stat, values []models.CoreValue) g.Node {
	return h.Section(h.ID("about"), h.Class("section"),
		h.Div(h.Class("container split"),
			h.Div(
				SectionHeading("About us", "A creative studio that thinks like a marketer",
					"AD~VIBES Media House is a team of directors, editors and strategists producing video that earns attention and drives results."),
				h.P(g.Text("We started with corporate documentaries and grew into a full-service production house. Every project is planned around your audience, shot with cinema-grade equipment and delivered on time.")),
				StatList("about__stats", stats),
			),
			h.Div(h.Class("grid grid--2"),
				g.Map(values, func(v models.CoreValue) g.Node {
					return h.Article(h.Class("card value-card"),
						h.Div(h.Class("card__icon"), g.Attr("aria-hidden", "true"), g.Text(v.Icon)),
						h.H3(g.Text(v.Title)),
						h.P(g.Text(v.Description)),
					)
				}),
			),
		),
	)
}

// WhyChooseUs is the checklist shown next to the contact form
func WhyChooseUs(points []string) g.Node {
	return h.Div(h.Class("card why-us"),
		h.H3(g.Text("Why choose us?")),
		h.Ul(h.Class("checklist"),
			g.Map(points, func(p string) g.Node { return h.Li(g.Text(p)) }),
		),
	)
}
