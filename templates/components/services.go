package components

import (
	"advibes_site/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ServicesGrid lists the agency's services, each linking to its works page
func ServicesGrid(services []models.Service, withHeading bool) g.Node {
	return h.Section(h.ID("services"), h.Class("section"),
		h.Div(h.Class("container"),
			g.If(withHeading, SectionHeading("What we do", "Our Services",
				"From concept to final cut, everything your brand needs to be seen and remembered.")),
			h.Div(h.Class("grid grid--3"),
				g.Map(services, ServiceCard),
			),
		),
	)
}

func ServiceCard(s models.Service) g.Node {
	return h.Article(h.Class("card service-card"),
		h.Div(h.Class("card__icon"), g.Attr("aria-hidden", "true"), g.Text(s.Icon)),
		h.H3(g.Text(s.Title)),
		h.P(g.Text(s.Description)),
		g.If(len(s.Features) > 0, h.Ul(h.Class("checklist"),
			g.Map(s.Features, func(f string) g.Node { return h.Li(g.Text(f)) }),
		)),
		h.A(h.Href("/works/"+s.Slug), h.Class("card__link"), g.Text("See our work →")),
	)
}
