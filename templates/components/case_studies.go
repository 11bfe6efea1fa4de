package components

import (
	"advibes_site/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func CaseStudies(studies []models.CaseStudy) g.Node {
	return h.Section(h.ID("case-studies"), h.Class("section section--alt"),
		h.Div(h.Class("container"),
			SectionHeading("Results", "Case Studies", "Numbers our clients still talk about."),
			h.Div(h.Class("grid grid--3"),
				g.Map(studies, func(cs models.CaseStudy) g.Node {
					return h.Article(h.Class("card case-study"),
						h.Div(h.Class("case-study__icon gradient--"+cs.Gradient), g.Attr("aria-hidden", "true"), g.Text(cs.Icon)),
						h.Span(h.Class("eyebrow"), g.Text(cs.Client)),
						h.H3(g.Text(cs.Title)),
						h.P(h.Class("case-study__metric"),
							h.Strong(g.Text(cs.Metric)), g.Text(" "), h.Span(g.Text(cs.MetricLabel)),
						),
						h.P(g.Text(cs.Details)),
					)
				}),
			),
		),
	)
}
