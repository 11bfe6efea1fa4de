package components

import (
	"advibes_site/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func CTA(features []models.Feature, whatsAppURL string) g.Node {
	return h.Section(h.ID("cta"), h.Class("section cta"),
		h.Div(h.Class("container cta__inner"),
			h.H2(g.Text("Ready to grow your brand?")),
			h.P(h.Class("lead"), g.Text("Tell us about your next campaign and we'll get back to you within one business day.")),
			h.Ul(h.Class("cta__features"),
				g.Map(features, func(f models.Feature) g.Node {
					return h.Li(h.Span(g.Attr("aria-hidden", "true"), g.Text(f.Icon)), g.Text(" "+f.Text))
				}),
			),
			h.Div(h.Class("hero__actions"),
				h.A(h.Href("/contact"), h.Class("btn btn--primary"), g.Text("Get a Free Consultation")),
				g.If(whatsAppURL != "", ExternalLink(whatsAppURL, "btn btn--ghost", g.Text("Chat on WhatsApp"))),
			),
		),
	)
}
