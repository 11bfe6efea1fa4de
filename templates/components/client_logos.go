package components

import (
	"advibes_site/models"
	"advibes_site/services"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ClientLogos is the "trusted by" strip. Logos whose URL fails the safety
// gate are skipped.
func ClientLogos(logos []models.ClientLogo) g.Node {
	safe := make([]models.ClientLogo, 0, len(logos))
	for _, l := range logos {
		if services.ValidateURL(l.Logo) {
			safe = append(safe, l)
		}
	}
	return h.Section(h.ID("clients"), h.Class("section section--tight"),
		h.Div(h.Class("container"),
			h.P(h.Class("eyebrow center"), g.Text("Trusted by brands across Maharashtra")),
			h.Ul(h.Class("logo-strip"),
				g.Map(safe, func(l models.ClientLogo) g.Node {
					return h.Li(h.Img(h.Src(l.Logo), h.Alt(l.Name), g.Attr("loading", "lazy")))
				}),
			),
		),
	)
}
