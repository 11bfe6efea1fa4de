package components

import (
	"advibes_site/models"
	"advibes_site/services"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func BehindTheBuild(projects []models.BTSProject) g.Node {
	return h.Section(h.ID("behind-the-build"), h.Class("section"),
		h.Div(h.Class("container"),
			SectionHeading("Process", "Behind the Build", "A peek into our process. See how we bring ideas to life on set and in the edit."),
			g.Map(projects, btsGallery),
		),
	)
}

func btsGallery(p models.BTSProject) g.Node {
	if len(p.Images) == 0 {
		return h.Div(h.Class("bts"),
			h.H3(g.Text(p.Title)),
			h.P(h.Class("empty"), g.Text("Gallery coming soon.")),
		)
	}
	return h.Div(h.Class("bts"),
		h.H3(g.Text(p.Title)),
		h.Div(h.Class("bts__track"),
			g.Map(p.Images, func(image string) g.Node {
				return h.Figure(h.Class("bts__item"),
					h.Img(h.Src(services.ResolveMedia(p.ImageKey(image))), h.Alt(p.Title+" behind the scenes"), g.Attr("loading", "lazy")),
				)
			}),
		),
	)
}
