package components

import (
	"advibes_site/services"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ExternalLink renders an anchor that opens in a new tab, but only for a
// URL that passes the safety gate. A rejected URL renders its children as
// plain text.
func ExternalLink(raw string, class string, children ...g.Node) g.Node {
	link, ok := services.SafeOpenURL(raw, "_blank")
	if !ok {
		return h.Span(g.If(class != "", h.Class(class)), g.Group(children))
	}
	return h.A(
		h.Href(link.Href),
		h.Target(link.Target),
		h.Rel(link.Rel),
		g.If(class != "", h.Class(class)),
		g.Group(children),
	)
}
