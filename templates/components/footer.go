package components

import (
	"strings"
	"time"

	"advibes_site/content"
	"advibes_site/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Footer renders contact details, link columns and the social links. All
// external links go through ExternalLink.
func Footer(whatsAppURL string) g.Node {
	info := content.Contact
	return h.Footer(h.Class("footer"),
		h.Div(h.Class("container footer__grid"),
			h.Div(
				h.A(h.Href("/"), h.Class("brand"), h.Span(h.Class("brand__mark"), g.Text(content.BrandName))),
				h.P(h.Class("muted"), g.Text("Video production and advertising for brands that want to be remembered.")),
				h.Ul(h.Class("social"),
					g.Map(content.SocialLinks, func(s models.SocialLink) g.Node {
						return h.Li(ExternalLink(s.URL, "social__link", g.Text(s.Name)))
					}),
				),
			),
			h.Div(
				h.H4(g.Text("Quick Links")),
				h.Ul(g.Map(content.NavItems, func(n models.NavItem) g.Node {
					return h.Li(h.A(h.Href(n.Path), g.Text(n.Label)))
				})),
			),
			h.Div(
				h.H4(g.Text("Services")),
				h.Ul(g.Map(content.Services, func(s models.Service) g.Node {
					return h.Li(h.A(h.Href("/works/"+s.Slug), g.Text(s.Title)))
				})),
			),
			h.Div(
				h.H4(g.Text("Contact")),
				ContactDetails(info, whatsAppURL),
			),
		),
		h.Div(h.Class("container footer__bottom"),
			h.P(g.Textf("© %d %s. All rights reserved.", time.Now().Year(), content.BrandFull)),
		),
	)
}

// ContactDetails is the address block shared by the footer and contact page
func ContactDetails(info models.ContactInfo, whatsAppURL string) g.Node {
	return h.Ul(h.Class("contact-details"),
		h.Li(h.A(h.Href("mailto:"+info.Email), g.Text(info.Email))),
		h.Li(h.A(h.Href("tel:"+strings.ReplaceAll(info.Phone, " ", "")), g.Text(info.Phone))),
		g.If(whatsAppURL != "", h.Li(ExternalLink(whatsAppURL, "", g.Text("WhatsApp us")))),
		g.Map(info.Addresses, func(a string) g.Node {
			return h.Li(h.Class("address"), Multiline(a))
		}),
	)
}

// Multiline renders newline-separated text with <br> between lines
func Multiline(s string) g.Node {
	lines := strings.Split(s, "\n")
	nodes := make(g.Group, 0, len(lines)*2)
	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, h.Br())
		}
		nodes = append(nodes, g.Text(line))
	}
	return nodes
}
