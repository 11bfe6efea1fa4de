package components

import (
	"fmt"
	"strings"
	"time"

	"advibes_site/models"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// SpotlightID is the element the testimonial rotation swaps
const SpotlightID = "testimonial-spotlight"

// SpotlightView is the testimonial currently in the spotlight
type SpotlightView struct {
	Testimonial models.Testimonial
	Index       int
	Total       int
	Interval    time.Duration // zero disables polling
}

// Testimonials renders the rotating spotlight above the full list
func Testimonials(spot SpotlightView, all []models.Testimonial) g.Node {
	return h.Section(h.ID("testimonials"), h.Class("section"),
		h.Div(h.Class("container"),
			SectionHeading("Testimonials", "What Our Clients Say", ""),
			g.If(spot.Total > 0, Spotlight(spot)),
			h.Div(h.Class("grid grid--3 testimonials__list"),
				g.Map(all, func(t models.Testimonial) g.Node {
					return testimonialCard(t, "card")
				}),
			),
		),
	)
}

// Spotlight renders one testimonial and, when there is more than one,
// polls for the next one.
func Spotlight(spot SpotlightView) g.Node {
	poll := spot.Total > 1 && spot.Interval > 0
	return h.Div(h.ID(SpotlightID), h.Class("spotlight"), g.Attr("aria-live", "polite"),
		g.If(poll, g.Group{
			g.Attr("hx-get", "/testimonials/spotlight"),
			g.Attr("hx-trigger", fmt.Sprintf("every %ds", int(spot.Interval.Seconds()))),
			g.Attr("hx-swap", "outerHTML"),
		}),
		testimonialCard(spot.Testimonial, "card card--featured"),
		g.If(spot.Total > 1, h.Ol(h.Class("spotlight__dots"), g.Attr("aria-label", "Testimonial position"),
			g.Map(dotIndexes(spot.Total), func(i int) g.Node {
				return h.Li(c.Classes{"dot": true, "is-active": i == spot.Index},
					h.Span(h.Class("sr-only"), g.Textf("Testimonial %d of %d", i+1, spot.Total)),
				)
			}),
		)),
	)
}

func testimonialCard(t models.Testimonial, class string) g.Node {
	return h.Figure(h.Class(class+" testimonial"),
		h.P(h.Class("rating"), g.Attr("aria-label", fmt.Sprintf("%d out of 5 stars", t.Rating)),
			g.Text(strings.Repeat("★", t.Rating)),
		),
		g.El("blockquote", h.P(g.Text(t.Quote))),
		h.FigCaption(
			h.Span(h.Class("avatar"), g.Attr("aria-hidden", "true"), g.Text(t.Avatar)),
			h.Strong(g.Text(t.Name)),
			h.Span(h.Class("muted"), g.Text(t.Role+", "+t.Company)),
		),
	)
}

func dotIndexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
