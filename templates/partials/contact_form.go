package partials

import (
	"strconv"
	"time"

	"advibes_site/middleware"
	"advibes_site/models"
	"advibes_site/services"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const (
	ContactFormID = "contact-form"
	BannerID      = middleware.FormBannerID
	// HoneypotField is hidden from people; anything in it marks a bot
	HoneypotField = "website"
	// CaptchaField is the form field the Turnstile widget fills in
	CaptchaField = "cf-turnstile-response"
)

const turnstileScript = "https://challenges.cloudflare.com/turnstile/v0/api.js"

// ContactFormView carries everything the form needs to render
type ContactFormView struct {
	State            services.FormState
	CSRFToken        string
	Nonce            string
	TurnstileSiteKey string
	Now              time.Time
	Services         []models.Service
}

type fieldSpec struct {
	label        string
	kind         string // input type, "select" or "textarea"
	placeholder  string
	maxLength    int
	autocomplete string
}

var fieldSpecs = map[services.Field]fieldSpec{
	services.FieldName:    {label: "Your Name", kind: "text", placeholder: "Jane Doe", maxLength: services.MaxNameLength, autocomplete: "name"},
	services.FieldEmail:   {label: "Email Address", kind: "email", placeholder: "jane@company.com", maxLength: services.MaxEmailLength, autocomplete: "email"},
	services.FieldPhone:   {label: "Phone Number", kind: "tel", placeholder: "+91 98765 43210", maxLength: services.MaxPhoneLength, autocomplete: "tel"},
	services.FieldCompany: {label: "Company", kind: "text", placeholder: "Company name", maxLength: services.MaxCompanyLength, autocomplete: "organization"},
	services.FieldService: {label: "Service Interested In", kind: "select", maxLength: services.MaxServiceLength},
	services.FieldMessage: {label: "Your Message", kind: "textarea", placeholder: "Tell us about your project, timeline and budget", maxLength: services.MaxMessageLength},
}

// ContactForm renders the whole form. It is also the htmx response to a
// submit, replacing itself.
func ContactForm(v ContactFormView) g.Node {
	submitting := v.State.Status == services.StatusSubmitting
	return h.Form(
		h.ID(ContactFormID),
		h.Class("card contact-form"),
		h.Method("post"),
		h.Action("/contact"),
		g.Attr("novalidate"),
		g.Attr("hx-post", "/contact"),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		g.Attr("data-status", string(v.State.Status)),

		Banner(v.State.Banner, v.Now),
		h.Input(h.Type("hidden"), h.Name(middleware.CSRFFormField), h.Value(v.CSRFToken)),
		honeypot(),

		h.Div(h.Class("form-grid"),
			g.Map(services.ContactFields, func(f services.Field) g.Node {
				return Field(v.State, f, v.Services)
			}),
		),

		g.If(v.TurnstileSiteKey != "", g.Group{
			h.Div(h.Class("cf-turnstile"), g.Attr("data-sitekey", v.TurnstileSiteKey), g.Attr("data-theme", "dark")),
			h.Script(h.Src(turnstileScript), g.Attr("nonce", v.Nonce), g.Attr("async"), g.Attr("defer")),
		}),

		h.Button(h.Type("submit"), h.Class("btn btn--primary btn--block"),
			g.If(submitting, h.Disabled()),
			h.Span(h.Class("btn__label"), g.Text("Send Message")),
			h.Span(h.Class("btn__busy"), g.Attr("aria-hidden", "true"), g.Text("Sending…")),
		),
	)
}

// honeypot is positioned off-screen by CSS and skipped by keyboard focus
func honeypot() g.Node {
	return h.Div(h.Class("hp"), g.Attr("aria-hidden", "true"),
		h.Label(h.For(HoneypotField), g.Text("Website")),
		h.Input(h.Type("text"), h.ID(HoneypotField), h.Name(HoneypotField),
			g.Attr("tabindex", "-1"), g.Attr("autocomplete", "off")),
	)
}

// FieldID is the id of a field's wrapper, the target of blur validation
func FieldID(f services.Field) string {
	return "field-" + string(f)
}

// Field renders one labelled input with its current value and error. It is
// the htmx response to POST /contact/validate/:field.
func Field(s services.FormState, f services.Field, serviceOptions []models.Service) g.Node {
	spec := fieldSpecs[f]
	name := string(f)
	value := s.Values[f]
	errMsg := s.Errors[f]
	errID := "error-" + name

	control := []g.Node{
		h.ID(name),
		h.Name(name),
		h.Required(),
		g.Attr("maxlength", strconv.Itoa(spec.maxLength)),
		g.Attr("hx-post", "/contact/validate/"+name),
		g.Attr("hx-trigger", "blur"),
		g.Attr("hx-target", "#"+FieldID(f)),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-sync", "closest form:abort"),
		g.If(errMsg != "", g.Group{
			g.Attr("aria-invalid", "true"),
			g.Attr("aria-describedby", errID),
		}),
		g.If(spec.autocomplete != "", g.Attr("autocomplete", spec.autocomplete)),
		g.If(spec.placeholder != "", h.Placeholder(spec.placeholder)),
	}

	var input g.Node
	switch spec.kind {
	case "textarea":
		input = h.Textarea(append(control, g.Attr("rows", "5"), g.Text(value))...)
	case "select":
		input = h.Select(append(control, serviceSelectOptions(value, serviceOptions))...)
	default:
		input = h.Input(append(control, h.Type(spec.kind), h.Value(value))...)
	}

	return h.Div(
		h.ID(FieldID(f)),
		c.Classes{"field": true, "field--wide": f == services.FieldMessage || f == services.FieldService, "has-error": errMsg != ""},
		h.Label(h.For(name), g.Text(spec.label), h.Span(h.Class("req"), g.Attr("aria-hidden", "true"), g.Text(" *"))),
		input,
		g.If(errMsg != "", h.P(h.ID(errID), h.Class("field__error"), g.Attr("role", "alert"), g.Attr("data-error-for", name), g.Text(errMsg))),
	)
}

func serviceSelectOptions(selected string, options []models.Service) g.Node {
	return g.Group{
		h.Option(h.Value(""), g.If(selected == "", h.Selected()), g.Text("Select a service")),
		g.Map(options, func(s models.Service) g.Node {
			return h.Option(h.Value(s.Slug), g.If(s.Slug == selected, h.Selected()), g.Text(s.Title))
		}),
	}
}

// Banner renders the form-level message, or an empty placeholder once it
// is no longer visible. An expiring banner asks to be dismissed when its
// time is up.
func Banner(b services.Banner, now time.Time) g.Node {
	visible := b.Message != "" && (b.ExpiresAt.IsZero() || now.Before(b.ExpiresAt))
	if !visible {
		return h.Div(h.ID(BannerID))
	}

	role := "status"
	if b.Kind == services.BannerError {
		role = "alert"
	}

	var dismiss g.Node
	if !b.ExpiresAt.IsZero() {
		remaining := b.ExpiresAt.Sub(now).Milliseconds()
		dismiss = g.Group{
			g.Attr("hx-get", "/contact/banner?expires="+strconv.FormatInt(b.ExpiresAt.UnixMilli(), 10)),
			g.Attr("hx-trigger", "load delay:"+strconv.FormatInt(remaining, 10)+"ms"),
			g.Attr("hx-swap", "outerHTML"),
		}
	}

	return h.Div(
		h.ID(BannerID),
		c.Classes{"form-banner": true, "form-banner--success": b.Kind == services.BannerSuccess, "form-banner--error": b.Kind == services.BannerError},
		g.Attr("role", role),
		dismiss,
		g.Text(b.Message),
	)
}
