package handlers

import (
	"net/http"
	"strconv"
	"time"

	"advibes_site/content"
	"advibes_site/middleware"
	"advibes_site/services"
	"advibes_site/templates/pages"
	"advibes_site/templates/partials"

	"github.com/labstack/echo/v4"
)

func contactNow() time.Time {
	if services.Contact != nil {
		return services.Contact.Now()
	}
	return time.Now()
}

func contactFormView(c echo.Context, state services.FormState) partials.ContactFormView {
	nonce, _ := c.Get(string(middleware.NonceKey)).(string)
	return partials.ContactFormView{
		State:            state,
		CSRFToken:        middleware.GetCSRFToken(c),
		Nonce:            nonce,
		TurnstileSiteKey: siteConfig(c).TurnstileSiteKey,
		Now:              contactNow(),
		Services:         content.Services,
	}
}

// formStateFromRequest replays the posted values into a fresh form
func formStateFromRequest(c echo.Context) services.FormState {
	state := services.NewFormState()
	for _, f := range services.ContactFields {
		state = services.Edit(state, f, c.FormValue(string(f)))
	}
	return state
}

// ContactPageHandler renders the contact page. A known ?service= slug is
// preselected.
func ContactPageHandler(c echo.Context) error {
	state := services.NewFormState()
	if slug := c.QueryParam("service"); slug != "" {
		if _, ok := content.ServiceBySlug(slug); ok {
			state = services.Edit(state, services.FieldService, slug)
		}
	}
	return render(c, pages.Contact(namedPageMeta(c, "contact"), contactFormView(c, state)))
}

// SubmitContactHandler runs a submission through the contact service. htmx
// requests get the form fragment back; plain form posts get the full page.
func SubmitContactHandler(c echo.Context) error {
	if services.Contact == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Contact form is unavailable")
	}

	sub := services.Submission{
		Honeypot:     c.FormValue(partials.HoneypotField),
		ClientID:     c.RealIP(),
		CaptchaToken: c.FormValue(partials.CaptchaField),
		RemoteIP:     c.RealIP(),
	}
	next := services.Contact.Submit(c.Request().Context(), formStateFromRequest(c), sub)
	view := contactFormView(c, next)

	if isHTMX(c) {
		// htmx does not swap error responses, so the outcome travels in the body
		return render(c, pages.ContactForm(view))
	}
	return renderStatus(c, submitStatus(next), pages.Contact(namedPageMeta(c, "contact"), view))
}

func submitStatus(s services.FormState) int {
	switch {
	case s.Status == services.StatusSuccess:
		return http.StatusOK
	case s.HasErrors():
		return http.StatusUnprocessableEntity
	case s.Banner.Message == services.MsgRateLimited:
		return http.StatusTooManyRequests
	case s.Banner.Message == services.MsgSendFailed:
		return http.StatusBadGateway
	case s.Banner.Message == services.MsgCaptcha:
		return http.StatusForbidden
	default:
		// honeypot: indistinguishable from an accepted post
		return http.StatusOK
	}
}

// ValidateFieldHandler validates one field when it loses focus and returns
// the re-rendered field.
func ValidateFieldHandler(c echo.Context) error {
	field := services.Field(c.Param("field"))
	if !services.IsContactField(field) {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown field")
	}

	state := services.Edit(services.NewFormState(), field, c.FormValue(string(field)))
	if services.Contact != nil {
		state = services.Contact.ValidateOnBlur(state, field)
	} else {
		state = services.Blur(state, field)
	}
	return render(c, pages.ContactField(contactFormView(c, state), field))
}

// DismissBannerHandler is polled by the success banner once it should have
// expired. It returns the banner again if it is still early.
func DismissBannerHandler(c echo.Context) error {
	now := contactNow()
	state := services.NewFormState()

	if ms, err := strconv.ParseInt(c.QueryParam("expires"), 10, 64); err == nil {
		expires := time.UnixMilli(ms)
		if latest := now.Add(services.DefaultBannerTTL); expires.After(latest) {
			expires = latest
		}
		state.Banner = services.Banner{
			Kind:      services.BannerSuccess,
			Message:   services.MsgSent,
			ExpiresAt: expires,
		}
	}
	state = services.Tick(state, now)
	return render(c, pages.FormBanner(state.Banner, now))
}
