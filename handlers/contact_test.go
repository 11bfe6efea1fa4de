package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"advibes_site/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactPageHandler(t *testing.T) {
	t.Run("Renders form", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/contact", nil)
		c.Set("csrf", "csrf-token")

		require.NoError(t, ContactPageHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="contact-form"`)
		assert.Contains(t, rec.Body.String(), `value="csrf-token"`)
	})

	t.Run("Preselects known service", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/contact?service=motion-design", nil)
		require.NoError(t, ContactPageHandler(c))
		assert.Contains(t, rec.Body.String(), `<option value="motion-design" selected>`)
	})

	t.Run("Ignores unknown service", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/contact?service=evil", nil)
		require.NoError(t, ContactPageHandler(c))
		assert.NotContains(t, rec.Body.String(), "evil")
	})
}

func TestSubmitContactHandler(t *testing.T) {
	t.Run("Success via htmx", func(t *testing.T) {
		relay, _ := setupContact(t, testConfig())

		_, c, rec := setupEcho(http.MethodPost, "/contact", formBody(validForm()))
		c.Request().Header.Set("HX-Request", "true")

		require.NoError(t, SubmitContactHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, services.MsgSent[:20])
		assert.NotContains(t, body, "<html")
		assert.NotContains(t, body, "Asha Rao")
		require.Len(t, relay.sent, 1)
		assert.Equal(t, "Ad Films", relay.sent[0].ServiceLabel)
	})

	t.Run("Validation errors", func(t *testing.T) {
		relay, _ := setupContact(t, testConfig())
		form := validForm()
		form.Set("email", "not-an-email")

		_, c, rec := setupEcho(http.MethodPost, "/contact", formBody(form))
		require.NoError(t, SubmitContactHandler(c))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email format")
		assert.Contains(t, rec.Body.String(), `value="Asha Rao"`)
		assert.Empty(t, relay.sent)
	})

	t.Run("Honeypot is silently dropped", func(t *testing.T) {
		relay, _ := setupContact(t, testConfig())
		form := validForm()
		form.Set("website", "http://spam.example")

		_, c, rec := setupEcho(http.MethodPost, "/contact", formBody(form))
		c.Request().Header.Set("HX-Request", "true")
		require.NoError(t, SubmitContactHandler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<div id="form-banner"></div>`)
		assert.Empty(t, relay.sent)
	})

	t.Run("Rate limited after three", func(t *testing.T) {
		relay, _ := setupContact(t, testConfig())

		for i := 0; i < 3; i++ {
			_, c, rec := setupEcho(http.MethodPost, "/contact", formBody(validForm()))
			require.NoError(t, SubmitContactHandler(c))
			require.Equal(t, http.StatusOK, rec.Code)
		}

		_, c, rec := setupEcho(http.MethodPost, "/contact", formBody(validForm()))
		require.NoError(t, SubmitContactHandler(c))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), services.MsgRateLimited)
		assert.Len(t, relay.sent, 3)
	})

	t.Run("Relay failure keeps values", func(t *testing.T) {
		relay, _ := setupContact(t, testConfig())
		relay.err = errors.New("smtp timeout")

		_, c, rec := setupEcho(http.MethodPost, "/contact", formBody(validForm()))
		require.NoError(t, SubmitContactHandler(c))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.NotContains(t, rec.Body.String(), "smtp timeout")
		assert.Contains(t, rec.Body.String(), `value="Asha Rao"`)
	})

	t.Run("Unavailable without service", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodPost, "/contact", formBody(validForm()))
		err := SubmitContactHandler(c)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusServiceUnavailable, he.Code)
	})
}

func TestValidateFieldHandler(t *testing.T) {
	setupContact(t, testConfig())

	t.Run("Invalid value", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/contact/validate/phone", formBody(map[string][]string{"phone": {"call me"}}))
		c.SetParamNames("field")
		c.SetParamValues("phone")

		require.NoError(t, ValidateFieldHandler(c))
		assert.Contains(t, rec.Body.String(), `id="field-phone"`)
		assert.Contains(t, rec.Body.String(), "Phone contains invalid characters")
	})

	t.Run("Valid value", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/contact/validate/name", formBody(map[string][]string{"name": {"Asha"}}))
		c.SetParamNames("field")
		c.SetParamValues("name")

		require.NoError(t, ValidateFieldHandler(c))
		assert.NotContains(t, rec.Body.String(), "field__error")
		assert.Contains(t, rec.Body.String(), `value="Asha"`)
	})

	t.Run("Unknown field", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodPost, "/contact/validate/password", formBody(nil))
		c.SetParamNames("field")
		c.SetParamValues("password")

		he, ok := ValidateFieldHandler(c).(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func TestDismissBannerHandler(t *testing.T) {
	_, clock := setupContact(t, testConfig())
	expires := clock.Now().Add(services.DefaultBannerTTL)
	path := "/contact/banner?expires=" + strconv.FormatInt(expires.UnixMilli(), 10)

	t.Run("Still early", func(t *testing.T) {
		clock.Advance(2 * time.Second)
		_, c, rec := setupEcho(http.MethodGet, path, nil)
		require.NoError(t, DismissBannerHandler(c))
		assert.Contains(t, rec.Body.String(), "form-banner--success")
		assert.Contains(t, rec.Body.String(), "load delay:3000ms")
	})

	t.Run("Expired", func(t *testing.T) {
		clock.Advance(3 * time.Second)
		_, c, rec := setupEcho(http.MethodGet, path, nil)
		require.NoError(t, DismissBannerHandler(c))
		assert.Equal(t, `<div id="form-banner"></div>`, rec.Body.String())
	})

	t.Run("Garbage", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/contact/banner?expires=soon", nil)
		require.NoError(t, DismissBannerHandler(c))
		assert.Equal(t, `<div id="form-banner"></div>`, rec.Body.String())
	})
}

func TestSubmitStatus(t *testing.T) {
	s := services.NewFormState()
	s.Status = services.StatusSuccess
	assert.Equal(t, http.StatusOK, submitStatus(s))

	s = services.NewFormState()
	s.Status = services.StatusFailed
	s.Banner = services.Banner{Kind: services.BannerError, Message: services.MsgCaptcha}
	assert.Equal(t, http.StatusForbidden, submitStatus(s))
}
