package handlers

import (
	"net/http"

	"advibes_site/config"
	"advibes_site/metrics"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

func render(c echo.Context, component templ.Component) error {
	return renderStatus(c, http.StatusOK, component)
}

func renderStatus(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// isHTMX reports whether the request was issued by htmx
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// htmxTarget is the id of the element htmx will swap, if any
func htmxTarget(c echo.Context) string {
	return c.Request().Header.Get("HX-Target")
}

func siteConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}

func siteMetrics(c echo.Context) *metrics.Manager {
	m, _ := c.Get("metrics").(*metrics.Manager)
	return m
}
