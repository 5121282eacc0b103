package api_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kucukaslan/hello/api"
	"kucukaslan/hello/domain"
)

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(api.NewHelloHandler().Hello)
	return app
}

func TestHelloAnswersEveryMethodAndPath(t *testing.T) {
	app := newApp()

	methods := []string{
		fiber.MethodGet,
		fiber.MethodPost,
		fiber.MethodPut,
		fiber.MethodPatch,
		fiber.MethodDelete,
		fiber.MethodOptions,
	}
	paths := []string{
		"/",
		"/hello",
		"/a/b/c",
		"/swagger/index.html",
		"/search?q=anything&page=2",
	}

	for _, method := range methods {
		for _, path := range paths {
			req := httptest.NewRequest(method, path, nil)
			resp, err := app.Test(req, -1)
			require.NoError(t, err, "%s %s", method, path)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, fiber.StatusOK, resp.StatusCode, "%s %s", method, path)
			assert.Equal(t, domain.Greeting, string(body), "%s %s", method, path)
		}
	}
}

func TestHelloIgnoresHeadersAndBody(t *testing.T) {
	app := newApp()

	for _, tt := range []struct {
		desc        string
		contentType string
		body        string
	}{
		{desc: "json", contentType: fiber.MIMEApplicationJSON, body: `{"event_name":"purchase"}`},
		{desc: "malformed json", contentType: fiber.MIMEApplicationJSON, body: `{"event_name":`},
		{desc: "form", contentType: fiber.MIMEApplicationForm, body: "a=1&b=2"},
		{desc: "binary", contentType: fiber.MIMEOctetStream, body: "\x00\x01\x02"},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/events", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, tt.contentType)
			req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationXML)
			req.Header.Set("X-Request-Id", "abc123")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, domain.Greeting, string(body))
		})
	}
}

func TestHelloSetsContentLength(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.EqualValues(t, len(domain.Greeting), resp.ContentLength)
}
