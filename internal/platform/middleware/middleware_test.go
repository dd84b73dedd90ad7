package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestIDGenerated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestID()(func(c echo.Context) error {
		rid, _ := c.Get("request_id").(string)
		if rid == "" {
			t.Error("request_id not set on context")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatal(err)
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Error("X-Request-ID header not set on response")
	}
}

func TestRequestIDPreservesClientID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-rid")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestID()(func(c echo.Context) error {
		if rid, _ := c.Get("request_id").(string); rid != "client-rid" {
			t.Errorf("request_id = %q, want client-rid", rid)
		}
		return nil
	})
	if err := h(c); err != nil {
		t.Fatal(err)
	}
}

func TestRecoveryConvertsPanic(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Recovery(zerolog.Nop())(func(c echo.Context) error {
		panic("boom")
	})
	err := h(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", httpErr.Code)
	}
}

func TestLoggerLevelTracksStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	e := echo.New()

	run := func(h echo.HandlerFunc) string {
		t.Helper()
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("request_id", "rid-1")
		_ = Logger(logger)(h)(c)
		return buf.String()
	}

	out := run(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if !strings.Contains(out, `"level":"info"`) {
		t.Errorf("2xx should log at info, got %s", out)
	}

	out = run(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, `"status":404`) {
		t.Errorf("4xx should log at warn with its status, got %s", out)
	}

	out = run(func(c echo.Context) error { return errors.New("boom") })
	if !strings.Contains(out, `"level":"error"`) {
		t.Errorf("failure should log at error, got %s", out)
	}
	if !strings.Contains(out, `"request_id":"rid-1"`) {
		t.Errorf("log line missing request id: %s", out)
	}
}

func TestRecoveryLogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("request_id", "rid-2")

	_ = Recovery(logger)(func(c echo.Context) error {
		panic("boom")
	})(c)
	if !strings.Contains(buf.String(), `"request_id":"rid-2"`) {
		t.Errorf("panic log missing request id: %s", buf.String())
	}
}

func TestRecoveryReRaisesAbortHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	defer func() {
		if recover() != http.ErrAbortHandler {
			t.Error("expected http.ErrAbortHandler to propagate")
		}
	}()
	_ = Recovery(zerolog.Nop())(func(c echo.Context) error {
		panic(http.ErrAbortHandler)
	})(c)
	t.Error("handler should have panicked")
}

func TestRequestTimeout(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestTimeout(10 * time.Millisecond)(func(c echo.Context) error {
		select {
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		case <-time.After(time.Second):
			return c.NoContent(http.StatusOK)
		}
	})
	if err := h(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want 504", rec.Code)
	}
}

func TestRequestTimeoutPassesFastHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestTimeout(time.Second)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	if err := h(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}
