package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	flashnotice "github.com/sanjayconsultancy/visadesk/internal/services/web/platform/flash"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/requestmeta"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/session"
	webtemplates "github.com/sanjayconsultancy/visadesk/internal/services/web/templates"
)

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}

func TestWriteRendersFullPageWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/register", nil)
	rr := httptest.NewRecorder()

	err := Write(rr, req, Page{
		Title:      "Register",
		StatusCode: http.StatusAccepted,
		Body:       textComponent(`<section id="fragment-root">ok</section>`),
	}, requestmeta.SchemePolicy{})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!doctype html>", `id="fragment-root"`, "Admin Login"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q", marker)
		}
	}
}

func TestWriteUsesSessionForNavigation(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(session.WithSession(req.Context(), session.Session{ID: "sid", Token: "tok"}))
	rr := httptest.NewRecorder()

	if err := Write(rr, req, Page{}, requestmeta.SchemePolicy{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Logout") || strings.Contains(body, "Admin Login") {
		t.Fatalf("expected logged-in navigation")
	}
}

func TestWriteConsumesFlashNotice(t *testing.T) {
	t.Parallel()

	seed := httptest.NewRecorder()
	flashnotice.Write(seed, httptest.NewRequest(http.MethodGet, "/", nil), flashnotice.Error("Failed to download CV"), requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(seed.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	if err := Write(rr, req, Page{}, requestmeta.SchemePolicy{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(rr.Body.String(), "Failed to download CV") {
		t.Fatalf("expected flash notice in body")
	}
	cleared := false
	for _, c := range rr.Result().Cookies() {
		if c.Name == flashnotice.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected flash cookie to be cleared")
	}
}

func TestWriteReturnsBodyErrorsWithoutWriting(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), Page{
		Body: templ.ComponentFunc(func(context.Context, io.Writer) error { return errors.New("boom") }),
	}, requestmeta.SchemePolicy{})
	if err == nil {
		t.Fatalf("expected render error")
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected nothing written, got %q", rr.Body.String())
	}
}

func TestWriteSchedulesRefresh(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/admin/register", nil)
	rr := httptest.NewRecorder()

	err := Write(rr, req, Page{
		Title:   "Admin Register",
		Body:    textComponent("done"),
		Refresh: &webtemplates.Refresh{URL: "/admin/login", Delay: 2 * time.Second},
	}, requestmeta.SchemePolicy{})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := rr.Header().Get("Refresh"); got != "2; url=/admin/login" {
		t.Fatalf("Refresh header = %q", got)
	}
	if !strings.Contains(rr.Body.String(), `http-equiv="refresh"`) {
		t.Fatalf("body missing meta refresh: %q", rr.Body.String())
	}
}
