package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatalf("expected nil request to have no session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "http://desk.example", nil)
	if _, ok := Read(req); ok {
		t.Fatalf("expected missing cookie")
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "  sid-1  "})
	value, ok := Read(req)
	if !ok {
		t.Fatalf("expected cookie to be present")
	}
	if value != "sid-1" {
		t.Fatalf("value = %q, want %q", value, "sid-1")
	}
}

func TestWriteSetsSecureOnlyForHTTPS(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		target string
		secure bool
	}{
		{target: "https://desk.example", secure: true},
		{target: "http://desk.example", secure: false},
	} {
		rr := httptest.NewRecorder()
		Write(rr, httptest.NewRequest(http.MethodGet, tc.target, nil), "sid-1", Options{MaxAge: time.Hour})
		cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
		if err != nil {
			t.Fatalf("ParseSetCookie() error = %v", err)
		}
		if cookie.Name != Name || cookie.Value != "sid-1" {
			t.Fatalf("cookie = %s=%s", cookie.Name, cookie.Value)
		}
		if cookie.Secure != tc.secure {
			t.Fatalf("%s: secure = %v, want %v", tc.target, cookie.Secure, tc.secure)
		}
		if !cookie.HttpOnly {
			t.Fatalf("expected HttpOnly cookie")
		}
		if cookie.MaxAge != 3600 {
			t.Fatalf("max age = %d, want 3600", cookie.MaxAge)
		}
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Clear(rr, httptest.NewRequest(http.MethodGet, "http://desk.example", nil), Options{})
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("max age = %d, want negative", cookie.MaxAge)
	}
}
