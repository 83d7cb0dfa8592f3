package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "http://desk.example/", nil)
	if IsHTTPS(plain, SchemePolicy{}) {
		t.Fatalf("expected plain request to be http")
	}

	secure := httptest.NewRequest(http.MethodGet, "/", nil)
	secure.TLS = &tls.ConnectionState{}
	if !IsHTTPS(secure, SchemePolicy{}) {
		t.Fatalf("expected TLS request to be https")
	}

	forwarded := httptest.NewRequest(http.MethodGet, "/", nil)
	forwarded.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPS(forwarded, SchemePolicy{}) {
		t.Fatalf("forwarded proto must be ignored without trust")
	}
	if !IsHTTPS(forwarded, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatalf("forwarded proto should be honoured when trusted")
	}
}

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		value  string
		want   bool
	}{
		{name: "matching origin", header: "Origin", value: "http://desk.example", want: true},
		{name: "matching referer", header: "Referer", value: "http://desk.example/admin/dashboard", want: true},
		{name: "other host", header: "Origin", value: "http://evil.example", want: false},
		{name: "other scheme", header: "Origin", value: "https://desk.example", want: false},
		{name: "other port", header: "Origin", value: "http://desk.example:8080", want: false},
		{name: "missing", want: false},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodPost, "http://desk.example/logout", nil)
		if tc.header != "" {
			req.Header.Set(tc.header, tc.value)
		}
		if got := HasSameOriginProof(req, SchemePolicy{}); got != tc.want {
			t.Fatalf("%s: HasSameOriginProof() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsMutation(t *testing.T) {
	t.Parallel()

	for method, want := range map[string]bool{
		http.MethodGet:    false,
		http.MethodHead:   false,
		http.MethodPost:   true,
		http.MethodDelete: true,
	} {
		req := httptest.NewRequest(method, "/", nil)
		if got := IsMutation(req); got != want {
			t.Fatalf("IsMutation(%s) = %v, want %v", method, got, want)
		}
	}
}
