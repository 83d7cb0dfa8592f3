package web

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sanjayconsultancy/visadesk/internal/platform/logging"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/metrics"
	"github.com/sanjayconsultancy/visadesk/internal/test/fakeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	api    *fakeapi.API
	web    *httptest.Server
	client *http.Client
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	api := fakeapi.New()
	backend := httptest.NewServer(api.Handler())
	t.Cleanup(backend.Close)

	handler, err := NewHandler(Config{
		APIURL:  backend.URL,
		Logger:  logging.Discard(),
		Metrics: metrics.New(),
	})
	require.NoError(t, err)
	web := httptest.NewServer(handler)
	t.Cleanup(web.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &harness{
		api: api,
		web: web,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (h *harness) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := h.client.Get(h.web.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (h *harness) post(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, h.web.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", h.web.URL)
	resp, err := h.client.Do(req)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return resp
}

func TestProcessRoutes(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	resp, body := h.get(t, "/up")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, _ = h.get(t, "/static/app.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	h.get(t, "/admin/login")
	resp, body = h.get(t, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "visadesk_web_http_requests_total")
	assert.Contains(t, body, `visadesk_gateway_requests_total{operation="check_admin",outcome="ok"}`)
}

func TestUnknownPathsRedirectHome(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	resp, _ := h.get(t, "/does/not/exist")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestAdminFlowSearchDownloadAndLogout(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.api.AddAdmin(fakeapi.Admin{Username: "root", Email: "root@example.test", Password: "secret1"})
	stored := h.api.AddApplicant(fakeapi.Applicant{
		User: gateway.User{Name: "Asha Rai", PassportNumber: "P100", VillageTown: "Dharan"},
		CV:   []byte("%PDF-1.4 asha"),
	})
	h.api.AddApplicant(fakeapi.Applicant{User: gateway.User{Name: "Bikash Thapa", PassportNumber: "P200"}})

	resp, _ := h.get(t, "/admin/dashboard")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/login", resp.Header.Get("Location"))

	resp = h.post(t, "/admin/login", url.Values{"username": {"root"}, "password": {"secret1"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/dashboard", resp.Header.Get("Location"))

	resp, _ = h.get(t, "/admin/dashboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.post(t, "/admin/dashboard/search", url.Values{"query": {"asha"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	resp, body := h.get(t, "/admin/dashboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Asha Rai")
	assert.NotContains(t, body, "Bikash Thapa")

	resp = h.post(t, "/admin/dashboard/all", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	_, body = h.get(t, "/admin/dashboard")
	assert.Contains(t, body, "Bikash Thapa")

	resp, body = h.get(t, "/admin/dashboard/users/"+stored.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Dharan")

	resp, body = h.get(t, "/admin/dashboard/users/"+stored.ID+"/cv")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "%PDF-1.4 asha", body)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="CV-asha-rai-`)

	resp = h.post(t, "/logout", nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp, _ = h.get(t, "/admin/dashboard")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/login", resp.Header.Get("Location"))
}

func TestDashboardMutationRequiresSameOrigin(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	h.api.AddAdmin(fakeapi.Admin{Username: "root", Email: "root@example.test", Password: "secret1"})

	resp := h.post(t, "/admin/login", url.Values{"username": {"root"}, "password": {"secret1"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, h.web.URL+"/admin/dashboard/all", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://elsewhere.example.test")
	resp, err = h.client.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestApplicantRegistrationReachesBackend(t *testing.T) {
	t.Parallel()
	h := newHarness(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range map[string]string{
		"name":           "Chandra Gurung",
		"passportNumber": "P300",
		"dateOfBirth":    "1992-02-02",
		"designation":    "Cook",
		"ppType":         "Ordinary",
		"mobileNumber":   "9811111111",
		"villageTown":    "Ilam",
	} {
		require.NoError(t, writer.WriteField(name, value))
	}
	part, err := writer.CreateFormFile("cv", "cv.pdf")
	require.NoError(t, err)
	_, _ = part.Write([]byte("cv-bytes"))
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, h.web.URL+"/register", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := h.client.Do(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Registration successful")
	stored := h.api.Applicants()
	require.Len(t, stored, 1)
	assert.Equal(t, "cv-bytes", string(stored[0].CV))
}

func TestNewHandlerRequiresAPIURL(t *testing.T) {
	t.Parallel()

	_, err := NewHandler(Config{APIURL: "not a url"})
	assert.Error(t, err)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{
		HTTPAddr: "127.0.0.1:0",
		APIURL:   "http://127.0.0.1:1",
		Logger:   logging.Discard(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.ListenAndServe(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}
