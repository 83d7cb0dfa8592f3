// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"

	flashnotice "github.com/sanjayconsultancy/visadesk/internal/services/web/platform/flash"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/httpx"
	webi18n "github.com/sanjayconsultancy/visadesk/internal/services/web/platform/i18n"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/requestmeta"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/session"
	webtemplates "github.com/sanjayconsultancy/visadesk/internal/services/web/templates"
)

// Page describes one full-page response.
type Page struct {
	Title      string
	StatusCode int
	Body       templ.Component
	Refresh    *webtemplates.Refresh
}

// Write renders page inside the shared layout. Navigation is derived from
// the request's session and a pending flash notice is consumed.
func Write(w http.ResponseWriter, r *http.Request, page Page, policy requestmeta.SchemePolicy) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}

	view := webtemplates.LayoutView{
		Title:   page.Title,
		Lang:    webi18n.ResolveTag(r).String(),
		Nav:     navFor(r),
		Refresh: page.Refresh,
	}
	if notice, ok := flashnotice.ReadAndClear(w, r, policy); ok {
		view.Notice = &webtemplates.Notice{Kind: string(notice.Kind), Message: notice.Message}
	}

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := webtemplates.Layout(view).Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if page.Refresh != nil && page.Refresh.URL != "" {
		w.Header().Set("Refresh", fmt.Sprintf("%d; url=%s", int(page.Refresh.Delay/time.Second), page.Refresh.URL))
	}
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func navFor(r *http.Request) webtemplates.Nav {
	nav := webtemplates.Nav{}
	if r == nil {
		return nav
	}
	nav.Current = r.URL.Path
	s, _ := session.FromContext(r.Context())
	nav.LoggedIn = s.LoggedIn()
	if s.Admin != nil {
		nav.AdminName = s.Admin.Username
	}
	return nav
}
