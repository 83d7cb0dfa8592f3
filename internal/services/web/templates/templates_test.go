package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

func renderString(t *testing.T, c templ.Component, ctx context.Context) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func inputNamed(name string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode || (n.Data != "input" && n.Data != "textarea") {
			return false
		}
		v, _ := attr(n, "name")
		return v == name
	}
}

func TestLayoutWrapsChildrenAndNav(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), ErrorPage(ErrorView{StatusCode: 404, Heading: "Not found", Message: "User not found"}))
	out := renderString(t, Layout(LayoutView{Title: "Oops", Nav: Nav{LoggedIn: false}}), ctx)

	for _, marker := range []string{"<title>Oops | Sanjay Consultancy</title>", "User not found", "Admin Login", "Admin Register"} {
		if !strings.Contains(out, marker) {
			t.Fatalf("layout missing %q", marker)
		}
	}
	if strings.Contains(out, ">Logout<") {
		t.Fatalf("logged-out nav must not offer logout")
	}

	out = renderString(t, Layout(LayoutView{Nav: Nav{LoggedIn: true}}), context.Background())
	for _, marker := range []string{"Dashboard", "Logout"} {
		if !strings.Contains(out, marker) {
			t.Fatalf("logged-in nav missing %q", marker)
		}
	}
	if strings.Contains(out, "Admin Login") {
		t.Fatalf("logged-in nav must not offer admin login")
	}
}

func TestLayoutPlacesBodyInsideMain(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), templ.Raw(`<p id="page-body">hello</p>`))
	doc := parse(t, renderString(t, Layout(LayoutView{}), ctx))

	main := find(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "main" })
	if main == nil {
		t.Fatalf("layout has no <main>")
	}
	body := find(main, func(n *html.Node) bool {
		id, _ := attr(n, "id")
		return n.Type == html.ElementNode && id == "page-body"
	})
	if body == nil {
		t.Fatalf("page body not rendered inside <main>")
	}
}

func TestLayoutRendersRefreshAndNotice(t *testing.T) {
	t.Parallel()

	out := renderString(t, Layout(LayoutView{
		Refresh: &Refresh{URL: "/admin/login", Delay: 2 * time.Second},
		Notice:  &Notice{Kind: "error", Message: "Failed to download CV"},
	}), context.Background())

	doc := parse(t, out)
	meta := find(doc, func(n *html.Node) bool {
		v, _ := attr(n, "http-equiv")
		return n.Type == html.ElementNode && n.Data == "meta" && v == "refresh"
	})
	if meta == nil {
		t.Fatalf("expected meta refresh in %s", out)
	}
	if content, _ := attr(meta, "content"); content != "2; url=/admin/login" {
		t.Fatalf("refresh content = %q", content)
	}
	if !strings.Contains(out, "notice-error") || !strings.Contains(out, "Failed to download CV") {
		t.Fatalf("expected notice in output")
	}
}

func TestRegisterKeepsDraftValues(t *testing.T) {
	t.Parallel()

	out := renderString(t, Register(RegisterView{
		FormMessage:  FormMessage{Error: "Registration failed"},
		Name:         "Asha <Rao>",
		MobileNumber: "9999",
		Remark:       "note",
		FilesDropped: true,
	}), context.Background())
	doc := parse(t, out)

	name := find(doc, inputNamed("name"))
	if name == nil {
		t.Fatalf("missing name input")
	}
	if v, _ := attr(name, "value"); v != "Asha <Rao>" {
		t.Fatalf("name value = %q", v)
	}
	if _, required := attr(name, "required"); !required {
		t.Fatalf("name must be required")
	}
	remark := find(doc, inputNamed("remark"))
	if remark == nil || remark.FirstChild == nil || remark.FirstChild.Data != "note" {
		t.Fatalf("remark draft not kept")
	}
	if _, required := attr(remark, "required"); required {
		t.Fatalf("remark must be optional")
	}
	photo := find(doc, inputNamed("photo"))
	if v, _ := attr(photo, "accept"); v != "image/jpeg,image/png" {
		t.Fatalf("photo accept = %q", v)
	}
	cv := find(doc, inputNamed("cv"))
	if v, _ := attr(cv, "accept"); v != ".pdf,.doc,.docx" {
		t.Fatalf("cv accept = %q", v)
	}
	if !strings.Contains(out, "Registration failed") || !strings.Contains(out, "select your photo and CV again") {
		t.Fatalf("expected error and re-pick hint")
	}
}

func TestAdminLoginHintIsConditional(t *testing.T) {
	t.Parallel()

	with := renderString(t, AdminLogin(AdminLoginView{FirstTimeHint: true}), context.Background())
	if !strings.Contains(with, "First Time?") {
		t.Fatalf("expected first-time hint")
	}
	without := renderString(t, AdminLogin(AdminLoginView{Username: "root"}), context.Background())
	if strings.Contains(without, "First Time?") {
		t.Fatalf("unexpected first-time hint")
	}
	if find(parse(t, without), inputNamed("password")) == nil {
		t.Fatalf("missing password input")
	}
}

func TestAdminRegisterNeverEchoesPasswords(t *testing.T) {
	t.Parallel()

	out := renderString(t, AdminRegister(AdminRegisterView{Username: "root", Email: "r@example.com"}), context.Background())
	doc := parse(t, out)
	for _, field := range []string{"password", "confirmPassword"} {
		n := find(doc, inputNamed(field))
		if n == nil {
			t.Fatalf("missing %s input", field)
		}
		if _, ok := attr(n, "value"); ok {
			t.Fatalf("%s must not carry a value", field)
		}
	}
	if v, _ := attr(find(doc, inputNamed("email")), "value"); v != "r@example.com" {
		t.Fatalf("email value = %q", v)
	}
}

func TestDashboardDetailAndEmptyStates(t *testing.T) {
	t.Parallel()

	empty := renderString(t, Dashboard(DashboardView{}), context.Background())
	for _, marker := range []string{"Results (0)", "No users found", "Select a user to view details"} {
		if !strings.Contains(empty, marker) {
			t.Fatalf("empty dashboard missing %q", marker)
		}
	}

	out := renderString(t, Dashboard(DashboardView{
		Query:   "asha",
		Results: []ResultRow{{ID: "1", Name: "Asha", MobileNumber: "9999", DetailURL: "/admin/dashboard/users/1", Selected: true}},
		Selected: &UserDetail{
			ID: "1", Name: "Asha", HasPhoto: true, PhotoURL: "http://api.test/api/users/1/photo",
			Initial: "A", HasCV: true, CVURL: "/admin/dashboard/users/1/cv",
		},
	}), context.Background())
	doc := parse(t, out)

	img := find(doc, func(n *html.Node) bool { return n.Type == html.ElementNode && n.Data == "img" })
	if img == nil {
		t.Fatalf("expected photo img")
	}
	if src, _ := attr(img, "src"); src != "http://api.test/api/users/1/photo" {
		t.Fatalf("img src = %q", src)
	}
	if _, ok := attr(img, "onerror"); !ok {
		t.Fatalf("expected onerror fallback")
	}
	link := find(doc, func(n *html.Node) bool {
		v, _ := attr(n, "id")
		return v == "download-cv"
	})
	if link == nil {
		t.Fatalf("expected CV download link")
	}
	if !strings.Contains(out, "Results (1)") || !strings.Contains(out, "result selected") {
		t.Fatalf("expected selected result row")
	}

	noCV := renderString(t, Dashboard(DashboardView{Selected: &UserDetail{Name: "B"}}), context.Background())
	if strings.Contains(noCV, "download-cv") || strings.Contains(noCV, "<img") {
		t.Fatalf("record without attachments must not offer photo or CV")
	}
}

func TestHomeRendersMarketingContent(t *testing.T) {
	t.Parallel()

	out := renderString(t, Home(), context.Background())
	for _, marker := range []string{"Passport &amp; Visa Documentation", "12K&#43;", "Submit Profile", "Priya S.", "Register an Applicant"} {
		if !strings.Contains(out, marker) {
			t.Fatalf("home missing %q", marker)
		}
	}
}
