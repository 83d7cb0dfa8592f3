package templates

import (
	"context"
	"fmt"
	"html"
	"html/template"
	"io"
	"time"

	"github.com/a-h/templ"
)

// Nav drives the navigation bar. It is rebuilt from the session on every
// render, so login and logout show up on the very next page.
type Nav struct {
	LoggedIn  bool
	AdminName string
	Current   string
}

// Notice is an inline status banner.
type Notice struct {
	Kind    string
	Message string
}

// Refresh schedules a client-side navigation after Delay.
type Refresh struct {
	URL   string
	Delay time.Duration
}

// LayoutView is the page chrome around a body component.
type LayoutView struct {
	Title   string
	Lang    string
	Nav     Nav
	Notice  *Notice
	Refresh *Refresh
}

type layoutData struct {
	LayoutView
	RefreshMeta template.HTML
	Body        template.HTML
}

// Layout renders the page shell. The body is taken from the context
// children, as set by templ.WithChildren.
func Layout(view LayoutView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		body, err := templ.ToGoHTML(templ.ClearChildren(ctx), children)
		if err != nil {
			return fmt.Errorf("render page body: %w", err)
		}
		if view.Lang == "" {
			view.Lang = "en"
		}
		data := layoutData{LayoutView: view, Body: body}
		if view.Refresh != nil && view.Refresh.URL != "" {
			data.RefreshMeta = template.HTML(fmt.Sprintf(
				`<meta http-equiv="refresh" content="%d; url=%s">`,
				int(view.Refresh.Delay/time.Second), html.EscapeString(view.Refresh.URL),
			))
		}
		return render("layout", data).Render(ctx, w)
	})
}
