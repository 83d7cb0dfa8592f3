// Package templates renders the web pages as templ components.
//
// Page markup lives in embedded html/template files; each exported
// constructor wraps one named template so handlers compose pages the same
// way they compose any other templ.Component.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/sanjayconsultancy/visadesk/internal/platform/branding"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/routepath"
)

type brand struct {
	Name    string
	Tagline string
	Mark    string
}

//go:embed html/*.html
var files embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"path": func(name string) string {
		switch name {
		case "root":
			return routepath.Root
		case "register":
			return routepath.Register
		case "logout":
			return routepath.Logout
		case "adminLogin":
			return routepath.AdminLogin
		case "adminRegister":
			return routepath.AdminRegister
		case "dashboard":
			return routepath.AdminDashboard
		case "search":
			return routepath.DashboardSearch
		case "all":
			return routepath.DashboardAll
		case "static":
			return routepath.Static
		}
		panic(fmt.Sprintf("templates: unknown path %q", name))
	},
	"inc":   func(i int) int { return i + 1 },
	"brand": func() brand { return brand{Name: branding.AppName, Tagline: branding.Tagline, Mark: branding.Mark} },
}).ParseFS(files, "html/*.html"))

// render returns a component executing the named template with data.
func render(name string, data any) templ.Component {
	t := pages.Lookup(name)
	if t == nil {
		return templ.ComponentFunc(func(context.Context, io.Writer) error {
			return fmt.Errorf("template %q is not defined", name)
		})
	}
	return templ.FromGoHTML(t, data)
}
