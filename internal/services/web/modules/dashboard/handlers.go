package dashboard

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	flashnotice "github.com/sanjayconsultancy/visadesk/internal/services/web/platform/flash"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/httpx"
	webi18n "github.com/sanjayconsultancy/visadesk/internal/services/web/platform/i18n"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/modulehandler"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/pagerender"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/weberror"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/routepath"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/session"
	webtemplates "github.com/sanjayconsultancy/visadesk/internal/services/web/templates"
)

const pageTitle = "Admin Dashboard"

type handlers struct {
	modulehandler.Base
	service service
	boards  *boards
}

func newHandlers(s service, base modulehandler.Base, b *boards) handlers {
	return handlers{Base: base, service: s, boards: b}
}

func (h handlers) board(r *http.Request) *board {
	s, _ := session.FromContext(r.Context())
	return h.boards.get(s.ID)
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.board(r).snapshot(), "")
}

func (h handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.service.search(httpx.RequestContext(r), h.board(r), r.PostFormValue("query")); err != nil {
		h.logLoadFailure("search users", err)
	}
	httpx.WriteRedirect(w, r, routepath.AdminDashboard)
}

func (h handlers) handleAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.listAll(httpx.RequestContext(r), h.board(r)); err != nil {
		h.logLoadFailure("list users", err)
	}
	httpx.WriteRedirect(w, r, routepath.AdminDashboard)
}

func (h handlers) logLoadFailure(operation string, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	h.Logger().Warn(operation, "error", err)
}

func (h handlers) handleUser(w http.ResponseWriter, r *http.Request) {
	b := h.board(r)
	if err := h.service.selectUser(httpx.RequestContext(r), b, r.PathValue("userID")); err != nil {
		h.render(w, r, http.StatusNotFound, b.snapshot(), weberror.PublicMessage(err))
		return
	}
	h.render(w, r, http.StatusOK, b.snapshot(), "")
}

func (h handlers) handleCV(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("userID")
	download, filename, err := h.service.openCV(httpx.RequestContext(r), h.board(r), id)
	if err != nil {
		if errors.Is(err, errDownloadFailed) {
			h.Logger().Warn("download cv", "user_id", id, "error", err)
			flashnotice.Write(w, r, flashnotice.Error(msgDownloadFailed), h.SchemePolicy())
			httpx.WriteRedirect(w, r, routepath.DashboardUser(id))
			return
		}
		h.WriteError(w, r, err)
		return
	}
	defer func() { _ = download.Close() }()

	contentType := strings.TrimSpace(download.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Cache-Control", "no-store")
	if download.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(download.ContentLength, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, download.Body); err != nil {
		h.Logger().Warn("stream cv", "user_id", id, "error", err)
	}
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, status int, state boardState, errMessage string) {
	tag := webi18n.ResolveTag(r)
	view := webtemplates.DashboardView{
		Query: state.Query,
		Error: state.Error,
	}
	if errMessage != "" {
		view.Error = errMessage
	}
	for _, user := range state.Results {
		view.Results = append(view.Results, webtemplates.ResultRow{
			ID:           user.ID,
			Name:         user.Name,
			MobileNumber: user.MobileNumber,
			DetailURL:    routepath.DashboardUser(user.ID),
			Selected:     user.ID == state.SelectedID,
		})
	}
	if len(view.Results) > 0 {
		view.CountLabel = webi18n.ResultCount(tag, len(view.Results))
	}
	if user, ok := state.selected(); ok {
		view.Selected = h.detail(tag, user)
	}
	h.WritePage(w, r, pagerender.Page{
		Title:      pageTitle,
		StatusCode: status,
		Body:       webtemplates.Dashboard(view),
	})
}

func (h handlers) detail(tag language.Tag, user gateway.User) *webtemplates.UserDetail {
	detail := &webtemplates.UserDetail{
		ID:             user.ID,
		Name:           user.Name,
		PassportNumber: user.PassportNumber,
		DateOfBirth:    formatDate(user.DateOfBirth),
		Designation:    user.Designation,
		PPType:         user.PPType,
		MobileNumber:   user.MobileNumber,
		VillageTown:    user.VillageTown,
		Remark:         user.Remark,
		HasPhoto:       user.Photo.Present(),
		Initial:        webi18n.Initial(tag, user.Name),
		HasCV:          user.CV.Present(),
	}
	if detail.HasPhoto {
		detail.PhotoURL = h.service.gateway.PhotoURL(user.ID)
	}
	if detail.HasCV {
		detail.CVURL = routepath.DashboardUserCV(user.ID)
	}
	return detail
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, time.DateOnly}

// formatDate renders a stored date of birth for display, leaving values it
// cannot parse untouched.
func formatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2 Jan 2006")
		}
	}
	return raw
}
