package applicant

import (
	"errors"
	"net/http"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/httpx"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/modulehandler"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/pagerender"
	webtemplates "github.com/sanjayconsultancy/visadesk/internal/services/web/templates"
)

const (
	pageTitle = "Register"

	// maxUploadBytes bounds the whole multipart request body.
	maxUploadBytes = 20 << 20
	// multipartMemory is held in memory before parts spill to temp files.
	multipartMemory = 8 << 20

	msgTooLarge = "Upload is too large (max 20 MB)"
)

type handlers struct {
	modulehandler.Base
	service  service
	sessions SessionIdentifier
}

func newHandlers(s service, base modulehandler.Base, sessions SessionIdentifier) handlers {
	return handlers{Base: base, service: s, sessions: sessions}
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, webtemplates.RegisterView{})
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.render(w, r, http.StatusRequestEntityTooLarge, webtemplates.RegisterView{
				FormMessage: webtemplates.FormMessage{Error: msgTooLarge},
			})
			return
		}
		h.Logger().Warn("parse registration form", "error", err)
		h.render(w, r, http.StatusBadRequest, webtemplates.RegisterView{
			FormMessage: webtemplates.FormMessage{Error: msgFailed},
		})
		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	form := parseForm(r)
	photo, closePhoto := formFile(r, "photo")
	defer closePhoto()
	cv, closeCV := formFile(r, "cv")
	defer closeCV()
	form.Photo = photo
	form.CV = cv

	sessionID := ""
	if h.sessions != nil {
		sessionID = h.sessions.ID(w, r)
	}
	out := h.service.register(httpx.RequestContext(r), sessionID, form)
	switch out.result {
	case resultRegistered:
		h.render(w, r, http.StatusOK, webtemplates.RegisterView{
			FormMessage: webtemplates.FormMessage{Success: out.message},
		})
	case resultBusy:
		view := draftView(form)
		view.Error = out.message
		h.render(w, r, http.StatusConflict, view)
	default:
		view := draftView(form)
		view.Error = out.message
		h.render(w, r, http.StatusUnprocessableEntity, view)
	}
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, status int, view webtemplates.RegisterView) {
	h.WritePage(w, r, pagerender.Page{
		Title:      pageTitle,
		StatusCode: status,
		Body:       webtemplates.Register(view),
	})
}

func parseForm(r *http.Request) gateway.ApplicantForm {
	return gateway.ApplicantForm{
		Name:           r.FormValue("name"),
		PassportNumber: r.FormValue("passportNumber"),
		DateOfBirth:    r.FormValue("dateOfBirth"),
		Designation:    r.FormValue("designation"),
		PPType:         r.FormValue("ppType"),
		MobileNumber:   r.FormValue("mobileNumber"),
		VillageTown:    r.FormValue("villageTown"),
		Remark:         r.FormValue("remark"),
	}
}

// draftView re-populates the text fields after a failed submission. File
// inputs cannot be restored, so the view asks for them again when any were
// attached.
func draftView(form gateway.ApplicantForm) webtemplates.RegisterView {
	return webtemplates.RegisterView{
		Name:           form.Name,
		PassportNumber: form.PassportNumber,
		DateOfBirth:    form.DateOfBirth,
		Designation:    form.Designation,
		PPType:         form.PPType,
		MobileNumber:   form.MobileNumber,
		VillageTown:    form.VillageTown,
		Remark:         form.Remark,
		FilesDropped:   form.Photo != nil || form.CV != nil,
	}
}

// formFile opens an optional upload. A missing or empty part yields nil.
func formFile(r *http.Request, field string) (*gateway.File, func()) {
	if r.MultipartForm == nil {
		return nil, func() {}
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, func() {}
	}
	if header.Size == 0 && header.Filename == "" {
		_ = file.Close()
		return nil, func() {}
	}
	return &gateway.File{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}, func() { _ = file.Close() }
}
