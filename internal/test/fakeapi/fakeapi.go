// Package fakeapi serves an in-memory stand-in for the visadesk REST backend.
//
// It implements the /api routes the web gateway calls, enough for end-to-end
// handler tests: admin accounts, bearer tokens, applicant records and their
// CV and photo files. Failures can be injected per route.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxUpload = 20 << 20

// Admin is a registered administrator.
type Admin struct {
	Username string
	Email    string
	Password string
}

// Applicant is a stored record with its uploaded files.
type Applicant struct {
	User  gateway.User
	CV    []byte
	Photo []byte
}

type failure struct {
	status  int
	message string
}

// API is the fake backend. The zero value is not usable; call New.
type API struct {
	mu         sync.Mutex
	admins     map[string]Admin
	tokens     map[string]string
	applicants []Applicant
	failures   map[string]failure
	calls      []string
}

// New returns an empty backend.
func New() *API {
	return &API{
		admins:   make(map[string]Admin),
		tokens:   make(map[string]string),
		failures: make(map[string]failure),
	}
}

// Handler returns the router rooted at "/", serving everything under /api.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(a.record, a.inject)
	r.Route(gateway.APIPath, func(r chi.Router) {
		r.Post("/auth/login", a.login)
		r.Post("/auth/register", a.registerAdmin)
		r.Get("/auth/check-admin", a.checkAdmin)
		r.Post("/users/register", a.registerApplicant)
		r.Get("/users/{id}/photo", a.photo)
		r.Group(func(r chi.Router) {
			r.Use(a.requireToken)
			r.Get("/users", a.listUsers)
			r.Get("/users/search", a.searchUsers)
			r.Get("/users/{id}", a.getUser)
			r.Get("/users/{id}/download-cv", a.downloadCV)
		})
	})
	return r
}

// AddAdmin registers an administrator directly.
func (a *API) AddAdmin(admin Admin) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.admins[admin.Username] = admin
}

// IssueToken returns a valid bearer token for username.
func (a *API) IssueToken(username string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.issueLocked(username)
}

// AddApplicant stores a record, assigning an id when it has none, and
// returns the stored user.
func (a *API) AddApplicant(applicant Applicant) gateway.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addLocked(applicant)
}

// Applicants returns a copy of every stored record in insertion order.
func (a *API) Applicants() []Applicant {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Applicant, len(a.applicants))
	copy(out, a.applicants)
	return out
}

// Fail makes the next call to method+path answer status with a JSON
// {"message": ...} body. An empty message sends an empty body.
func (a *API) Fail(method, path string, status int, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures[method+" "+path] = failure{status: status, message: message}
}

// Calls lists every request received as "METHOD /path".
func (a *API) Calls() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.calls...)
}

func (a *API) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		a.calls = append(a.calls, r.Method+" "+r.URL.Path)
		a.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (a *API) inject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		a.mu.Lock()
		f, ok := a.failures[key]
		delete(a.failures, key)
		a.mu.Unlock()
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		if f.message == "" {
			w.WriteHeader(f.status)
			return
		}
		writeMessage(w, f.status, f.message)
	})
}

func (a *API) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		a.mu.Lock()
		_, known := a.tokens[strings.TrimSpace(token)]
		a.mu.Unlock()
		if !ok || !known {
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type credentials struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	a.mu.Lock()
	admin, ok := a.admins[in.Username]
	if !ok || admin.Password != in.Password {
		a.mu.Unlock()
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token := a.issueLocked(admin.Username)
	a.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"admin": gateway.AdminProfile{Username: admin.Username, Email: admin.Email},
	})
}

func (a *API) registerAdmin(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Password != in.ConfirmPassword {
		writeMessage(w, http.StatusBadRequest, "Passwords do not match")
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.admins[in.Username]; exists {
		writeMessage(w, http.StatusConflict, "Admin already exists")
		return
	}
	a.admins[in.Username] = Admin{Username: in.Username, Email: in.Email, Password: in.Password}
	writeMessage(w, http.StatusCreated, "Admin registered successfully")
}

func (a *API) checkAdmin(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	exists := len(a.admins) > 0
	a.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func (a *API) registerApplicant(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	user := gateway.User{
		Name:           r.FormValue("name"),
		PassportNumber: r.FormValue("passportNumber"),
		DateOfBirth:    r.FormValue("dateOfBirth"),
		Designation:    r.FormValue("designation"),
		PPType:         r.FormValue("ppType"),
		MobileNumber:   r.FormValue("mobileNumber"),
		VillageTown:    r.FormValue("villageTown"),
		Remark:         r.FormValue("remark"),
	}
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.PassportNumber) == "" {
		writeMessage(w, http.StatusBadRequest, "Name and passport number are required")
		return
	}
	cv, err := readPart(r, "cv")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid CV upload")
		return
	}
	photo, err := readPart(r, "photo")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid photo upload")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, existing := range a.applicants {
		if strings.EqualFold(existing.User.PassportNumber, user.PassportNumber) {
			writeMessage(w, http.StatusConflict, "Passport number already registered")
			return
		}
	}
	stored := a.addLocked(Applicant{User: user, CV: cv, Photo: photo})
	writeJSON(w, http.StatusCreated, map[string]any{"message": "User registered successfully", "user": stored})
}

func (a *API) listUsers(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	users := make([]gateway.User, 0, len(a.applicants))
	for _, applicant := range a.applicants {
		users = append(users, applicant.User)
	}
	a.mu.Unlock()
	writeJSON(w, http.StatusOK, users)
}

func (a *API) searchUsers(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("query")))
	a.mu.Lock()
	users := make([]gateway.User, 0)
	for _, applicant := range a.applicants {
		if matches(applicant.User, query) {
			users = append(users, applicant.User)
		}
	}
	a.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	applicant, ok := a.find(chi.URLParam(r, "id"))
	if !ok {
		writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": applicant.User})
}

func (a *API) downloadCV(w http.ResponseWriter, r *http.Request) {
	applicant, ok := a.find(chi.URLParam(r, "id"))
	if !ok || len(applicant.CV) == 0 {
		writeMessage(w, http.StatusNotFound, "CV not found")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", fmt.Sprint(len(applicant.CV)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(applicant.CV)
}

func (a *API) photo(w http.ResponseWriter, r *http.Request) {
	applicant, ok := a.find(chi.URLParam(r, "id"))
	if !ok || len(applicant.Photo) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(applicant.Photo))
	_, _ = w.Write(applicant.Photo)
}

func (a *API) find(id string) (Applicant, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, applicant := range a.applicants {
		if applicant.User.ID == id {
			return applicant, true
		}
	}
	return Applicant{}, false
}

func (a *API) issueLocked(username string) string {
	token := uuid.NewString()
	a.tokens[token] = username
	return token
}

func (a *API) addLocked(applicant Applicant) gateway.User {
	if applicant.User.ID == "" {
		applicant.User.ID = primitive.NewObjectID().Hex()
	}
	if len(applicant.CV) > 0 {
		applicant.User.CV = gateway.NewAttachment("uploads/cv/" + applicant.User.ID + ".pdf")
	}
	if len(applicant.Photo) > 0 {
		applicant.User.Photo = gateway.NewAttachment("uploads/photos/" + applicant.User.ID)
	}
	a.applicants = append(a.applicants, applicant)
	return applicant.User
}

func matches(user gateway.User, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range []string{user.Name, user.PassportNumber, user.MobileNumber, user.VillageTown, user.Designation} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func readPart(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
