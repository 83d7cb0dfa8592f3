package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

// AdminProfile is the optional admin identity returned by login.
type AdminProfile struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResult carries the issued bearer token.
type LoginResult struct {
	Token string
	Admin *AdminProfile
}

// AdminStatus reports whether an administrator account exists.
//
// The backend shape is not fixed; Known is false when no recognizable flag
// was present and Raw holds the body for diagnostics.
type AdminStatus struct {
	Exists bool
	Known  bool
	Raw    json.RawMessage
}

// Attachment marks a stored file reference on a user record.
//
// The backend may send a path string, an object, a boolean or null; only
// presence matters to this client.
type Attachment struct {
	raw json.RawMessage
}

// NewAttachment returns an attachment that references the given path.
func NewAttachment(path string) Attachment {
	if strings.TrimSpace(path) == "" {
		return Attachment{}
	}
	encoded, _ := json.Marshal(path)
	return Attachment{raw: encoded}
}

// Present reports whether the attachment value is truthy.
func (a Attachment) Present() bool {
	trimmed := bytes.TrimSpace(a.raw)
	switch string(trimmed) {
	case "", "null", "false", `""`, "0":
		return false
	default:
		return true
	}
}

// UnmarshalJSON keeps the raw value.
func (a *Attachment) UnmarshalJSON(data []byte) error {
	a.raw = append(a.raw[:0], data...)
	return nil
}

// MarshalJSON writes the raw value back, or null.
func (a Attachment) MarshalJSON() ([]byte, error) {
	if len(bytes.TrimSpace(a.raw)) == 0 {
		return []byte("null"), nil
	}
	return a.raw, nil
}

// User is an applicant record as returned by search, list and lookup.
type User struct {
	ID             string     `json:"_id"`
	Name           string     `json:"name"`
	PassportNumber string     `json:"passportNumber"`
	DateOfBirth    string     `json:"dateOfBirth"`
	Designation    string     `json:"designation"`
	PPType         string     `json:"ppType"`
	MobileNumber   string     `json:"mobileNumber"`
	VillageTown    string     `json:"villageTown"`
	Remark         string     `json:"remark,omitempty"`
	Photo          Attachment `json:"photo"`
	CV             Attachment `json:"cv"`
	CreatedAt      string     `json:"createdAt,omitempty"`
}

// ApplicantForm is the self-registration payload.
type ApplicantForm struct {
	Name           string
	PassportNumber string
	DateOfBirth    string
	Designation    string
	PPType         string
	MobileNumber   string
	VillageTown    string
	Remark         string
	Photo          *File
	CV             *File
}

// FormField is one ordered multipart text field.
type FormField struct {
	Name  string
	Value string
}

// Fields lists the text fields in submission order. Remark is always sent,
// possibly empty.
func (f ApplicantForm) Fields() []FormField {
	return []FormField{
		{Name: "name", Value: f.Name},
		{Name: "passportNumber", Value: f.PassportNumber},
		{Name: "dateOfBirth", Value: f.DateOfBirth},
		{Name: "designation", Value: f.Designation},
		{Name: "ppType", Value: f.PPType},
		{Name: "mobileNumber", Value: f.MobileNumber},
		{Name: "villageTown", Value: f.VillageTown},
		{Name: "remark", Value: f.Remark},
	}
}

// File is an attachment selected for upload.
type File struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// Download is a streamed binary response. Body must be closed by the caller.
type Download struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

// Close releases the underlying response.
func (d *Download) Close() error {
	if d == nil || d.Body == nil {
		return nil
	}
	return d.Body.Close()
}
