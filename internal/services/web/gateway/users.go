package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
)

type usersEnvelope struct {
	Users []User `json:"users"`
}

// RegisterApplicant submits the self-registration form as multipart data.
// Photo and CV parts are included only when attached.
func (c *Client) RegisterApplicant(ctx context.Context, form ApplicantForm) error {
	body, contentType, err := encodeApplicant(form)
	if err != nil {
		return fmt.Errorf("encode applicant form: %w", err)
	}
	return c.doJSON(ctx, request{
		operation:   "register_applicant",
		method:      http.MethodPost,
		path:        "/users/register",
		body:        body,
		contentType: contentType,
	}, nil)
}

func encodeApplicant(form ApplicantForm) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, field := range form.Fields() {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return nil, "", err
		}
	}
	for _, attachment := range []struct {
		field string
		file  *File
	}{
		{field: "photo", file: form.Photo},
		{field: "cv", file: form.CV},
	} {
		if attachment.file == nil || attachment.file.Content == nil {
			continue
		}
		if err := writeFilePart(writer, attachment.field, attachment.file); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(writer *multipart.Writer, field string, file *File) error {
	filename := strings.TrimSpace(file.Filename)
	if filename == "" {
		filename = field
	}
	contentType := strings.TrimSpace(file.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(filename)))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return fmt.Errorf("copy %s: %w", field, err)
	}
	return nil
}

// SearchUsers runs a free-text applicant search.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]User, error) {
	var resp usersEnvelope
	err := c.doJSON(ctx, request{
		operation: "search_users",
		method:    http.MethodGet,
		path:      "/users/search",
		query:     url.Values{"query": []string{query}},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// ListUsers returns every applicant. Both a bare array and a {users:[...]}
// envelope are accepted.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var raw json.RawMessage
	err := c.doJSON(ctx, request{
		operation: "list_users",
		method:    http.MethodGet,
		path:      "/users",
	}, &raw)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var users []User
		if err := json.Unmarshal(trimmed, &users); err != nil {
			return nil, fmt.Errorf("list_users: %w: %w", ErrMalformedResponse, err)
		}
		return users, nil
	}
	var envelope usersEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("list_users: %w: %w", ErrMalformedResponse, err)
	}
	return envelope.Users, nil
}

// GetUserByID fetches one applicant. Both a bare object and a {user:{...}}
// envelope are accepted.
func (c *Client) GetUserByID(ctx context.Context, id string) (User, error) {
	path, err := userPath(id, "")
	if err != nil {
		return User{}, err
	}
	var raw json.RawMessage
	err = c.doJSON(ctx, request{
		operation: "get_user",
		method:    http.MethodGet,
		path:      path,
	}, &raw)
	if err != nil {
		return User{}, err
	}
	var envelope struct {
		User *User `json:"user"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.User != nil {
		return *envelope.User, nil
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return User{}, fmt.Errorf("get_user: %w: %w", ErrMalformedResponse, err)
	}
	if strings.TrimSpace(user.ID) == "" {
		return User{}, fmt.Errorf("get_user: %w", ErrMalformedResponse)
	}
	return user, nil
}

// DownloadCV requests the applicant's CV in binary mode. The returned
// Download owns the response and must be closed on every path.
func (c *Client) DownloadCV(ctx context.Context, id string) (*Download, error) {
	path, err := userPath(id, "/download-cv")
	if err != nil {
		return nil, err
	}
	var download *Download
	err = c.instrument(ctx, "download_cv", http.MethodGet, path, func(ctx context.Context) error {
		resp, release, err := c.call(ctx, request{
			operation: "download_cv",
			method:    http.MethodGet,
			path:      path,
			accept:    "*/*",
		})
		if err != nil {
			return err
		}
		download = &Download{
			Body:          &releasingBody{ReadCloser: resp.Body, release: release},
			ContentType:   resp.Header.Get("Content-Type"),
			ContentLength: resp.ContentLength,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return download, nil
}

// PhotoURL builds the photo address used directly as an image source. It
// issues no request.
func (c *Client) PhotoURL(id string) string {
	return c.apiURL + "/users/" + url.PathEscape(strings.TrimSpace(id)) + "/photo"
}

// releasingBody ends the request deadline when the body is closed.
type releasingBody struct {
	io.ReadCloser
	release func()
	closed  bool
}

func (b *releasingBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.release()
	return nil
}
