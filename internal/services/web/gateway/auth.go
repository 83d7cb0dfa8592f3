package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	Admin *AdminProfile `json:"admin,omitempty"`
}

type registerAdminRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Login exchanges admin credentials for a bearer token.
//
// Empty credentials fail before any request. A 2xx response without a token
// yields ErrMalformedResponse.
func (c *Client) Login(ctx context.Context, username string, password string) (LoginResult, error) {
	if username == "" || password == "" {
		return LoginResult{}, invalid("Username and password are required")
	}
	body, err := jsonBody(loginRequest{Username: username, Password: password})
	if err != nil {
		return LoginResult{}, fmt.Errorf("encode login request: %w", err)
	}
	var resp loginResponse
	err = c.doJSON(ctx, request{
		operation:   "login",
		method:      http.MethodPost,
		path:        "/auth/login",
		body:        body,
		contentType: "application/json",
	}, &resp)
	if err != nil {
		return LoginResult{}, err
	}
	if strings.TrimSpace(resp.Token) == "" {
		return LoginResult{}, fmt.Errorf("login: %w", ErrMalformedResponse)
	}
	return LoginResult{Token: resp.Token, Admin: resp.Admin}, nil
}

// RegisterAdmin creates an administrator account. All four fields are
// required locally; password policy beyond that is the caller's concern.
func (c *Client) RegisterAdmin(ctx context.Context, username string, email string, password string, confirmPassword string) error {
	if username == "" || email == "" || password == "" || confirmPassword == "" {
		return invalid("All fields are required")
	}
	body, err := jsonBody(registerAdminRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	})
	if err != nil {
		return fmt.Errorf("encode admin registration: %w", err)
	}
	return c.doJSON(ctx, request{
		operation:   "register_admin",
		method:      http.MethodPost,
		path:        "/auth/register",
		body:        body,
		contentType: "application/json",
	}, nil)
}

// CheckAdminExists asks the backend whether an administrator is registered.
func (c *Client) CheckAdminExists(ctx context.Context) (AdminStatus, error) {
	var raw json.RawMessage
	err := c.doJSON(ctx, request{
		operation: "check_admin",
		method:    http.MethodGet,
		path:      "/auth/check-admin",
	}, &raw)
	if err != nil {
		return AdminStatus{}, err
	}
	return parseAdminStatus(raw), nil
}

func parseAdminStatus(raw json.RawMessage) AdminStatus {
	status := AdminStatus{Raw: raw}
	trimmed := bytes.TrimSpace(raw)
	var flag bool
	if err := json.Unmarshal(trimmed, &flag); err == nil {
		status.Exists, status.Known = flag, true
		return status
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return status
	}
	for _, key := range []string{"exists", "adminExists", "hasAdmin"} {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, &flag); err == nil {
			status.Exists, status.Known = flag, true
			return status
		}
	}
	return status
}
