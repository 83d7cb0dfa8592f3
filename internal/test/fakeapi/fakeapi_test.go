package fakeapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, api *API, token string) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)
	client, err := gateway.New(gateway.Config{
		BaseURL: srv.URL,
		Tokens:  func(context.Context) string { return token },
	})
	require.NoError(t, err)
	return client
}

func TestAdminLifecycle(t *testing.T) {
	t.Parallel()

	api := New()
	client := newClient(t, api, "")
	ctx := context.Background()

	status, err := client.CheckAdminExists(ctx)
	require.NoError(t, err)
	assert.False(t, status.Exists)

	require.NoError(t, client.RegisterAdmin(ctx, "root", "root@example.test", "secret1", "secret1"))

	err = client.RegisterAdmin(ctx, "root", "root@example.test", "secret1", "secret1")
	assert.Equal(t, "Admin already exists", gateway.ServerMessage(err))

	status, err = client.CheckAdminExists(ctx)
	require.NoError(t, err)
	assert.True(t, status.Exists)

	result, err := client.Login(ctx, "root", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	require.NotNil(t, result.Admin)
	assert.Equal(t, "root@example.test", result.Admin.Email)

	_, err = client.Login(ctx, "root", "wrong")
	assert.Equal(t, http.StatusUnauthorized, gateway.StatusCode(err))
}

func TestApplicantRecordsRequireToken(t *testing.T) {
	t.Parallel()

	api := New()
	stored := api.AddApplicant(Applicant{
		User: gateway.User{Name: "Asha Rai", PassportNumber: "P100"},
		CV:   []byte("%PDF-1.4"),
	})

	_, err := newClient(t, api, "").ListUsers(context.Background())
	assert.Equal(t, http.StatusUnauthorized, gateway.StatusCode(err))

	client := newClient(t, api, api.IssueToken("root"))
	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, stored.ID, users[0].ID)
	assert.True(t, users[0].CV.Present())
	assert.False(t, users[0].Photo.Present())

	found, err := client.SearchUsers(context.Background(), "asha")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	none, err := client.SearchUsers(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)

	user, err := client.GetUserByID(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "P100", user.PassportNumber)

	download, err := client.DownloadCV(context.Background(), stored.ID)
	require.NoError(t, err)
	defer download.Close()
	body, err := io.ReadAll(download.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(body))
	assert.Equal(t, "application/pdf", download.ContentType)
}

func TestRegisterApplicantStoresFilesAndRejectsDuplicates(t *testing.T) {
	t.Parallel()

	api := New()
	client := newClient(t, api, "")
	form := gateway.ApplicantForm{
		Name:           "Bikash Thapa",
		PassportNumber: "P200",
		DateOfBirth:    "1990-04-01",
		Designation:    "Driver",
		PPType:         "Ordinary",
		MobileNumber:   "9800000000",
		VillageTown:    "Pokhara",
		CV:             &gateway.File{Filename: "cv.pdf", ContentType: "application/pdf", Content: strings.NewReader("cv-bytes")},
	}
	require.NoError(t, client.RegisterApplicant(context.Background(), form))

	stored := api.Applicants()
	require.Len(t, stored, 1)
	assert.Equal(t, "Pokhara", stored[0].User.VillageTown)
	assert.Equal(t, "cv-bytes", string(stored[0].CV))
	assert.Empty(t, stored[0].Photo)

	form.CV = nil
	err := client.RegisterApplicant(context.Background(), form)
	assert.Equal(t, http.StatusConflict, gateway.StatusCode(err))
	assert.Equal(t, "Passport number already registered", gateway.ServerMessage(err))
}

func TestFailInjectsOneResponse(t *testing.T) {
	t.Parallel()

	api := New()
	client := newClient(t, api, "")
	api.Fail(http.MethodGet, "/api/auth/check-admin", http.StatusServiceUnavailable, "")

	_, err := client.CheckAdminExists(context.Background())
	var responseErr *gateway.ResponseError
	require.True(t, errors.As(err, &responseErr))
	assert.Equal(t, http.StatusServiceUnavailable, responseErr.StatusCode)

	_, err = client.CheckAdminExists(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"GET /api/auth/check-admin", "GET /api/auth/check-admin"}, api.Calls())
}
