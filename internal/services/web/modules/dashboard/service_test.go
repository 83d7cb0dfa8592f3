package dashboard

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/modules/dashboard/mocks"
	apperrors "github.com/sanjayconsultancy/visadesk/internal/services/web/platform/errors"
)

type countingTracker struct {
	started, finished int
}

func (c *countingTracker) SearchStarted() func() {
	c.started++
	return func() { c.finished++ }
}

func TestSearchStaleCompletionNeverOverwritesNewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	svc := newService(gw, nil)
	b := &board{}

	started := make(chan struct{})
	release := make(chan struct{})
	oldCtx := make(chan context.Context, 1)
	gw.EXPECT().SearchUsers(gomock.Any(), "old").DoAndReturn(func(ctx context.Context, _ string) ([]gateway.User, error) {
		oldCtx <- ctx
		close(started)
		<-release
		return []gateway.User{{ID: "old-1", Name: "Old"}}, nil
	})
	gw.EXPECT().SearchUsers(gomock.Any(), "new").Return([]gateway.User{{ID: "new-1", Name: "New"}}, nil)

	errc := make(chan error, 1)
	go func() { errc <- svc.search(context.Background(), b, "old") }()
	<-started

	require.NoError(t, svc.search(context.Background(), b, "new"))
	assert.Error(t, (<-oldCtx).Err(), "older search should be cancelled")
	close(release)
	require.NoError(t, <-errc)

	state := b.snapshot()
	assert.Equal(t, "new", state.Query)
	require.Len(t, state.Results, 1)
	assert.Equal(t, "new-1", state.Results[0].ID)
}

func TestSearchBlankQueryIssuesNoRequest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := newService(mocks.NewMockGateway(ctrl), nil)
	b := &board{}
	b.update(func(s *boardState) {
		s.Query = "asha"
		s.Results = []gateway.User{{ID: "a"}}
	})

	require.NoError(t, svc.search(context.Background(), b, "   "))

	state := b.snapshot()
	assert.Equal(t, "asha", state.Query)
	assert.Len(t, state.Results, 1)
}

func TestSearchSuccessClearsSelectionAndFailureEmptiesResults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	tracker := &countingTracker{}
	svc := newService(gw, tracker)
	b := &board{}
	b.update(func(s *boardState) { s.SelectedID = "stale" })

	gw.EXPECT().SearchUsers(gomock.Any(), "asha").Return([]gateway.User{{ID: "a"}, {ID: "b"}}, nil)
	require.NoError(t, svc.search(context.Background(), b, "asha"))
	state := b.snapshot()
	assert.Empty(t, state.SelectedID)
	assert.Len(t, state.Results, 2)

	gw.EXPECT().SearchUsers(gomock.Any(), "zz").Return(nil, &gateway.ResponseError{StatusCode: http.StatusInternalServerError})
	require.Error(t, svc.search(context.Background(), b, "zz"))
	state = b.snapshot()
	assert.Equal(t, "Search failed", state.Error)
	assert.Empty(t, state.Results)
	assert.Equal(t, "asha", state.Query)

	assert.Equal(t, 2, tracker.started)
	assert.Equal(t, 2, tracker.finished)
}

func TestSearchFailureKeepsSelectedRecord(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	svc := newService(gw, nil)
	b := &board{}

	gw.EXPECT().SearchUsers(gomock.Any(), "asha").Return([]gateway.User{{ID: "a", Name: "Asha Rai"}, {ID: "b"}}, nil)
	require.NoError(t, svc.search(context.Background(), b, "asha"))
	require.NoError(t, svc.selectUser(context.Background(), b, "a"))

	gw.EXPECT().SearchUsers(gomock.Any(), "boom").Return(nil, &gateway.ResponseError{StatusCode: http.StatusInternalServerError})
	require.Error(t, svc.search(context.Background(), b, "boom"))

	state := b.snapshot()
	assert.Empty(t, state.Results)
	assert.Equal(t, "Search failed", state.Error)
	selected, ok := state.selected()
	require.True(t, ok)
	assert.Equal(t, "Asha Rai", selected.Name)

	gw.EXPECT().SearchUsers(gomock.Any(), "zz").Return([]gateway.User{{ID: "z"}}, nil)
	require.NoError(t, svc.search(context.Background(), b, "zz"))
	_, ok = b.snapshot().selected()
	assert.False(t, ok)
}

func TestListAllUsesServerMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	svc := newService(gw, nil)
	b := &board{}

	gw.EXPECT().ListUsers(gomock.Any()).Return(nil, &gateway.ResponseError{StatusCode: http.StatusUnauthorized, Message: "Token expired"})

	require.Error(t, svc.listAll(context.Background(), b))
	assert.Equal(t, "Token expired", b.snapshot().Error)
}

func TestSelectUserUsesCacheBeforeGateway(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	svc := newService(gw, nil)
	b := &board{}
	b.update(func(s *boardState) { s.Results = []gateway.User{{ID: "a", Name: "Asha"}} })

	require.NoError(t, svc.selectUser(context.Background(), b, "a"))
	assert.Equal(t, "a", b.snapshot().SelectedID)

	gw.EXPECT().GetUserByID(gomock.Any(), "z").Return(gateway.User{ID: "z", Name: "Zara"}, nil)
	require.NoError(t, svc.selectUser(context.Background(), b, "z"))
	selected, ok := b.snapshot().selected()
	require.True(t, ok)
	assert.Equal(t, "Zara", selected.Name)

	gw.EXPECT().GetUserByID(gomock.Any(), "missing").Return(gateway.User{}, &gateway.ResponseError{StatusCode: http.StatusNotFound})
	err := svc.selectUser(context.Background(), b, "missing")
	assert.Equal(t, http.StatusNotFound, apperrors.HTTPStatus(err))
	assert.Equal(t, "User not found", err.Error())
}

func TestOpenCVRefusesRecordWithoutCV(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := newService(mocks.NewMockGateway(ctrl), nil)
	b := &board{}
	b.update(func(s *boardState) { s.Results = []gateway.User{{ID: "a", Name: "Asha"}} })

	_, _, err := svc.openCV(context.Background(), b, "a")
	assert.Equal(t, http.StatusNotFound, apperrors.HTTPStatus(err))
	assert.False(t, errors.Is(err, errDownloadFailed))
}

func TestOpenCVWrapsDownloadFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	svc := newService(gw, nil)
	b := &board{}
	b.update(func(s *boardState) {
		s.Results = []gateway.User{{ID: "a", Name: "Asha", CV: gateway.NewAttachment("cv.pdf")}}
	})
	gw.EXPECT().DownloadCV(gomock.Any(), "a").Return(nil, gateway.ErrNoResponse)

	_, _, err := svc.openCV(context.Background(), b, "a")
	assert.ErrorIs(t, err, errDownloadFailed)
	assert.ErrorIs(t, err, gateway.ErrNoResponse)
}

func TestOpenCVNamesFileAfterApplicant(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	svc := newService(gw, nil)
	svc.now = func() time.Time { return time.UnixMilli(1700000000123) }
	b := &board{}
	b.update(func(s *boardState) {
		s.Results = []gateway.User{{ID: "a", Name: "Asha Rai", CV: gateway.NewAttachment("cv.pdf")}}
	})
	gw.EXPECT().DownloadCV(gomock.Any(), "a").Return(&gateway.Download{}, nil)

	download, filename, err := svc.openCV(context.Background(), b, "a")
	require.NoError(t, err)
	require.NotNil(t, download)
	assert.Equal(t, "CV-asha-rai-1700000000123.pdf", filename)
}

func TestCVFilenameFallsBackForUnsluggableNames(t *testing.T) {
	t.Parallel()

	got := cvFilename("   ", time.UnixMilli(42))
	assert.Equal(t, "CV-applicant-42.pdf", got)
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"1994-03-02":               "2 Mar 1994",
		"1994-03-02T00:00:00.000Z": "2 Mar 1994",
		"sometime":                 "sometime",
		"":                         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatDate(in), in)
	}
}
