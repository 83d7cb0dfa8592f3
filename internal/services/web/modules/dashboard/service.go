package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/sanjayconsultancy/visadesk/internal/services/web/gateway"
	apperrors "github.com/sanjayconsultancy/visadesk/internal/services/web/platform/errors"
	"github.com/sanjayconsultancy/visadesk/internal/services/web/platform/weberror"
)

const (
	msgSearchFailed   = "Search failed"
	msgLoadFailed     = "Failed to load users"
	msgUserNotFound   = "User not found"
	msgNoCV           = "No CV on file for this applicant"
	msgDownloadFailed = "Failed to download CV"
)

// errDownloadFailed marks a CV download the backend did not serve.
var errDownloadFailed = errors.New(msgDownloadFailed)

type service struct {
	gateway Gateway
	tracker SearchTracker
	now     func() time.Time
}

func newService(g Gateway, tracker SearchTracker) service {
	return service{gateway: g, tracker: tracker, now: time.Now}
}

// search replaces the board's results with the matches for query. A blank
// query changes nothing and issues no request.
func (s service) search(ctx context.Context, b *board, query string) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	return s.load(ctx, b, msgSearchFailed, func(ctx context.Context) ([]gateway.User, error) {
		return s.gateway.SearchUsers(ctx, query)
	}, func(state *boardState) {
		state.Query = query
	})
}

// listAll replaces the board's results with every applicant.
func (s service) listAll(ctx context.Context, b *board) error {
	return s.load(ctx, b, msgLoadFailed, s.gateway.ListUsers, nil)
}

// load runs fetch as the board's latest load. Success replaces the results
// and clears the selection; failure empties the results but keeps the
// selected record on display. A completion that was superseded by a newer
// load is dropped.
func (s service) load(ctx context.Context, b *board, fallback string, fetch func(context.Context) ([]gateway.User, error), onSuccess func(*boardState)) error {
	gen, loadCtx, done := b.begin(ctx)
	defer done()
	if s.tracker != nil {
		defer s.tracker.SearchStarted()()
	}

	users, err := fetch(loadCtx)
	b.finish(gen, func(state *boardState) {
		if err != nil {
			state.Error = weberror.FormMessage(err, fallback)
			if user, ok := state.selected(); ok {
				state.Detached = &user
			}
			state.Results = nil
			return
		}
		state.Error = ""
		state.Results = users
		state.SelectedID = ""
		state.Detached = nil
		if onSuccess != nil {
			onSuccess(state)
		}
	})
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	return nil
}

// selectUser shows id in the detail panel. Cached records need no request;
// other ids are fetched so deep links work.
func (s service) selectUser(ctx context.Context, b *board, id string) error {
	if _, ok := b.snapshot().find(id); ok {
		b.update(func(state *boardState) { state.SelectedID = id })
		return nil
	}
	user, err := s.gateway.GetUserByID(ctx, id)
	if err != nil {
		return apperrors.E(apperrors.KindNotFound, msgUserNotFound)
	}
	if user.ID == "" {
		user.ID = id
	}
	b.update(func(state *boardState) {
		state.Detached = &user
		state.SelectedID = user.ID
	})
	return nil
}

// openCV starts a CV download for id. Records known to have no CV are refused
// without a request. The caller must close the returned download.
func (s service) openCV(ctx context.Context, b *board, id string) (*gateway.Download, string, error) {
	user, ok := b.snapshot().find(id)
	if !ok {
		fetched, err := s.gateway.GetUserByID(ctx, id)
		if err != nil {
			return nil, "", apperrors.E(apperrors.KindNotFound, msgUserNotFound)
		}
		user = fetched
	}
	if !user.CV.Present() {
		return nil, "", apperrors.E(apperrors.KindNotFound, msgNoCV)
	}
	download, err := s.gateway.DownloadCV(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", errDownloadFailed, id, err)
	}
	return download, cvFilename(user.Name, s.now()), nil
}

// cvFilename names a downloaded CV after its applicant.
func cvFilename(name string, at time.Time) string {
	base := slug.Make(name)
	if base == "" {
		base = "applicant"
	}
	return fmt.Sprintf("CV-%s-%d.pdf", base, at.UnixMilli())
}
