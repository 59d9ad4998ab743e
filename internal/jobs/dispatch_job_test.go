package job

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/publisher"
	"github.com/adamn1225/nextnoetics-gorm-sub000/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

type fakeCalendarRepo struct {
	mu      sync.Mutex
	events  map[int64]*models.SMMCalendarEvent
	listErr error
}

func newFakeCalendarRepo(events ...*models.SMMCalendarEvent) *fakeCalendarRepo {
	r := &fakeCalendarRepo{events: make(map[int64]*models.SMMCalendarEvent)}
	for _, ev := range events {
		r.events[ev.ID] = ev
	}
	return r
}

func (r *fakeCalendarRepo) Create(ctx context.Context, ev *models.SMMCalendarEvent) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev.ID = int64(len(r.events) + 1)
	r.events[ev.ID] = ev
	return ev.ID, nil
}

func (r *fakeCalendarRepo) GetByID(ctx context.Context, id int64) (*models.SMMCalendarEvent, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[id]
	if !ok {
		return nil, false, nil
	}
	copied := *ev
	return &copied, true, nil
}

func (r *fakeCalendarRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.SMMCalendarEvent, error) {
	return nil, nil
}

func (r *fakeCalendarRepo) ListByOrgID(ctx context.Context, orgID int64) ([]*models.SMMCalendarEvent, error) {
	return nil, nil
}

func (r *fakeCalendarRepo) ListDue(ctx context.Context, now time.Time) ([]*models.SMMCalendarEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var due []*models.SMMCalendarEvent
	for _, ev := range r.events {
		if ev.Status == models.EventStatusScheduled && ev.AutoPost && !ev.ScheduledAt.After(now) {
			copied := *ev
			due = append(due, &copied)
		}
	}
	return due, nil
}

func (r *fakeCalendarRepo) ClaimForDispatch(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[id]
	if !ok || ev.Status != models.EventStatusScheduled {
		return false, nil
	}
	ev.Status = models.EventStatusPublishing
	return true, nil
}

func (r *fakeCalendarRepo) UpdateStatus(ctx context.Context, status string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[id]
	if !ok {
		return errors.New("event not found")
	}
	ev.Status = status
	return nil
}

func (r *fakeCalendarRepo) Update(ctx context.Context, ev *models.SMMCalendarEvent) error {
	return nil
}

func (r *fakeCalendarRepo) CheckByUserID(ctx context.Context, eventID, userID int64) (bool, error) {
	return true, nil
}

func (r *fakeCalendarRepo) Remove(ctx context.Context, id int64) error {
	return nil
}

func (r *fakeCalendarRepo) status(id int64) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[id].Status
}

type fakeTokenRepo struct {
	tokens map[string]*models.UserToken // keyed "userID/platform"
}

func tokenKey(userID int64, platform string) string {
	return fmt.Sprintf("%d/%s", userID, platform)
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*models.UserToken)}
}

func (r *fakeTokenRepo) add(t *testing.T, userID int64, platform, plaintext string) {
	t.Helper()
	sealed, err := utils.Encrypt([]byte(plaintext), testKey)
	require.NoError(t, err)
	r.tokens[tokenKey(userID, platform)] = &models.UserToken{
		UserID:      userID,
		Platform:    platform,
		AccessToken: sealed,
	}
}

func (r *fakeTokenRepo) GetByUserAndPlatform(ctx context.Context, userID int64, platform string) (*models.UserToken, bool, error) {
	token, ok := r.tokens[tokenKey(userID, platform)]
	if !ok {
		return nil, false, nil
	}
	return token, true, nil
}

func (r *fakeTokenRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.UserToken, error) {
	return nil, nil
}

func (r *fakeTokenRepo) Upsert(ctx context.Context, token *models.UserToken) (int64, error) {
	return 0, nil
}

func (r *fakeTokenRepo) CheckByUserID(ctx context.Context, tokenID, userID int64) (bool, error) {
	return true, nil
}

func (r *fakeTokenRepo) Remove(ctx context.Context, id int64) error {
	return nil
}

type fakeAttemptRepo struct {
	mu       sync.Mutex
	attempts []*models.DispatchAttempt
}

func (r *fakeAttemptRepo) Create(ctx context.Context, attempt *models.DispatchAttempt) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	attempt.ID = int64(len(r.attempts) + 1)
	r.attempts = append(r.attempts, attempt)
	return attempt.ID, nil
}

func (r *fakeAttemptRepo) Finalize(ctx context.Context, id int64, errorMessage string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.attempts {
		if a.ID == id {
			a.Completed = true
			a.ErrorMessage = errorMessage
			return nil
		}
	}
	return errors.New("attempt not found")
}

func (r *fakeAttemptRepo) ListByEventID(ctx context.Context, eventID int64) ([]*models.DispatchAttempt, error) {
	return r.attempts, nil
}

type capturedRequest struct {
	authorization string
	contentType   string
	body          string
}

// platformServer records every request and answers with the given status.
func platformServer(t *testing.T, status int) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var mu sync.Mutex
	var requests []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, capturedRequest{
			authorization: r.Header.Get("Authorization"),
			contentType:   r.Header.Get("Content-Type"),
			body:          string(body),
		})
		mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func testRegistry(endpoint string) *publisher.Registry {
	twitter := publisher.NewTwitterPublisher(nil)
	twitter.Endpoint = endpoint
	facebook := publisher.NewFacebookPublisher(nil)
	facebook.Endpoint = endpoint
	linkedin := publisher.NewLinkedinPublisher(nil)
	linkedin.Endpoint = endpoint
	return publisher.NewRegistry(twitter, facebook, linkedin)
}

func dueEvent(id int64, platform string) *models.SMMCalendarEvent {
	return &models.SMMCalendarEvent{
		ID:          id,
		UserID:      7,
		Title:       "Launch",
		Description: "We shipped!",
		Platform:    platform,
		ScheduledAt: time.Now().Add(-time.Minute),
		Status:      models.EventStatusScheduled,
		AutoPost:    true,
	}
}

func TestDispatchDuePosts_PublishesDueEvent(t *testing.T) {
	srv, requests := platformServer(t, http.StatusCreated)

	cr := newFakeCalendarRepo(dueEvent(1, models.PlatformTwitter))
	tr := newFakeTokenRepo()
	tr.add(t, 7, models.PlatformTwitter, "abc123")
	da := &fakeAttemptRepo{}

	j := NewDispatchJob(cr, tr, da, testRegistry(srv.URL), string(testKey))

	summary, err := j.DispatchDuePosts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Attempted)
	assert.Equal(t, 1, summary.Published)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 0, summary.Skipped)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "Bearer abc123", req.authorization)
	assert.Equal(t, "application/json", req.contentType)
	assert.JSONEq(t, `{"text":"Launch\nWe shipped!"}`, req.body)

	assert.Equal(t, models.EventStatusPublished, cr.status(1))

	require.Len(t, da.attempts, 1)
	assert.True(t, da.attempts[0].Completed)
	assert.Empty(t, da.attempts[0].ErrorMessage)
}

func TestDispatchDuePosts_PlatformPayloadKeys(t *testing.T) {
	tests := []struct {
		platform string
		wantJSON string
	}{
		{models.PlatformTwitter, `{"text":"Launch\nWe shipped!"}`},
		{models.PlatformFacebook, `{"message":"Launch\nWe shipped!"}`},
		{models.PlatformLinkedin, `{"content":"Launch\nWe shipped!"}`},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			srv, requests := platformServer(t, http.StatusOK)

			cr := newFakeCalendarRepo(dueEvent(1, tt.platform))
			tr := newFakeTokenRepo()
			tr.add(t, 7, tt.platform, "abc123")

			j := NewDispatchJob(cr, tr, &fakeAttemptRepo{}, testRegistry(srv.URL), string(testKey))

			summary, err := j.DispatchDuePosts(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 1, summary.Published)

			require.Len(t, *requests, 1)
			assert.JSONEq(t, tt.wantJSON, (*requests)[0].body)
		})
	}
}

func TestDispatchDuePosts_IgnoresIneligibleEvents(t *testing.T) {
	srv, requests := platformServer(t, http.StatusOK)

	future := dueEvent(1, models.PlatformTwitter)
	future.ScheduledAt = time.Now().Add(time.Hour)

	draft := dueEvent(2, models.PlatformTwitter)
	draft.Status = models.EventStatusDraft

	manual := dueEvent(3, models.PlatformTwitter)
	manual.AutoPost = false

	published := dueEvent(4, models.PlatformTwitter)
	published.Status = models.EventStatusPublished

	cr := newFakeCalendarRepo(future, draft, manual, published)
	tr := newFakeTokenRepo()
	tr.add(t, 7, models.PlatformTwitter, "abc123")

	j := NewDispatchJob(cr, tr, &fakeAttemptRepo{}, testRegistry(srv.URL), string(testKey))

	summary, err := j.DispatchDuePosts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Attempted)
	assert.Empty(t, *requests)
	assert.Equal(t, models.EventStatusScheduled, cr.status(1))
	assert.Equal(t, models.EventStatusDraft, cr.status(2))
}

func TestDispatchDuePosts_MissingCredentialSkips(t *testing.T) {
	srv, requests := platformServer(t, http.StatusOK)

	cr := newFakeCalendarRepo(dueEvent(1, models.PlatformTwitter))
	da := &fakeAttemptRepo{}

	j := NewDispatchJob(cr, newFakeTokenRepo(), da, testRegistry(srv.URL), string(testKey))

	summary, err := j.DispatchDuePosts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Attempted)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Published)
	assert.Empty(t, *requests, "no HTTP call without a credential")
	assert.Equal(t, models.EventStatusScheduled, cr.status(1))
	assert.Empty(t, da.attempts)
}

func TestDispatchDuePosts_UnsupportedPlatformSkips(t *testing.T) {
	srv, requests := platformServer(t, http.StatusOK)

	cr := newFakeCalendarRepo(
		dueEvent(1, models.PlatformInstagram),
		dueEvent(2, models.PlatformTiktok),
	)
	tr := newFakeTokenRepo()
	tr.add(t, 7, models.PlatformInstagram, "abc123")

	j := NewDispatchJob(cr, tr, &fakeAttemptRepo{}, testRegistry(srv.URL), string(testKey))

	summary, err := j.DispatchDuePosts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Attempted)
	assert.Equal(t, 2, summary.Skipped)
	assert.Empty(t, *requests)
	assert.Equal(t, models.EventStatusScheduled, cr.status(1))
	assert.Equal(t, models.EventStatusScheduled, cr.status(2))
}

func TestDispatchDuePosts_FailureDoesNotAbortBatch(t *testing.T) {
	failSrv, _ := platformServer(t, http.StatusForbidden)
	okSrv, okRequests := platformServer(t, http.StatusOK)

	twitter := publisher.NewTwitterPublisher(nil)
	twitter.Endpoint = failSrv.URL
	facebook := publisher.NewFacebookPublisher(nil)
	facebook.Endpoint = okSrv.URL
	registry := publisher.NewRegistry(twitter, facebook)

	failing := dueEvent(1, models.PlatformTwitter)
	succeeding := dueEvent(2, models.PlatformFacebook)

	cr := newFakeCalendarRepo(failing, succeeding)
	tr := newFakeTokenRepo()
	tr.add(t, 7, models.PlatformTwitter, "abc123")
	tr.add(t, 7, models.PlatformFacebook, "def456")
	da := &fakeAttemptRepo{}

	j := NewDispatchJob(cr, tr, da, registry, string(testKey))

	summary, err := j.DispatchDuePosts(context.Background())
	require.NoError(t, err, "per-event failures never fail the invocation")

	assert.Equal(t, 2, summary.Attempted)
	assert.Equal(t, 1, summary.Published)
	assert.Equal(t, 1, summary.Failed)

	assert.Equal(t, models.EventStatusScheduled, cr.status(1), "failed event stays eligible for the next tick")
	assert.Equal(t, models.EventStatusPublished, cr.status(2))
	assert.Len(t, *okRequests, 1)

	require.Len(t, da.attempts, 2)
	for _, a := range da.attempts {
		assert.True(t, a.Completed)
		if a.EventID == 1 {
			assert.Contains(t, a.ErrorMessage, "403")
		} else {
			assert.Empty(t, a.ErrorMessage)
		}
	}
}

func TestDispatchDuePosts_SecondRunIsNoop(t *testing.T) {
	srv, requests := platformServer(t, http.StatusOK)

	cr := newFakeCalendarRepo(dueEvent(1, models.PlatformTwitter))
	tr := newFakeTokenRepo()
	tr.add(t, 7, models.PlatformTwitter, "abc123")

	j := NewDispatchJob(cr, tr, &fakeAttemptRepo{}, testRegistry(srv.URL), string(testKey))

	first, err := j.DispatchDuePosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Published)

	second, err := j.DispatchDuePosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Attempted)
	assert.Len(t, *requests, 1, "already-published event must not repost")
}

func TestDispatchDuePosts_ClaimedEventLeftAlone(t *testing.T) {
	srv, requests := platformServer(t, http.StatusOK)

	ev := dueEvent(1, models.PlatformTwitter)
	cr := newFakeCalendarRepo(ev)
	tr := newFakeTokenRepo()
	tr.add(t, 7, models.PlatformTwitter, "abc123")

	j := NewDispatchJob(cr, tr, &fakeAttemptRepo{}, testRegistry(srv.URL), string(testKey))

	// simulate an overlapping invocation grabbing the row between the
	// eligibility query and the claim
	due, err := cr.ListDue(context.Background(), time.Now())
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.NoError(t, cr.UpdateStatus(context.Background(), models.EventStatusPublishing, 1))

	outcome := j.dispatchEvent(context.Background(), due[0])
	assert.Equal(t, outcomeSkipped, outcome)
	assert.Empty(t, *requests)
	assert.Equal(t, models.EventStatusPublishing, cr.status(1))
}

func TestDispatchDuePosts_QueryFailureFailsInvocation(t *testing.T) {
	cr := newFakeCalendarRepo()
	cr.listErr = errors.New("connection refused")

	j := NewDispatchJob(cr, newFakeTokenRepo(), &fakeAttemptRepo{}, testRegistry("http://unused"), string(testKey))

	summary, err := j.DispatchDuePosts(context.Background())
	require.Error(t, err)
	assert.Nil(t, summary)
}

func TestDispatchByID(t *testing.T) {
	srv, requests := platformServer(t, http.StatusOK)

	due := dueEvent(1, models.PlatformTwitter)
	future := dueEvent(2, models.PlatformTwitter)
	future.ScheduledAt = time.Now().Add(time.Hour)
	draft := dueEvent(3, models.PlatformTwitter)
	draft.Status = models.EventStatusDraft

	cr := newFakeCalendarRepo(due, future, draft)
	tr := newFakeTokenRepo()
	tr.add(t, 7, models.PlatformTwitter, "abc123")

	j := NewDispatchJob(cr, tr, &fakeAttemptRepo{}, testRegistry(srv.URL), string(testKey))

	require.NoError(t, j.DispatchByID(context.Background(), 1))
	assert.Equal(t, models.EventStatusPublished, cr.status(1))
	assert.Len(t, *requests, 1)

	require.NoError(t, j.DispatchByID(context.Background(), 2), "future event is a no-op")
	require.NoError(t, j.DispatchByID(context.Background(), 3), "draft event is a no-op")
	require.NoError(t, j.DispatchByID(context.Background(), 99), "missing event is a no-op")
	assert.Len(t, *requests, 1)
}
