package service

import (
	"context"
	"testing"
	"time"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCalendarRepo struct {
	events map[int64]*models.SMMCalendarEvent
	nextID int64
}

func newStubCalendarRepo() *stubCalendarRepo {
	return &stubCalendarRepo{events: make(map[int64]*models.SMMCalendarEvent), nextID: 1}
}

func (r *stubCalendarRepo) Create(ctx context.Context, ev *models.SMMCalendarEvent) (int64, error) {
	ev.ID = r.nextID
	r.nextID++
	r.events[ev.ID] = ev
	return ev.ID, nil
}

func (r *stubCalendarRepo) GetByID(ctx context.Context, id int64) (*models.SMMCalendarEvent, bool, error) {
	ev, ok := r.events[id]
	if !ok {
		return nil, false, nil
	}
	return ev, true, nil
}

func (r *stubCalendarRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.SMMCalendarEvent, error) {
	return nil, nil
}

func (r *stubCalendarRepo) ListByOrgID(ctx context.Context, orgID int64) ([]*models.SMMCalendarEvent, error) {
	return nil, nil
}

func (r *stubCalendarRepo) ListDue(ctx context.Context, now time.Time) ([]*models.SMMCalendarEvent, error) {
	return nil, nil
}

func (r *stubCalendarRepo) ClaimForDispatch(ctx context.Context, id int64) (bool, error) {
	return false, nil
}

func (r *stubCalendarRepo) UpdateStatus(ctx context.Context, status string, id int64) error {
	if ev, ok := r.events[id]; ok {
		ev.Status = status
	}
	return nil
}

func (r *stubCalendarRepo) Update(ctx context.Context, ev *models.SMMCalendarEvent) error {
	r.events[ev.ID] = ev
	return nil
}

func (r *stubCalendarRepo) CheckByUserID(ctx context.Context, eventID, userID int64) (bool, error) {
	ev, ok := r.events[eventID]
	return ok && ev.UserID == userID, nil
}

func (r *stubCalendarRepo) Remove(ctx context.Context, id int64) error {
	delete(r.events, id)
	return nil
}

func validCreation() *transfer.EventCreation {
	return &transfer.EventCreation{
		Title:       "Launch",
		Description: "We shipped!",
		Platform:    "Twitter",
		ScheduledAt: time.Now().Add(2 * time.Hour).Format("2006-01-02T15:04"),
		Status:      models.EventStatusScheduled,
		AutoPost:    true,
	}
}

func TestCreateEvent(t *testing.T) {
	repo := newStubCalendarRepo()
	s := NewCalendarService(repo)

	id, delay, err := s.CreateEvent(context.Background(), 7, validCreation())
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Greater(t, delay, time.Hour, "delay reflects the scheduled time")

	ev := repo.events[id]
	assert.Equal(t, "twitter", ev.Platform, "platform is normalized to lower case")
	assert.Equal(t, models.EventStatusScheduled, ev.Status)
	assert.True(t, ev.AutoPost)
}

func TestCreateEventDefaultsToDraft(t *testing.T) {
	repo := newStubCalendarRepo()
	s := NewCalendarService(repo)

	ec := validCreation()
	ec.Status = ""

	id, _, err := s.CreateEvent(context.Background(), 7, ec)
	require.NoError(t, err)
	assert.Equal(t, models.EventStatusDraft, repo.events[id].Status)
}

func TestCreateEventPastDueHasZeroDelay(t *testing.T) {
	s := NewCalendarService(newStubCalendarRepo())

	ec := validCreation()
	ec.ScheduledAt = time.Now().Add(-time.Hour).Format("2006-01-02T15:04")

	_, delay, err := s.CreateEvent(context.Background(), 7, ec)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), delay)
}

func TestCreateEventValidation(t *testing.T) {
	s := NewCalendarService(newStubCalendarRepo())

	tests := []struct {
		name   string
		mutate func(*transfer.EventCreation)
	}{
		{"empty title", func(ec *transfer.EventCreation) { ec.Title = "" }},
		{"unknown platform", func(ec *transfer.EventCreation) { ec.Platform = "myspace" }},
		{"bad status", func(ec *transfer.EventCreation) { ec.Status = "published" }},
		{"bad time format", func(ec *transfer.EventCreation) { ec.ScheduledAt = "tomorrow" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ec := validCreation()
			tt.mutate(ec)
			_, _, err := s.CreateEvent(context.Background(), 7, ec)
			assert.Error(t, err)
		})
	}
}

func TestUpdateEventReturnsEnqueueFlag(t *testing.T) {
	repo := newStubCalendarRepo()
	s := NewCalendarService(repo)

	id, _, err := s.CreateEvent(context.Background(), 7, validCreation())
	require.NoError(t, err)

	ec := validCreation()
	ec.AutoPost = false
	_, enqueue, err := s.UpdateEvent(context.Background(), 7, id, ec)
	require.NoError(t, err)
	assert.False(t, enqueue, "manual events are not queued")

	ec = validCreation()
	_, enqueue, err = s.UpdateEvent(context.Background(), 7, id, ec)
	require.NoError(t, err)
	assert.True(t, enqueue)
}

func TestUpdateEventRejectsPublished(t *testing.T) {
	repo := newStubCalendarRepo()
	s := NewCalendarService(repo)

	id, _, err := s.CreateEvent(context.Background(), 7, validCreation())
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(context.Background(), models.EventStatusPublished, id))

	_, _, err = s.UpdateEvent(context.Background(), 7, id, validCreation())
	assert.Error(t, err)
}

func TestUpdateEventOwnership(t *testing.T) {
	repo := newStubCalendarRepo()
	s := NewCalendarService(repo)

	id, _, err := s.CreateEvent(context.Background(), 7, validCreation())
	require.NoError(t, err)

	_, _, err = s.UpdateEvent(context.Background(), 8, id, validCreation())
	assert.Error(t, err, "another user's event is not reachable")

	err = s.Remove(context.Background(), 8, id)
	assert.Error(t, err)
}
