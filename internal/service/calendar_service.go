package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/repository"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
)

// scheduledTimeLayout matches the datetime-local input the dashboard sends.
const scheduledTimeLayout = "2006-01-02T15:04"

var validPlatforms = map[string]bool{
	models.PlatformFacebook:  true,
	models.PlatformTwitter:   true,
	models.PlatformLinkedin:  true,
	models.PlatformInstagram: true,
	models.PlatformTiktok:    true,
}

type CalendarService interface {
	CreateEvent(ctx context.Context, userID int64, ec *transfer.EventCreation) (int64, time.Duration, error)
	UpdateEvent(ctx context.Context, userID, eventID int64, ec *transfer.EventCreation) (time.Duration, bool, error)
	EventInfo(ctx context.Context, eventID, userID int64) (*models.SMMCalendarEvent, error)
	List(ctx context.Context, userID int64) ([]*models.SMMCalendarEvent, error)
	ListForOrg(ctx context.Context, orgID int64) ([]*models.SMMCalendarEvent, error)
	Remove(ctx context.Context, userID, eventID int64) error
}

type calendarService struct {
	cr repository.CalendarRepository
}

func NewCalendarService(cr repository.CalendarRepository) CalendarService {
	return &calendarService{cr: cr}
}

// CreateEvent validates the form and returns the new id plus the delay until
// the due time, so the handler can enqueue an exact-time dispatch task when
// the event is scheduled for auto-posting.
func (s *calendarService) CreateEvent(ctx context.Context, userID int64, ec *transfer.EventCreation) (int64, time.Duration, error) {
	ev, err := s.buildEvent(userID, ec)
	if err != nil {
		return 0, 0, err
	}

	id, err := s.cr.Create(ctx, ev)
	if err != nil {
		return 0, 0, err
	}

	return id, delayUntil(ev.ScheduledAt), nil
}

// UpdateEvent returns (delay, enqueue) so the handler can reschedule the
// dispatch task when the edit left the event scheduled and auto-postable.
func (s *calendarService) UpdateEvent(ctx context.Context, userID, eventID int64, ec *transfer.EventCreation) (time.Duration, bool, error) {
	owned, err := s.cr.CheckByUserID(ctx, eventID, userID)
	if err != nil {
		return 0, false, err
	}
	if !owned {
		err = errors.New("event not found for user")
		slog.Info(err.Error())
		return 0, false, err
	}

	existing, ok, err := s.cr.GetByID(ctx, eventID)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, errors.New("event not found")
	}
	if existing.Status == models.EventStatusPublished || existing.Status == models.EventStatusPublishing {
		return 0, false, errors.New("published events cannot be edited")
	}

	ev, err := s.buildEvent(userID, ec)
	if err != nil {
		return 0, false, err
	}
	ev.ID = existing.ID
	ev.CreatedAt = existing.CreatedAt

	if err := s.cr.Update(ctx, ev); err != nil {
		return 0, false, err
	}

	enqueue := ev.Status == models.EventStatusScheduled && ev.AutoPost
	return delayUntil(ev.ScheduledAt), enqueue, nil
}

func (s *calendarService) EventInfo(ctx context.Context, eventID, userID int64) (*models.SMMCalendarEvent, error) {
	owned, err := s.cr.CheckByUserID(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, errors.New("event not found for user")
	}

	ev, ok, err := s.cr.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("event not found")
	}
	return ev, nil
}

func (s *calendarService) List(ctx context.Context, userID int64) ([]*models.SMMCalendarEvent, error) {
	return s.cr.ListByUserID(ctx, userID)
}

func (s *calendarService) ListForOrg(ctx context.Context, orgID int64) ([]*models.SMMCalendarEvent, error) {
	return s.cr.ListByOrgID(ctx, orgID)
}

func (s *calendarService) Remove(ctx context.Context, userID, eventID int64) error {
	owned, err := s.cr.CheckByUserID(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if !owned {
		err = errors.New("event not found for user")
		slog.Info(err.Error())
		return err
	}
	return s.cr.Remove(ctx, eventID)
}

func (s *calendarService) buildEvent(userID int64, ec *transfer.EventCreation) (*models.SMMCalendarEvent, error) {
	if ec == nil {
		err := errors.New("event data is nil")
		slog.Error(err.Error())
		return nil, err
	}
	if ec.Title == "" {
		err := errors.New("title cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	platform := strings.ToLower(ec.Platform)
	if !validPlatforms[platform] {
		err := fmt.Errorf("unknown platform: %s", ec.Platform)
		slog.Info(err.Error())
		return nil, err
	}

	status := ec.Status
	if status == "" {
		status = models.EventStatusDraft
	}
	if status != models.EventStatusDraft && status != models.EventStatusScheduled {
		err := fmt.Errorf("invalid status: %s", ec.Status)
		slog.Info(err.Error())
		return nil, err
	}

	scheduledAt, err := time.Parse(scheduledTimeLayout, ec.ScheduledAt)
	if err != nil {
		err = fmt.Errorf("invalid scheduled time format: %w", err)
		slog.Error(err.Error())
		return nil, err
	}

	return &models.SMMCalendarEvent{
		UserID:         userID,
		OrganizationID: ec.OrganizationID,
		BlogPostID:     ec.BlogPostID,
		Title:          ec.Title,
		Description:    ec.Description,
		Platform:       platform,
		MediaURL:       ec.MediaURL,
		Tags:           ec.Tags,
		ScheduledAt:    scheduledAt,
		Status:         status,
		AutoPost:       ec.AutoPost,
	}, nil
}

func delayUntil(t time.Time) time.Duration {
	delay := time.Until(t)
	if delay < 0 {
		return 0
	}
	return delay
}
