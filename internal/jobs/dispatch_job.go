package job

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/models"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/publisher"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/repository"
	"github.com/adamn1225/nextnoetics-gorm-sub000/internal/transfer"
	"github.com/adamn1225/nextnoetics-gorm-sub000/pkg/utils"
)

type dispatchOutcome int

const (
	outcomePublished dispatchOutcome = iota
	outcomeFailed
	outcomeSkipped
)

// DispatchJob sweeps the calendar for due auto-post events and publishes
// each one to its platform. Events process strictly sequentially; one
// event's failure never aborts the batch.
type DispatchJob struct {
	cr        repository.CalendarRepository
	tr        repository.UserTokenRepository
	da        repository.DispatchAttemptRepository
	registry  *publisher.Registry
	secretKey []byte
}

func NewDispatchJob(
	cr repository.CalendarRepository,
	tr repository.UserTokenRepository,
	da repository.DispatchAttemptRepository,
	registry *publisher.Registry,
	secretKey string) *DispatchJob {
	return &DispatchJob{
		cr:        cr,
		tr:        tr,
		da:        da,
		registry:  registry,
		secretKey: []byte(secretKey),
	}
}

// Run is the cron entrypoint for the hourly tick.
func (j *DispatchJob) Run() {
	summary, err := j.DispatchDuePosts(context.Background())
	if err != nil {
		log.Printf("Dispatch tick failed: %v", err)
		return
	}
	log.Printf("Dispatch tick finished: %s", summary.Message)
}

// DispatchDuePosts is one tick. Only the eligibility query can fail the
// invocation; everything after is per-event and recorded in the summary.
func (j *DispatchJob) DispatchDuePosts(ctx context.Context) (*transfer.DispatchSummary, error) {
	events, err := j.cr.ListDue(ctx, time.Now())
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("querying due posts: %w", err)
	}

	summary := &transfer.DispatchSummary{}
	for _, ev := range events {
		summary.Attempted++
		switch j.dispatchEvent(ctx, ev) {
		case outcomePublished:
			summary.Published++
		case outcomeFailed:
			summary.Failed++
		case outcomeSkipped:
			summary.Skipped++
		}
	}

	summary.Message = fmt.Sprintf("%d due, %d published, %d failed, %d skipped",
		summary.Attempted, summary.Published, summary.Failed, summary.Skipped)
	return summary, nil
}

// DispatchByID publishes a single event if it is still eligible. The asynq
// worker uses this for exact-time dispatch; an event already claimed or
// published by the hourly sweep is a no-op.
func (j *DispatchJob) DispatchByID(ctx context.Context, eventID int64) error {
	ev, ok, err := j.cr.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if !ok {
		slog.Info(fmt.Sprintf("dispatch: event %d no longer exists", eventID))
		return nil
	}
	if ev.Status != models.EventStatusScheduled || !ev.AutoPost || ev.ScheduledAt.After(time.Now()) {
		return nil
	}
	j.dispatchEvent(ctx, ev)
	return nil
}

func (j *DispatchJob) dispatchEvent(ctx context.Context, ev *models.SMMCalendarEvent) dispatchOutcome {
	claimed, err := j.cr.ClaimForDispatch(ctx, ev.ID)
	if err != nil {
		log.Printf("Error claiming event %d: %v", ev.ID, err)
		return outcomeFailed
	}
	if !claimed {
		// another invocation owns it
		return outcomeSkipped
	}

	pub, supported := j.registry.Lookup(ev.Platform)
	if !supported {
		slog.Info(fmt.Sprintf("dispatch: no publisher for platform %q, event %d left scheduled", ev.Platform, ev.ID))
		j.releaseClaim(ctx, ev.ID)
		return outcomeSkipped
	}

	token, ok, err := j.tr.GetByUserAndPlatform(ctx, ev.UserID, ev.Platform)
	if err != nil {
		log.Printf("Error fetching credential for event %d: %v", ev.ID, err)
		j.releaseClaim(ctx, ev.ID)
		return outcomeFailed
	}
	if !ok {
		slog.Info(fmt.Sprintf("dispatch: no %s credential for user %d, skipping event %d", ev.Platform, ev.UserID, ev.ID))
		j.releaseClaim(ctx, ev.ID)
		return outcomeSkipped
	}

	accessToken, err := utils.Decrypt(token.AccessToken, j.secretKey)
	if err != nil {
		log.Printf("Error unsealing credential for event %d: %v", ev.ID, err)
		j.releaseClaim(ctx, ev.ID)
		return outcomeFailed
	}

	// attempt row goes in before the external call so a crash in between is
	// visible as an open attempt instead of a silent repost
	attemptID, err := j.da.Create(ctx, &models.DispatchAttempt{
		EventID:  ev.ID,
		UserID:   ev.UserID,
		Platform: ev.Platform,
	})
	if err != nil {
		log.Printf("Error recording attempt for event %d: %v", ev.ID, err)
	}

	post := &publisher.Post{
		Title:       ev.Title,
		Description: ev.Description,
		MediaURL:    ev.MediaURL,
	}

	if err := pub.Publish(ctx, post, accessToken); err != nil {
		log.Printf("Error posting event %d to %s: %v", ev.ID, ev.Platform, err)
		j.finalizeAttempt(ctx, attemptID, err.Error())
		j.releaseClaim(ctx, ev.ID)
		return outcomeFailed
	}

	j.finalizeAttempt(ctx, attemptID, "")

	if err := j.cr.UpdateStatus(ctx, models.EventStatusPublished, ev.ID); err != nil {
		// posted externally but not marked; the open publishing claim keeps
		// the sweep from reposting, and the attempt row records the success
		log.Printf("Error marking event %d published after successful post: %v", ev.ID, err)
	}
	return outcomePublished
}

func (j *DispatchJob) releaseClaim(ctx context.Context, eventID int64) {
	if err := j.cr.UpdateStatus(ctx, models.EventStatusScheduled, eventID); err != nil {
		log.Printf("Error releasing claim on event %d: %v", eventID, err)
	}
}

func (j *DispatchJob) finalizeAttempt(ctx context.Context, attemptID int64, errorMessage string) {
	if attemptID == 0 {
		return
	}
	if err := j.da.Finalize(ctx, attemptID, errorMessage); err != nil {
		log.Printf("Error finalizing attempt %d: %v", attemptID, err)
	}
}
