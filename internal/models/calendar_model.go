package models

import "time"

// SMMCalendarEvent is one planned social-media post on the calendar.
// The dispatcher only touches rows where status is "scheduled", the
// auto-post flag is set and the scheduled time has passed.
type SMMCalendarEvent struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	UserID         int64     `gorm:"not null;index" json:"user_id"`
	OrganizationID *int64    `gorm:"index" json:"organization_id,omitempty"`
	BlogPostID     *int64    `json:"blog_post_id,omitempty"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	Platform       string    `gorm:"size:32;not null" json:"platform"`
	MediaURL       string    `gorm:"size:512" json:"media_url,omitempty"`
	Tags           string    `gorm:"type:text" json:"tags,omitempty"`
	ScheduledAt    time.Time `gorm:"index" json:"scheduled_at"`
	Status         string    `gorm:"size:32;not null;default:draft" json:"status"`
	AutoPost       bool      `gorm:"not null;default:false" json:"auto_post"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (SMMCalendarEvent) TableName() string { return "smm_calendar" }

const (
	EventStatusDraft     = "draft"
	EventStatusScheduled = "scheduled"
	// EventStatusPublishing marks a row claimed by a running dispatch so a
	// second tick cannot pick it up.
	EventStatusPublishing = "publishing"
	EventStatusPublished  = "published"
)

const (
	PlatformFacebook  = "facebook"
	PlatformTwitter   = "twitter"
	PlatformLinkedin  = "linkedin"
	PlatformInstagram = "instagram"
	PlatformTiktok    = "tiktok"
)
