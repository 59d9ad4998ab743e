package models

import "time"

type BlogPost struct {
	ID             int64      `gorm:"primaryKey" json:"id"`
	OrganizationID int64      `gorm:"not null;index" json:"organization_id"`
	AuthorID       int64      `gorm:"not null" json:"author_id"`
	Title          string     `gorm:"size:255;not null" json:"title"`
	Slug           string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content        string     `gorm:"type:text" json:"content"`
	ImageURL       string     `gorm:"size:512" json:"image_url,omitempty"`
	Status         string     `gorm:"size:32;not null;default:draft" json:"status"`
	PublishAt      *time.Time `json:"publish_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (BlogPost) TableName() string { return "blog_posts" }

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)
