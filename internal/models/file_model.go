package models

import "time"

type FileAsset struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	UserID         int64     `gorm:"not null;index" json:"user_id"`
	OrganizationID *int64    `gorm:"index" json:"organization_id,omitempty"`
	FileName       string    `gorm:"size:255;not null" json:"file_name"`
	FileType       string    `gorm:"size:64" json:"file_type"`
	FileSize       int64     `json:"file_size"`
	ObjectKey      string    `gorm:"size:255;not null" json:"-"`
	FileURL        string    `gorm:"size:512" json:"file_url"`
	CreatedAt      time.Time `json:"created_at"`
}

func (FileAsset) TableName() string { return "files" }
