package models

import "time"

// AnalyticsSetting stores an organization's analytics provider key. The key
// value is sealed the same way platform tokens are.
type AnalyticsSetting struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	OrganizationID int64     `gorm:"uniqueIndex;not null" json:"organization_id"`
	Provider       string    `gorm:"size:64;not null" json:"provider"`
	PropertyID     string    `gorm:"size:255" json:"property_id"`
	APIKey         string    `gorm:"type:text" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (AnalyticsSetting) TableName() string { return "analytics_settings" }
