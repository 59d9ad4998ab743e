package models

import "time"

// ProjectIntake is a submission from the public project-intake form.
type ProjectIntake struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	Company     string    `gorm:"size:255" json:"company,omitempty"`
	ProjectType string    `gorm:"size:64" json:"project_type"`
	Budget      string    `gorm:"size:64" json:"budget,omitempty"`
	Details     string    `gorm:"type:text" json:"details"`
	Reference   string    `gorm:"size:64;uniqueIndex" json:"reference"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ProjectIntake) TableName() string { return "client_project_plans" }
