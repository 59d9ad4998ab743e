package models

import "time"

// DispatchAttempt is the durable record of one publish attempt. A row is
// written before the external call and finalized with the outcome, so a
// crash mid-dispatch is detectable instead of silently reposting.
type DispatchAttempt struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	EventID      int64     `gorm:"not null;index" json:"event_id"`
	UserID       int64     `gorm:"not null" json:"user_id"`
	Platform     string    `gorm:"size:32;not null" json:"platform"`
	Completed    bool      `gorm:"not null;default:false" json:"completed"`
	ErrorMessage string    `gorm:"type:text" json:"error_message"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (DispatchAttempt) TableName() string { return "dispatch_attempts" }
