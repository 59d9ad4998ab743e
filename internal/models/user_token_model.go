package models

import "time"

// UserToken holds one user's access token for one external platform.
// The token value is AES-GCM sealed before it hits the database.
type UserToken struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	UserID      int64      `gorm:"not null;index:idx_user_tokens_user_platform" json:"user_id"`
	Platform    string     `gorm:"size:32;not null;index:idx_user_tokens_user_platform" json:"platform"`
	AccessToken string     `gorm:"type:text;not null" json:"-"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (UserToken) TableName() string { return "user_tokens" }
