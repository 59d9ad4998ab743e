package models

import "time"

type User struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"size:255" json:"-"`
	GoogleID       string    `gorm:"size:255;index" json:"google_id,omitempty"`
	Name           string    `gorm:"size:255" json:"name"`
	ProfilePicture string    `gorm:"size:512" json:"profile_picture"`
	Role           string    `gorm:"size:32;not null;default:user" json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string { return "profiles" }

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
