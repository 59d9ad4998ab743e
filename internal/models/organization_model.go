package models

import "time"

type Organization struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Website   string    `gorm:"size:512" json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Organization) TableName() string { return "organizations" }

type OrganizationMember struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	OrganizationID int64     `gorm:"not null;index:idx_org_members_org_user" json:"organization_id"`
	UserID         int64     `gorm:"not null;index:idx_org_members_org_user" json:"user_id"`
	Role           string    `gorm:"size:32;not null;default:member" json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

func (OrganizationMember) TableName() string { return "organization_members" }

const (
	MemberRoleOwner  = "owner"
	MemberRoleMember = "member"
)
