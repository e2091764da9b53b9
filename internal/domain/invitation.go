package domain

import "time"

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
)

type Invitation struct {
	ID         int64            `gorm:"primaryKey" json:"id"`
	Email      string           `gorm:"size:255;index;not null" json:"email"`
	Role       Role             `gorm:"size:32;not null" json:"role"`
	Token      string           `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ExpiresAt  time.Time        `json:"expires_at"`
	Status     InvitationStatus `gorm:"size:16;index" json:"status"`
	AcceptedAt *time.Time       `json:"accepted_at,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (Invitation) TableName() string { return "invitations" }

func (i *Invitation) Expired(now time.Time) bool { return now.After(i.ExpiresAt) }
