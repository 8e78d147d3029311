package invitation

import "time"

type Invitation struct {
	ID         int64      `gorm:"primaryKey"`
	CompanyID  int64      `gorm:"column:company_id;not null;index"`
	Email      string     `gorm:"column:email;not null;index"`
	Role       string     `gorm:"column:role;default:USER;not null"`
	Token      string     `gorm:"column:token;uniqueIndex;not null"`
	Status     string     `gorm:"column:status;default:pending;not null"`
	InvitedBy  int64      `gorm:"column:invited_by;not null"`
	ExpiresAt  time.Time  `gorm:"column:expires_at;not null"`
	AcceptedAt *time.Time `gorm:"column:accepted_at"`
	CreatedAt  time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;default:now()"`
}

func (Invitation) TableName() string {
	return "invitations"
}

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRevoked  = "revoked"
	StatusExpired  = "expired"
)
