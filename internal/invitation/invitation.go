package invitation

import (
	"time"

	"github.com/tenanthub/company-management/internal"
	invitationDatamodel "github.com/tenanthub/company-management/internal/core/datamodel/invitation"
)

// Invitation invites an email address into a company with an assigned
// system role, redeemable once via its token until it expires.
type Invitation struct {
	ID         int64      `json:"id"`
	CompanyID  int64      `json:"company_id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Token      string     `json:"token"`
	Status     string     `json:"status"`
	InvitedBy  int64      `json:"invited_by"`
	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (i *Invitation) IsPending() bool {
	return i.Status == invitationDatamodel.StatusPending
}

func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Outcome errors carry their HTTP shape so callers in any package,
// the join flow included, surface them as structured client errors.
var (
	ErrNotFound = internal.ErrInvitationNotFound
	ErrExpired  = internal.ErrInvitationExpired
	ErrUsed     = internal.ErrInvitationUsed
	ErrRevoked  = internal.ErrInvitationRevoked
)

type RepositoryAPI interface {
	GetByToken(token string) (*Invitation, error)
	GetByID(id int64) (*Invitation, error)
	ListByCompany(companyID int64) ([]*Invitation, error)
	Create(inv *Invitation) error
	UpdateStatus(id int64, status string, acceptedAt *time.Time) error
}

func ToDataModel(i *Invitation) *invitationDatamodel.Invitation {
	return &invitationDatamodel.Invitation{
		ID:         i.ID,
		CompanyID:  i.CompanyID,
		Email:      i.Email,
		Role:       i.Role,
		Token:      i.Token,
		Status:     i.Status,
		InvitedBy:  i.InvitedBy,
		ExpiresAt:  i.ExpiresAt,
		AcceptedAt: i.AcceptedAt,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

func FromDataModel(i *invitationDatamodel.Invitation) *Invitation {
	return &Invitation{
		ID:         i.ID,
		CompanyID:  i.CompanyID,
		Email:      i.Email,
		Role:       i.Role,
		Token:      i.Token,
		Status:     i.Status,
		InvitedBy:  i.InvitedBy,
		ExpiresAt:  i.ExpiresAt,
		AcceptedAt: i.AcceptedAt,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}
