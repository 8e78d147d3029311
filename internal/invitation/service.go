package invitation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tenanthub/company-management/internal/auth"
	invitationDatamodel "github.com/tenanthub/company-management/internal/core/datamodel/invitation"
)

type Service struct {
	repo RepositoryAPI
	ttl  time.Duration
	now  func() time.Time
}

func NewService(repo RepositoryAPI, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = 72 * time.Hour
	}
	return &Service{
		repo: repo,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Create issues a pending invitation with a fresh random token.
func (s *Service) Create(companyID, invitedBy int64, dto *CreateInvitationDTO) (*Invitation, error) {
	inv := &Invitation{
		CompanyID: companyID,
		Email:     dto.Email,
		Role:      dto.Role,
		Token:     uuid.NewString(),
		Status:    invitationDatamodel.StatusPending,
		InvitedBy: invitedBy,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.repo.Create(inv); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}
	return inv, nil
}

func (s *Service) ListByCompany(companyID int64) ([]*Invitation, error) {
	invitations, err := s.repo.ListByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	return invitations, nil
}

// Revoke cancels a pending invitation. Only invitations belonging to
// the caller's company can be revoked.
func (s *Service) Revoke(companyID, invitationID int64) error {
	inv, err := s.repo.GetByID(invitationID)
	if err != nil {
		return fmt.Errorf("get invitation: %w", err)
	}
	if inv == nil || inv.CompanyID != companyID {
		return ErrNotFound
	}
	if !inv.IsPending() {
		return ErrUsed
	}

	if err := s.repo.UpdateStatus(inv.ID, invitationDatamodel.StatusRevoked, nil); err != nil {
		return fmt.Errorf("revoke invitation: %w", err)
	}
	return nil
}

// Redeem resolves a token to its invited identity and marks the
// invitation accepted. A token can be redeemed exactly once.
func (s *Service) Redeem(token string) (*auth.RedeemedInvitation, error) {
	inv, err := s.repo.GetByToken(token)
	if err != nil {
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	if inv == nil {
		return nil, ErrNotFound
	}

	switch inv.Status {
	case invitationDatamodel.StatusAccepted:
		return nil, ErrUsed
	case invitationDatamodel.StatusRevoked:
		return nil, ErrRevoked
	case invitationDatamodel.StatusExpired:
		return nil, ErrExpired
	}

	now := s.now()
	if inv.IsExpired(now) {
		// Lazily transition so the stored state reflects reality.
		if err := s.repo.UpdateStatus(inv.ID, invitationDatamodel.StatusExpired, nil); err != nil {
			return nil, fmt.Errorf("expire invitation: %w", err)
		}
		return nil, ErrExpired
	}

	if err := s.repo.UpdateStatus(inv.ID, invitationDatamodel.StatusAccepted, &now); err != nil {
		return nil, fmt.Errorf("accept invitation: %w", err)
	}

	return &auth.RedeemedInvitation{
		CompanyID: inv.CompanyID,
		Email:     inv.Email,
		Role:      inv.Role,
	}, nil
}
