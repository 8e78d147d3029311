package postgres

import (
	"time"

	invitationDatamodel "github.com/tenanthub/company-management/internal/core/datamodel/invitation"
	"github.com/tenanthub/company-management/internal/invitation"
	"gorm.io/gorm"
)

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) invitation.RepositoryAPI {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) GetByToken(token string) (*invitation.Invitation, error) {
	var record invitationDatamodel.Invitation
	err := r.db.Where("token = ?", token).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return invitation.FromDataModel(&record), nil
}

func (r *InvitationRepository) GetByID(id int64) (*invitation.Invitation, error) {
	var record invitationDatamodel.Invitation
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return invitation.FromDataModel(&record), nil
}

func (r *InvitationRepository) ListByCompany(companyID int64) ([]*invitation.Invitation, error) {
	var records []*invitationDatamodel.Invitation
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}

	invitations := make([]*invitation.Invitation, 0, len(records))
	for _, record := range records {
		invitations = append(invitations, invitation.FromDataModel(record))
	}
	return invitations, nil
}

func (r *InvitationRepository) Create(inv *invitation.Invitation) error {
	record := invitation.ToDataModel(inv)
	if err := r.db.Create(record).Error; err != nil {
		return err
	}
	inv.ID = record.ID
	return nil
}

func (r *InvitationRepository) UpdateStatus(id int64, status string, acceptedAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if acceptedAt != nil {
		updates["accepted_at"] = *acceptedAt
	}
	return r.db.Model(&invitationDatamodel.Invitation{}).Where("id = ?", id).Updates(updates).Error
}
