package postgres

import (
	userDatamodel "github.com/tenanthub/company-management/internal/core/datamodel/user"
	"github.com/tenanthub/company-management/internal/role"
	"gorm.io/gorm"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) role.RepositoryAPI {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) ListRoles(companyID int64) ([]*role.Role, error) {
	var records []*userDatamodel.Role
	err := r.db.Where("company_id = ?", companyID).Order("name ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}

	roles := make([]*role.Role, 0, len(records))
	for _, record := range records {
		roles = append(roles, role.RoleFromDataModel(record))
	}
	return roles, nil
}

func (r *RoleRepository) GetRoleByName(companyID int64, name string) (*role.Role, error) {
	var record userDatamodel.Role
	err := r.db.Where("company_id = ? AND name = ?", companyID, name).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return role.RoleFromDataModel(&record), nil
}

func (r *RoleRepository) CreateRole(rl *role.Role) error {
	record := &userDatamodel.Role{
		CompanyID:   rl.CompanyID,
		Name:        rl.Name,
		Description: rl.Description,
	}
	if err := r.db.Create(record).Error; err != nil {
		return err
	}
	rl.ID = record.ID
	return nil
}

func (r *RoleRepository) ListPermissions(companyID int64) ([]*role.Permission, error) {
	var records []*userDatamodel.Permission
	err := r.db.Where("company_id = ?", companyID).Order("name ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}

	perms := make([]*role.Permission, 0, len(records))
	for _, record := range records {
		perms = append(perms, role.PermissionFromDataModel(record))
	}
	return perms, nil
}

func (r *RoleRepository) GetPermissionByName(companyID int64, name string) (*role.Permission, error) {
	var record userDatamodel.Permission
	err := r.db.Where("company_id = ? AND name = ?", companyID, name).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return role.PermissionFromDataModel(&record), nil
}

func (r *RoleRepository) CreatePermission(p *role.Permission) error {
	record := &userDatamodel.Permission{
		CompanyID:   p.CompanyID,
		Name:        p.Name,
		Description: p.Description,
		Resource:    p.Resource,
		Action:      p.Action,
	}
	if err := r.db.Create(record).Error; err != nil {
		return err
	}
	p.ID = record.ID
	return nil
}

func (r *RoleRepository) AttachPermission(roleID, permissionID int64) error {
	var existing userDatamodel.RolePermission
	err := r.db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	return r.db.Create(&userDatamodel.RolePermission{
		RoleID:       roleID,
		PermissionID: permissionID,
	}).Error
}
