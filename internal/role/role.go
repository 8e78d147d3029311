package role

import (
	"errors"
	"time"

	userDatamodel "github.com/tenanthub/company-management/internal/core/datamodel/user"
)

// Role is a named role scoped to one company. (name, company) is unique.
type Role struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Permission is a resource/action pair scoped to one company.
// (name, company) is unique.
type Permission struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Resource    string    `json:"resource"`
	Action      string    `json:"action"`
	CreatedAt   time.Time `json:"created_at"`
}

var (
	ErrRoleNotFound = errors.New("role not found")
	ErrRoleExists   = errors.New("role already exists in this company")
	ErrPermNotFound = errors.New("permission not found")
	ErrPermExists   = errors.New("permission already exists in this company")
)

type RepositoryAPI interface {
	ListRoles(companyID int64) ([]*Role, error)
	GetRoleByName(companyID int64, name string) (*Role, error)
	CreateRole(r *Role) error
	ListPermissions(companyID int64) ([]*Permission, error)
	GetPermissionByName(companyID int64, name string) (*Permission, error)
	CreatePermission(p *Permission) error
	AttachPermission(roleID, permissionID int64) error
}

func RoleFromDataModel(r *userDatamodel.Role) *Role {
	return &Role{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func PermissionFromDataModel(p *userDatamodel.Permission) *Permission {
	return &Permission{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Name:        p.Name,
		Description: p.Description,
		Resource:    p.Resource,
		Action:      p.Action,
		CreatedAt:   p.CreatedAt,
	}
}
