package role

import (
	"fmt"
)

type Service struct {
	repo RepositoryAPI
}

func NewService(repo RepositoryAPI) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListRoles(companyID int64) ([]*Role, error) {
	roles, err := s.repo.ListRoles(companyID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// CreateRole creates a company-scoped role, enforcing (name, company)
// uniqueness up front for a friendly error before the DB constraint.
func (s *Service) CreateRole(companyID int64, dto *CreateRoleDTO) (*Role, error) {
	existing, err := s.repo.GetRoleByName(companyID, dto.Name)
	if err != nil {
		return nil, fmt.Errorf("check role: %w", err)
	}
	if existing != nil {
		return nil, ErrRoleExists
	}

	r := &Role{
		CompanyID:   companyID,
		Name:        dto.Name,
		Description: dto.Description,
	}
	if err := s.repo.CreateRole(r); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return r, nil
}

func (s *Service) ListPermissions(companyID int64) ([]*Permission, error) {
	perms, err := s.repo.ListPermissions(companyID)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return perms, nil
}

func (s *Service) CreatePermission(companyID int64, dto *CreatePermissionDTO) (*Permission, error) {
	existing, err := s.repo.GetPermissionByName(companyID, dto.Name)
	if err != nil {
		return nil, fmt.Errorf("check permission: %w", err)
	}
	if existing != nil {
		return nil, ErrPermExists
	}

	p := &Permission{
		CompanyID:   companyID,
		Name:        dto.Name,
		Description: dto.Description,
		Resource:    dto.Resource,
		Action:      dto.Action,
	}
	if err := s.repo.CreatePermission(p); err != nil {
		return nil, fmt.Errorf("create permission: %w", err)
	}
	return p, nil
}

// AttachPermission links an existing permission to an existing role of
// the same company.
func (s *Service) AttachPermission(companyID int64, roleName, permName string) error {
	r, err := s.repo.GetRoleByName(companyID, roleName)
	if err != nil {
		return fmt.Errorf("get role: %w", err)
	}
	if r == nil {
		return ErrRoleNotFound
	}

	p, err := s.repo.GetPermissionByName(companyID, permName)
	if err != nil {
		return fmt.Errorf("get permission: %w", err)
	}
	if p == nil {
		return ErrPermNotFound
	}

	if err := s.repo.AttachPermission(r.ID, p.ID); err != nil {
		return fmt.Errorf("attach permission: %w", err)
	}
	return nil
}
