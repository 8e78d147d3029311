package seed

import (
	"fmt"
	"log/slog"

	companyDatamodel "github.com/tenanthub/company-management/internal/core/datamodel/company"
	userDatamodel "github.com/tenanthub/company-management/internal/core/datamodel/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultCompanySlug is the natural key of the seeded tenant.
const DefaultCompanySlug = "default"

// seedBcryptCost is deliberately low: seeded credentials are bootstrap
// data for fresh deployments and test environments, not production
// accounts.
const seedBcryptCost = 6

type seedUser struct {
	Email      string
	FirstName  string
	LastName   string
	Password   string
	SystemRole string
}

type seedRole struct {
	Name        string
	Description string
}

type seedPermission struct {
	Name        string
	Description string
	Resource    string
	Action      string
}

var seedUsers = []seedUser{
	{"superadmin@default.local", "Super", "Admin", "SuperAdmin#1234", "SUPERADMIN"},
	{"admin@default.local", "Default", "Admin", "Admin#1234", "ADMIN"},
	{"moderator@default.local", "Default", "Moderator", "Moderator#1234", "MODERATOR"},
	{"user@default.local", "Default", "User", "User#12345", "USER"},
}

var seedRoles = []seedRole{
	{"admin", "Full administrative access within the company"},
	{"member", "Standard member access within the company"},
}

var seedPermissions = []seedPermission{
	{"users:read", "Can view company users", "users", "read"},
	{"users:manage", "Can create and update company users", "users", "manage"},
	{"roles:manage", "Can manage company roles and permissions", "roles", "manage"},
	{"invitations:manage", "Can create and revoke invitations", "invitations", "manage"},
	{"company:manage", "Can update company profile and settings", "company", "manage"},
}

// permissions granted to each seeded role by name
var rolePermissionGrants = map[string][]string{
	"admin":  {"users:read", "users:manage", "roles:manage", "invitations:manage", "company:manage"},
	"member": {"users:read"},
}

// Seeder idempotently establishes the baseline dataset: one default
// company, four users of distinct system roles, two roles and five
// permissions. Every step is match-or-create on the entity's natural
// unique key; an already-present row is never modified.
type Seeder struct {
	db     *gorm.DB
	logger *slog.Logger
}

func New(db *gorm.DB, logger *slog.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// Run executes the whole routine sequentially, aborting on the first
// failure. Rerunning against an already-seeded store is a no-op.
func (s *Seeder) Run() error {
	company, err := s.ensureCompany()
	if err != nil {
		return fmt.Errorf("seed company: %w", err)
	}

	for _, u := range seedUsers {
		if err := s.ensureUser(company.ID, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	roleIDs := make(map[string]int64, len(seedRoles))
	for _, r := range seedRoles {
		id, err := s.ensureRole(company.ID, r)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", r.Name, err)
		}
		roleIDs[r.Name] = id
	}

	permIDs := make(map[string]int64, len(seedPermissions))
	for _, p := range seedPermissions {
		id, err := s.ensurePermission(company.ID, p)
		if err != nil {
			return fmt.Errorf("seed permission %s: %w", p.Name, err)
		}
		permIDs[p.Name] = id
	}

	for roleName, permNames := range rolePermissionGrants {
		for _, permName := range permNames {
			if err := s.ensureRolePermission(roleIDs[roleName], permIDs[permName]); err != nil {
				return fmt.Errorf("grant %s to %s: %w", permName, roleName, err)
			}
		}
	}

	s.logger.Info("seed completed", "company_slug", DefaultCompanySlug,
		"users", len(seedUsers), "roles", len(seedRoles), "permissions", len(seedPermissions))
	return nil
}

// ensureCompany matches by slug. The update branch is intentionally
// empty: baseline data is immutable to reseeding.
func (s *Seeder) ensureCompany() (*companyDatamodel.Company, error) {
	var existing companyDatamodel.Company
	err := s.db.Where("slug = ?", DefaultCompanySlug).First(&existing).Error
	if err == nil {
		s.logger.Info("company already exists, leaving untouched", "slug", DefaultCompanySlug)
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	record := companyDatamodel.Company{
		Name:     "Default Company",
		Slug:     DefaultCompanySlug,
		Domain:   "default.local",
		Status:   companyDatamodel.StatusActive,
		Settings: map[string]string{},
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	s.logger.Info("seeded company", "slug", record.Slug)
	return &record, nil
}

// ensureUser matches by email, the system-wide unique key.
func (s *Seeder) ensureUser(companyID int64, u seedUser) error {
	var existing userDatamodel.User
	err := s.db.Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		s.logger.Info("user already exists, leaving untouched", "email", u.Email)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), seedBcryptCost)
	if err != nil {
		return err
	}

	record := userDatamodel.User{
		CompanyID:    companyID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: string(hash),
		SystemRole:   u.SystemRole,
		IsActive:     true,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return err
	}
	s.logger.Info("seeded user", "email", u.Email, "system_role", u.SystemRole)
	return nil
}

// ensureRole matches by (name, company).
func (s *Seeder) ensureRole(companyID int64, r seedRole) (int64, error) {
	var existing userDatamodel.Role
	err := s.db.Where("company_id = ? AND name = ?", companyID, r.Name).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, err
	}

	record := userDatamodel.Role{
		CompanyID:   companyID,
		Name:        r.Name,
		Description: r.Description,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return 0, err
	}
	s.logger.Info("seeded role", "name", r.Name)
	return record.ID, nil
}

// ensurePermission matches by (name, company).
func (s *Seeder) ensurePermission(companyID int64, p seedPermission) (int64, error) {
	var existing userDatamodel.Permission
	err := s.db.Where("company_id = ? AND name = ?", companyID, p.Name).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, err
	}

	record := userDatamodel.Permission{
		CompanyID:   companyID,
		Name:        p.Name,
		Description: p.Description,
		Resource:    p.Resource,
		Action:      p.Action,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return 0, err
	}
	s.logger.Info("seeded permission", "name", p.Name)
	return record.ID, nil
}

func (s *Seeder) ensureRolePermission(roleID, permissionID int64) error {
	var existing userDatamodel.RolePermission
	err := s.db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	return s.db.Create(&userDatamodel.RolePermission{
		RoleID:       roleID,
		PermissionID: permissionID,
	}).Error
}
