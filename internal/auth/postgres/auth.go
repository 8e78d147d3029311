package auth

import (
	"database/sql"
	"fmt"

	"github.com/tenanthub/company-management/internal/auth"
	userDatamodel "github.com/tenanthub/company-management/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetCredentials(email string) (*auth.Credentials, error) {
	var creds auth.Credentials
	query := `SELECT id, company_id, email, password_hash, system_role, is_active FROM users WHERE email = ?`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&creds.UserID, &creds.CompanyID, &creds.Email, &creds.PasswordHash, &creds.SystemRole, &creds.IsActive); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}
	return &creds, nil
}

func (r *Repository) GetUserWithPermissions(userID int64) (*auth.User, error) {
	var user auth.User

	query := `SELECT id, company_id, email, system_role FROM users WHERE id = ? AND is_active = true`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&user.ID, &user.CompanyID, &user.Email, &user.SystemRole); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}

	// Permissions reachable through the company's role assignments.
	permQuery := `SELECT DISTINCT p.name
	             FROM permissions p
	             JOIN role_permissions rp ON p.id = rp.permission_id
	             JOIN roles ro ON ro.id = rp.role_id
	             WHERE ro.company_id = ? AND ro.name = ?`

	rows, err := r.db.Raw(permQuery, user.CompanyID, roleNameForSystemRole(user.SystemRole)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var permissions []string
	for rows.Next() {
		var permName string
		if err := rows.Scan(&permName); err != nil {
			return nil, err
		}
		permissions = append(permissions, permName)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	user.Permissions = permissions
	return &user, nil
}

func (r *Repository) EmailExists(email string) (bool, error) {
	var exists int
	row := r.db.Raw(`SELECT 1 FROM users WHERE email = ?`, email).Row()
	if err := row.Scan(&exists); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repository) CreateUser(u *auth.NewUser) (int64, error) {
	record := &userDatamodel.User{
		CompanyID:    u.CompanyID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: u.PasswordHash,
		SystemRole:   u.SystemRole,
		IsActive:     true,
	}
	if err := r.db.Create(record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

// roleNameForSystemRole maps the system tier to the seeded company role
// whose permission set it inherits.
func roleNameForSystemRole(systemRole string) string {
	switch systemRole {
	case auth.RoleSuperAdmin, auth.RoleAdmin:
		return "admin"
	default:
		return "member"
	}
}
