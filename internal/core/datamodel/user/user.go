package user

import "time"

type User struct {
	ID              int64      `gorm:"primaryKey"`
	CompanyID       int64      `gorm:"column:company_id;not null;index"`
	Email           string     `gorm:"column:email;uniqueIndex;not null"`
	FirstName       string     `gorm:"column:first_name;not null"`
	LastName        string     `gorm:"column:last_name;not null"`
	PasswordHash    string     `gorm:"column:password_hash;not null"`
	SystemRole      string     `gorm:"column:system_role;default:USER;not null"`
	IsActive        bool       `gorm:"column:is_active;default:true"`
	EmailVerified   bool       `gorm:"column:email_verified;default:false"`
	EmailVerifiedAt *time.Time `gorm:"column:email_verified_at"`
	CreatedAt       time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;default:now()"`
}

func (User) TableName() string {
	return "users"
}

// Role is a named, described role scoped to a company.
// (name, company_id) is unique.
type Role struct {
	ID          int64     `gorm:"primaryKey"`
	CompanyID   int64     `gorm:"column:company_id;not null;uniqueIndex:idx_roles_name_company"`
	Name        string    `gorm:"column:name;not null;uniqueIndex:idx_roles_name_company"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time `gorm:"column:updated_at;default:now()"`
}

func (Role) TableName() string {
	return "roles"
}

// Permission is a resource/action pair scoped to a company.
// (name, company_id) is unique.
type Permission struct {
	ID          int64     `gorm:"primaryKey"`
	CompanyID   int64     `gorm:"column:company_id;not null;uniqueIndex:idx_permissions_name_company"`
	Name        string    `gorm:"column:name;not null;uniqueIndex:idx_permissions_name_company"`
	Description string    `gorm:"column:description"`
	Resource    string    `gorm:"column:resource;not null"`
	Action      string    `gorm:"column:action;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
}

func (Permission) TableName() string {
	return "permissions"
}

// RolePermission links a role to a permission within the same company.
type RolePermission struct {
	ID           int64     `gorm:"primaryKey"`
	RoleID       int64     `gorm:"column:role_id;not null;index"`
	PermissionID int64     `gorm:"column:permission_id;not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}
