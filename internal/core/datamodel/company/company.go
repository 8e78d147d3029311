package company

import "time"

// Company is a tenant: every user, role and permission belongs to
// exactly one company.
type Company struct {
	ID        int64             `gorm:"primaryKey"`
	Name      string            `gorm:"column:name;not null"`
	Slug      string            `gorm:"column:slug;uniqueIndex;not null"`
	Domain    string            `gorm:"column:domain"`
	Status    string            `gorm:"column:status;default:active"`
	Settings  map[string]string `gorm:"column:settings;serializer:json"`
	CreatedAt time.Time         `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time         `gorm:"column:updated_at;default:now()"`
}

func (Company) TableName() string {
	return "companies"
}

const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)
