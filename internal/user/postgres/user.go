package postgres

import (
	userDatamodel "github.com/tenanthub/company-management/internal/core/datamodel/user"
	"github.com/tenanthub/company-management/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(userID int64) (*user.User, error) {
	var record userDatamodel.User
	err := r.db.Where("id = ?", userID).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return user.FromDataModel(&record), nil
}

func (r *UserRepository) ListByCompany(companyID int64) ([]*user.User, error) {
	var records []*userDatamodel.User
	err := r.db.Where("company_id = ?", companyID).Order("created_at ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(records))
	for _, record := range records {
		users = append(users, user.FromDataModel(record))
	}
	return users, nil
}

func (r *UserRepository) GetPermissions(userID int64) ([]string, error) {
	query := `SELECT DISTINCT p.name
	         FROM permissions p
	         JOIN role_permissions rp ON p.id = rp.permission_id
	         JOIN roles ro ON ro.id = rp.role_id
	         JOIN users u ON u.company_id = ro.company_id
	         WHERE u.id = ?
	           AND ro.name = CASE WHEN u.system_role IN ('SUPERADMIN', 'ADMIN') THEN 'admin' ELSE 'member' END`

	rows, err := r.db.Raw(query, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var permissions []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		permissions = append(permissions, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return permissions, nil
}
