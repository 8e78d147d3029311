package postgres

import (
	"github.com/tenanthub/company-management/internal/company"
	companyDatamodel "github.com/tenanthub/company-management/internal/core/datamodel/company"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) company.RepositoryAPI {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetByID(id int64) (*company.Company, error) {
	var record companyDatamodel.Company
	err := r.db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return company.FromDataModel(&record), nil
}

func (r *CompanyRepository) GetBySlug(slug string) (*company.Company, error) {
	var record companyDatamodel.Company
	err := r.db.Where("slug = ?", slug).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return company.FromDataModel(&record), nil
}

func (r *CompanyRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&companyDatamodel.Company{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CompanyRepository) Create(c *company.Company) error {
	record := company.ToDataModel(c)
	if err := r.db.Create(record).Error; err != nil {
		return err
	}
	c.ID = record.ID
	return nil
}

func (r *CompanyRepository) Update(c *company.Company) error {
	return r.db.Save(company.ToDataModel(c)).Error
}
