package company

import (
	"fmt"

	companyDatamodel "github.com/tenanthub/company-management/internal/core/datamodel/company"
)

type Service struct {
	repo RepositoryAPI
}

func NewService(repo RepositoryAPI) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int64) (*Company, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *Service) GetBySlug(slug string) (*Company, error) {
	c, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("get company by slug: %w", err)
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// CreateForRegistration creates the tenant for a self-service signup.
// When the natural slug is taken a numeric suffix is appended.
func (s *Service) CreateForRegistration(name string) (int64, error) {
	base := Slugify(name)
	if base == "" {
		base = "company"
	}

	slug := base
	for i := 2; ; i++ {
		taken, err := s.repo.SlugExists(slug)
		if err != nil {
			return 0, fmt.Errorf("check slug: %w", err)
		}
		if !taken {
			break
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}

	c := &Company{
		Name:     name,
		Slug:     slug,
		Status:   companyDatamodel.StatusActive,
		Settings: map[string]string{},
	}
	if err := s.repo.Create(c); err != nil {
		return 0, fmt.Errorf("create company: %w", err)
	}
	return c.ID, nil
}

// Update applies the mutable fields from the DTO onto the company.
func (s *Service) Update(id int64, dto *UpdateCompanyDTO) (*Company, error) {
	c, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != "" {
		c.Name = dto.Name
	}
	if dto.Domain != "" {
		c.Domain = dto.Domain
	}
	if dto.Settings != nil {
		if c.Settings == nil {
			c.Settings = map[string]string{}
		}
		for k, v := range dto.Settings {
			c.Settings[k] = v
		}
	}

	if err := s.repo.Update(c); err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return c, nil
}
