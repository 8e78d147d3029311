package company

import (
	"errors"
	"regexp"
	"strings"
	"time"

	companyDatamodel "github.com/tenanthub/company-management/internal/core/datamodel/company"
)

// Company is the tenant boundary: users, roles and permissions all
// belong to exactly one company.
type Company struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	Domain    string            `json:"domain"`
	Status    string            `json:"status"`
	Settings  map[string]string `json:"settings,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (c *Company) IsActive() bool {
	return c.Status == companyDatamodel.StatusActive
}

var ErrNotFound = errors.New("company not found")
var ErrSlugTaken = errors.New("company slug is already taken")

type RepositoryAPI interface {
	GetByID(id int64) (*Company, error)
	GetBySlug(slug string) (*Company, error)
	SlugExists(slug string) (bool, error)
	Create(c *Company) error
	Update(c *Company) error
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a company name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func ToDataModel(c *Company) *companyDatamodel.Company {
	return &companyDatamodel.Company{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Domain:    c.Domain,
		Status:    c.Status,
		Settings:  c.Settings,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDataModel(c *companyDatamodel.Company) *Company {
	return &Company{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Domain:    c.Domain,
		Status:    c.Status,
		Settings:  c.Settings,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
