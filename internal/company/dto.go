package company

import (
	errors "github.com/tenanthub/company-management/internal"
	"github.com/tenanthub/company-management/internal/core/validation"
)

// UpdateCompanyDTO carries the mutable tenant fields. Zero-valued
// fields are left untouched.
type UpdateCompanyDTO struct {
	Name     string            `json:"name,omitempty"`
	Domain   string            `json:"domain,omitempty"`
	Settings map[string]string `json:"settings,omitempty"`
}

func (d *UpdateCompanyDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.StringField("name", &d.Name).
		Trim().
		MaxLength(200)
	v.StringField("domain", &d.Domain).
		Trim().
		StripTags().
		MaxLength(255)
	return v.Validate()
}
