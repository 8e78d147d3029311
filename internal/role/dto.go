package role

import (
	errors "github.com/tenanthub/company-management/internal"
	"github.com/tenanthub/company-management/internal/core/validation"
)

type CreateRoleDTO struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (d *CreateRoleDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.StringField("name", &d.Name).
		Trim().
		Required().
		MaxLength(100)
	v.StringField("description", &d.Description).
		Trim().
		StripTags().
		MaxLength(255)
	return v.Validate()
}

type AttachPermissionDTO struct {
	Permission string `json:"permission"`
}

func (d *AttachPermissionDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.StringField("permission", &d.Permission).
		Trim().
		Required().
		MaxLength(100)
	return v.Validate()
}

type CreatePermissionDTO struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Resource    string `json:"resource"`
	Action      string `json:"action"`
}

func (d *CreatePermissionDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.StringField("name", &d.Name).
		Trim().
		Required().
		MaxLength(100)
	v.StringField("description", &d.Description).
		Trim().
		StripTags().
		MaxLength(255)
	v.StringField("resource", &d.Resource).
		Trim().
		Required().
		MaxLength(50)
	v.StringField("action", &d.Action).
		Trim().
		Required().
		OneOf([]string{"create", "read", "update", "delete", "manage"}, errors.ErrCodeValidationFailed)
	return v.Validate()
}
