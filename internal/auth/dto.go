package auth

import (
	errors "github.com/tenanthub/company-management/internal"
	"github.com/tenanthub/company-management/internal/core/validation"
)

// LoginDTO is the transport shape used by the HTTP handler to accept
// login requests. The email field is sanitized (trimmed, markup
// stripped) before any constraint runs.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate sanitizes and checks the DTO, returning a structured
// validation error carrying one entry per invalid field.
func (d *LoginDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.StringField("email", &d.Email).
		Trim().
		StripTags().
		Required().
		Email()
	v.Field("password", d.Password).
		Required().
		MinLength(8, errors.ErrCodePasswordTooShort)
	return v.Validate()
}

// RegisterDTO creates a new company together with its first admin user.
type RegisterDTO struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name"`
}

func (d *RegisterDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.StringField("email", &d.Email).
		Trim().
		StripTags().
		Required().
		Email()
	v.Field("password", d.Password).
		Required().
		MinLength(8, errors.ErrCodePasswordTooShort)
	v.StringField("first_name", &d.FirstName).
		Trim().
		Required().
		MaxLength(100)
	v.StringField("last_name", &d.LastName).
		Trim().
		Required().
		MaxLength(100)
	v.StringField("company_name", &d.CompanyName).
		Trim().
		Required().
		MaxLength(200)
	return v.Validate()
}

// JoinCompanyDTO redeems an invitation token and creates the invited
// user inside the inviting company.
type JoinCompanyDTO struct {
	Token     string `json:"token"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (d *JoinCompanyDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.StringField("token", &d.Token).
		Trim().
		Required()
	v.Field("password", d.Password).
		Required().
		MinLength(8, errors.ErrCodePasswordTooShort)
	v.StringField("first_name", &d.FirstName).
		Trim().
		Required().
		MaxLength(100)
	v.StringField("last_name", &d.LastName).
		Trim().
		Required().
		MaxLength(100)
	return v.Validate()
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (d *RefreshTokenDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("refresh_token", d.RefreshToken).Required()
	return v.Validate()
}
